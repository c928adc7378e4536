package domain

import (
	"fmt"
	"io"
)

// OutputFormat represents the supported output formats for a cluster report.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// VertexStatus is the classification state of a vertex in the pSCAN engine.
// It starts UNKNOWN and is written at most once to CORE or NON_CORE by the
// Prune/CheckCore phases; a vertex left UNKNOWN after both CheckCore
// passes is treated as non-core by every later phase.
type VertexStatus int8

const (
	StatusUnknown VertexStatus = iota
	StatusCore
	StatusNonCore
)

func (s VertexStatus) String() string {
	switch s {
	case StatusCore:
		return "core"
	case StatusNonCore:
		return "non-core"
	default:
		return "unknown"
	}
}

// Sentinel values for an edge's min_cn slot. Any value >= MinPositiveBound
// is a tight lower bound on the common-neighbor count still required for
// epsilon-similarity.
const (
	Similar          int32 = -2
	NotSimilar       int32 = -1
	MinPositiveBound int32 = 2
)

// CSRGraph is the engine's immutable input representation: a dense-vertex,
// compressed-sparse-row undirected simple graph.
//
// Invariant: for every vertex u, Adj[Offset[u]:Offset[u+1]] is strictly
// ascending, contains no self-loop, and is the full neighbor set of u. For
// every edge (u,v) there is a symmetric edge (v,u).
type CSRGraph struct {
	N      int32   // vertex count; ids are 0..N-1
	Offset []int32 // length N+1, Offset[N] == len(Adj)
	Adj    []int32 // length M == 2*|E|
}

// Degree returns deg(u) = Offset[u+1] - Offset[u].
func (g *CSRGraph) Degree(u int32) int32 {
	return g.Offset[u+1] - g.Offset[u]
}

// Neighbors returns the sorted neighbor slice of u.
func (g *CSRGraph) Neighbors(u int32) []int32 {
	return g.Adj[g.Offset[u]:g.Offset[u+1]]
}

// EdgeCount returns m = len(Adj), the number of directed edge slots.
func (g *CSRGraph) EdgeCount() int {
	return len(g.Adj)
}

// Validate checks the CSR structural preconditions the engine assumes.
// Violations are ConfigError-adjacent input problems caught at
// construction time, never recovered from mid-computation.
func (g *CSRGraph) Validate() error {
	if g.N < 0 {
		return NewInvalidInputError(fmt.Sprintf("negative vertex count: %d", g.N), nil)
	}
	if len(g.Offset) != int(g.N)+1 {
		return NewInvalidInputError(
			fmt.Sprintf("offset array has length %d, want %d", len(g.Offset), g.N+1), nil)
	}
	if g.N > 0 && int(g.Offset[g.N]) != len(g.Adj) {
		return NewInvalidInputError(
			fmt.Sprintf("offset[n]=%d does not match adjacency length %d", g.Offset[g.N], len(g.Adj)), nil)
	}
	for u := int32(0); u < g.N; u++ {
		if g.Offset[u] > g.Offset[u+1] {
			return NewInvariantError(fmt.Sprintf("offset not monotone at vertex %d", u))
		}
		nbrs := g.Neighbors(u)
		for i, v := range nbrs {
			if v == u {
				return NewInvariantError(fmt.Sprintf("self-loop at vertex %d", u))
			}
			if i > 0 && nbrs[i-1] >= v {
				return NewInvariantError(fmt.Sprintf("adjacency of vertex %d is not strictly sorted", u))
			}
		}
	}
	return nil
}

// Epsilon is the similarity threshold epsilon = A/B, A,B > 0, A <= B, kept
// as exact integers so the pruning comparisons never touch floating point.
// EpsA2/EpsB2 are A^2/B^2, the form every engine comparison actually uses.
type Epsilon struct {
	A, B  int64
	EpsA2 int64
	EpsB2 int64
}

// NewEpsilon validates and constructs an Epsilon from a/b, 0 < a <= b.
func NewEpsilon(a, b int64) (Epsilon, error) {
	if a <= 0 || b <= 0 {
		return Epsilon{}, NewConfigError("epsilon numerator/denominator must be positive", nil)
	}
	if a > b {
		return Epsilon{}, NewConfigError("epsilon must be in (0,1]", nil)
	}
	return Epsilon{A: a, B: b, EpsA2: a * a, EpsB2: b * b}, nil
}

// String renders epsilon back as "a/b".
func (e Epsilon) String() string {
	return fmt.Sprintf("%d/%d", e.A, e.B)
}

// ClusterRequest is the input to the clustering engine: a validated graph
// plus the (epsilon, mu) parameters and the performance knobs the work
// partitioner reads (spec Component E's thresholds).
type ClusterRequest struct {
	Graph   *CSRGraph
	Epsilon Epsilon
	Mu      int

	// WorkerCount, 0 means runtime.NumCPU().
	WorkerCount int

	// Per-phase partition thresholds; zero fields fall back to the
	// package defaults.
	PruneThreshold          int
	CheckCoreBSP1Threshold  int
	CheckCoreBSP2Threshold  int
	ClusterCoreThreshold    int
	ClusterNonCoreThreshold int

	PrecomputeReverseIndex bool

	// TraceWriter, if non-nil, receives the engine's sub-phase timing
	// lines live as each sub-step finishes - the "1st: prune execution
	// time:...", "core size:...", etc. lines spec Section 6's CLI
	// contract requires on stdout, printed unconditionally the way the
	// original engine writes them via cout. Nil means no trace output.
	TraceWriter io.Writer
}

// Validate enforces spec Section 1's (epsilon, mu) preconditions.
func (r *ClusterRequest) Validate() error {
	if r == nil || r.Graph == nil {
		return NewInvalidInputError("cluster request requires a graph", nil)
	}
	if err := r.Graph.Validate(); err != nil {
		return err
	}
	if r.Epsilon.A <= 0 || r.Epsilon.B <= 0 || r.Epsilon.A > r.Epsilon.B {
		return NewConfigError("epsilon must be in (0,1]", nil)
	}
	if r.Mu < 2 {
		return NewConfigError(fmt.Sprintf("mu must be >= 2, got %d", r.Mu), nil)
	}
	return nil
}

// ClusterPair is one (clusterID, member) output row: either a core paired
// with the minimum-vertex-id label of its component, or a non-core paired
// with a cluster it is epsilon-similar to (a non-core may appear under
// several cluster ids - it is attached, not partitioned).
type ClusterPair struct {
	ClusterID int32 `json:"cluster_id" yaml:"cluster_id"`
	Member    int32 `json:"member" yaml:"member"`
}

// VertexRole classifies a vertex that never appears as a core in the
// output: a Hub touches two or more distinct clusters, an Outlier touches
// at most one.
type VertexRole string

const (
	RoleCore    VertexRole = "core"
	RoleHub     VertexRole = "hub"
	RoleOutlier VertexRole = "outlier"
)

// ClusterResponse is the full result of one clustering run.
type ClusterResponse struct {
	RunID string `json:"run_id" yaml:"run_id"`

	Epsilon string `json:"epsilon" yaml:"epsilon"`
	Mu      int    `json:"mu" yaml:"mu"`

	CorePairs    []ClusterPair `json:"core_pairs" yaml:"core_pairs"`
	NonCorePairs []ClusterPair `json:"non_core_pairs" yaml:"non_core_pairs"`

	// Roles classifies every vertex that appears in NonCorePairs: hub when
	// it is attached to two or more clusters, outlier when attached to one.
	// Non-core vertices with no attachment are not listed.
	Roles map[int32]VertexRole `json:"roles" yaml:"roles"`

	ClusterCount int `json:"cluster_count" yaml:"cluster_count"`
	CoreCount    int `json:"core_count" yaml:"core_count"`

	PhaseTimings []PhaseTiming `json:"phase_timings" yaml:"phase_timings"`
}

// PhaseTiming records the wall-clock duration of one named engine phase,
// surfaced as the "1st: ... ms" style lines spec Section 6 requires on
// stdout.
type PhaseTiming struct {
	Label      string `json:"label" yaml:"label"`
	DurationMS int64  `json:"duration_ms" yaml:"duration_ms"`
}

// ClusterFormatter renders a ClusterResponse in one of the OutputFormats.
type ClusterFormatter interface {
	Format(resp *ClusterResponse, format OutputFormat) (string, error)
	Write(resp *ClusterResponse, format OutputFormat, writer io.Writer) error
}

// ClusterService is the service-layer contract: run the engine on a
// request whose graph is already loaded, and return a response.
// Implemented by service.ClusterServiceImpl.
type ClusterService interface {
	Cluster(req *ClusterRequest) (*ClusterResponse, error)
}
