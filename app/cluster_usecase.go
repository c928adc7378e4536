package app

import (
	"context"
	"fmt"
	"io"

	"github.com/ludo-technologies/pscan/domain"
	"github.com/ludo-technologies/pscan/internal/constants"
	"github.com/ludo-technologies/pscan/internal/csrio"
)

// ClusterUseCaseConfig mirrors the CLI/MCP-layer options that shape one
// clustering run beyond the (graph, epsilon, mu) triple itself - the
// performance knobs domain.ClusterRequest exposes, plus output routing.
type ClusterUseCaseConfig struct {
	Epsilon domain.Epsilon
	Mu      int

	WorkerCount            int
	PrecomputeReverseIndex bool

	PruneThreshold          int
	CheckCoreBSP1Threshold  int
	CheckCoreBSP2Threshold  int
	ClusterCoreThreshold    int
	ClusterNonCoreThreshold int

	Format     domain.OutputFormat
	OutputPath string

	// ProgressManager, if non-nil, is driven through the four named
	// phases around the engine run (best-effort: the engine itself
	// reports phases as atomic blocks, not incrementally).
	Progress domain.ProgressManager

	// Trace, if non-nil, receives the engine's live sub-phase timing
	// lines as they are produced, independent of Format/OutputPath.
	Trace io.Writer
}

// ClusterUseCase is the CLI/MCP collaborator that turns a dataset path
// into a rendered report: resolve the path, read the CSR graph, run the
// engine through domain.ClusterService, and write the formatted
// response - the same read/execute/format/write shape as the teacher's
// per-analysis use cases (e.g. CloneUseCase), retargeted at a single
// graph dataset instead of a tree of source files.
type ClusterUseCase struct {
	fileReader domain.FileReader
	service    domain.ClusterService
	formatter  domain.ClusterFormatter
	writer     domain.ReportWriter
}

// NewClusterUseCase wires a ClusterUseCase from its four collaborators.
func NewClusterUseCase(
	fileReader domain.FileReader,
	service domain.ClusterService,
	formatter domain.ClusterFormatter,
	writer domain.ReportWriter,
) *ClusterUseCase {
	return &ClusterUseCase{
		fileReader: fileReader,
		service:    service,
		formatter:  formatter,
		writer:     writer,
	}
}

// Execute resolves paths to a single dataset file, clusters it, and
// writes the formatted report. stdout is the writer used when cfg
// requests no OutputPath (i.e. text format to the terminal).
func (uc *ClusterUseCase) Execute(ctx context.Context, paths []string, recursive bool, includePatterns, excludePatterns []string, cfg ClusterUseCaseConfig, stdout io.Writer) (*domain.ClusterResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewCancelledError("cluster run cancelled", err)
	}

	files, err := ResolveDatasetPaths(uc.fileReader, paths, recursive, includePatterns, excludePatterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, domain.NewInvalidInputError("no dataset files found", nil)
	}
	if len(files) > 1 {
		return nil, domain.NewInvalidInputError(
			fmt.Sprintf("pscan cluster takes exactly one dataset, found %d: %v", len(files), files), nil)
	}

	graph, err := csrio.ReadCSR(files[0])
	if err != nil {
		return nil, err
	}

	req := &domain.ClusterRequest{
		Graph:                   graph,
		Epsilon:                 cfg.Epsilon,
		Mu:                      cfg.Mu,
		WorkerCount:             cfg.WorkerCount,
		PruneThreshold:          cfg.PruneThreshold,
		CheckCoreBSP1Threshold:  cfg.CheckCoreBSP1Threshold,
		CheckCoreBSP2Threshold:  cfg.CheckCoreBSP2Threshold,
		ClusterCoreThreshold:    cfg.ClusterCoreThreshold,
		ClusterNonCoreThreshold: cfg.ClusterNonCoreThreshold,
		PrecomputeReverseIndex:  cfg.PrecomputeReverseIndex,
		TraceWriter:             cfg.Trace,
	}

	if cfg.Progress != nil {
		cfg.Progress.Initialize(int(graph.N))
		for _, phase := range constants.PhaseOrder {
			cfg.Progress.StartTask(phase)
		}
		defer cfg.Progress.Close()
	}

	resp, err := uc.service.Cluster(req)
	if cfg.Progress != nil {
		for _, phase := range constants.PhaseOrder {
			cfg.Progress.CompleteTask(phase, err == nil)
		}
	}
	if err != nil {
		return nil, err
	}

	format := cfg.Format
	if format == "" {
		format = domain.OutputFormatText
	}

	writeErr := uc.writer.Write(stdout, cfg.OutputPath, format, func(w io.Writer) error {
		return uc.formatter.Write(resp, format, w)
	})
	if writeErr != nil {
		return resp, writeErr
	}
	return resp, nil
}
