package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ludo-technologies/pscan/app"
	"github.com/ludo-technologies/pscan/domain"
	"github.com/ludo-technologies/pscan/internal/config"
	"github.com/ludo-technologies/pscan/internal/csrio"
	"github.com/ludo-technologies/pscan/service"
)

// ClusterCommand handles the pSCAN clustering CLI command.
type ClusterCommand struct {
	recursive       bool
	configFile      string
	includePatterns []string
	excludePatterns []string

	epsilon string
	mu      int
	workers int

	precomputeReverseIndex bool

	pruneThreshold          int
	checkCoreBSP1Threshold  int
	checkCoreBSP2Threshold  int
	clusterCoreThreshold    int
	clusterNonCoreThreshold int

	json   bool
	yaml   bool
	output string

	verbose bool
}

// NewClusterCommand creates a new cluster command with its defaults.
func NewClusterCommand() *ClusterCommand {
	return &ClusterCommand{
		recursive: false,
	}
}

// CreateCobraCommand creates the Cobra command for pSCAN clustering.
func (c *ClusterCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster <dataset>",
		Short: "Run pSCAN structural graph clustering over a CSR dataset",
		Long: `Run the parallel pSCAN structural clustering algorithm over a graph
given as a plain-text CSR adjacency dataset (vertex count, then one
adjacency line per vertex).

Examples:
  # Cluster a dataset with eps=1/2, mu=3
  pscan cluster --eps 1/2 --mu 3 graph.pscan

  # Use more worker goroutines and write a JSON report to a file
  pscan cluster --eps 2/3 --mu 5 --workers 8 --json -o report.json graph.pscan`,
		Args: cobra.MinimumNArgs(1),
		RunE: c.runCluster,
	}

	cmd.Flags().StringVar(&c.epsilon, "eps", "", "Similarity threshold as a fraction \"a/b\" (default: the config file's epsilon)")
	cmd.Flags().IntVar(&c.mu, "mu", 0, "Minimum epsilon-similar neighbor count for core status, not counting the vertex itself (default: the config file's mu)")
	cmd.Flags().IntVar(&c.workers, "workers", 0, "Worker goroutine count, 0 = runtime.NumCPU()")
	cmd.Flags().BoolVar(&c.precomputeReverseIndex, "precompute-reverse-index", false,
		"Precompute a reverse adjacency index before clustering")

	cmd.Flags().IntVar(&c.pruneThreshold, "prune-threshold", 0, "Degree-pruning phase parallelization threshold")
	cmd.Flags().IntVar(&c.checkCoreBSP1Threshold, "check-core-bsp1-threshold", 0, "Core-check first pass parallelization threshold")
	cmd.Flags().IntVar(&c.checkCoreBSP2Threshold, "check-core-bsp2-threshold", 0, "Core-check second pass parallelization threshold")
	cmd.Flags().IntVar(&c.clusterCoreThreshold, "cluster-core-threshold", 0, "Core-clustering phase parallelization threshold")
	cmd.Flags().IntVar(&c.clusterNonCoreThreshold, "cluster-noncore-threshold", 0, "Non-core attachment phase parallelization threshold")
	_ = cmd.Flags().MarkHidden("prune-threshold")
	_ = cmd.Flags().MarkHidden("check-core-bsp1-threshold")
	_ = cmd.Flags().MarkHidden("check-core-bsp2-threshold")
	_ = cmd.Flags().MarkHidden("cluster-core-threshold")
	_ = cmd.Flags().MarkHidden("cluster-noncore-threshold")

	cmd.Flags().BoolVarP(&c.recursive, "recursive", "r", c.recursive, "Recursively search directories for dataset files")
	cmd.Flags().StringSliceVar(&c.includePatterns, "include", nil, "File patterns to include when searching directories")
	cmd.Flags().StringSliceVar(&c.excludePatterns, "exclude", nil, "File patterns to exclude when searching directories")
	cmd.Flags().StringVarP(&c.configFile, "config", "c", "", "Path to a .pscan.toml configuration file")

	cmd.Flags().BoolVar(&c.json, "json", false, "Write the report as JSON")
	cmd.Flags().BoolVar(&c.yaml, "yaml", false, "Write the report as YAML")
	cmd.Flags().StringVarP(&c.output, "output", "o", "", "Write the report to this file instead of stdout")

	cmd.Flags().BoolVarP(&c.verbose, "verbose", "v", false, "Show phase progress on stderr")

	return cmd
}

func (c *ClusterCommand) runCluster(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadPscanConfig(c.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	epsStr := c.epsilon
	if epsStr == "" {
		epsStr = cfg.Epsilon
	}
	eps, err := csrio.ParseEpsilon(epsStr)
	if err != nil {
		return fmt.Errorf("invalid --eps: %w", err)
	}

	explicit := GetExplicitFlags(cmd)

	mu := c.mu
	if !explicit["mu"] {
		mu = cfg.Mu
	}

	workers := c.workers
	if !explicit["workers"] {
		workers = cfg.Workers
	}

	resolver := service.NewOutputFormatResolver()
	format, err := resolver.Determine(c.json, c.yaml, domain.OutputFormat(cfg.Format))
	if err != nil {
		return err
	}

	var progress domain.ProgressManager
	if c.verbose {
		progress = service.NewProgressManager()
		progress.SetWriter(os.Stderr)
	}

	useCase := app.NewClusterUseCase(
		service.NewFileReader(),
		service.NewClusterService(),
		service.NewClusterFormatter(),
		service.NewFileOutputWriter(os.Stderr),
	)

	ucCfg := app.ClusterUseCaseConfig{
		Epsilon:                 eps,
		Mu:                      mu,
		WorkerCount:             workers,
		PrecomputeReverseIndex:  c.precomputeReverseIndex || cfg.PrecomputeReverseIndex,
		PruneThreshold:          firstNonZero(c.pruneThreshold, cfg.Thresholds.Prune),
		CheckCoreBSP1Threshold:  firstNonZero(c.checkCoreBSP1Threshold, cfg.Thresholds.CheckCoreBSP1),
		CheckCoreBSP2Threshold:  firstNonZero(c.checkCoreBSP2Threshold, cfg.Thresholds.CheckCoreBSP2),
		ClusterCoreThreshold:    firstNonZero(c.clusterCoreThreshold, cfg.Thresholds.ClusterCore),
		ClusterNonCoreThreshold: firstNonZero(c.clusterNonCoreThreshold, cfg.Thresholds.ClusterNonCore),
		Format:                  format,
		OutputPath:              c.output,
		Progress:                progress,
		Trace:                   cmd.OutOrStdout(),
	}

	ctx := context.Background()
	_, err = useCase.Execute(ctx, args, c.recursive, c.includePatterns, c.excludePatterns, ucCfg, cmd.OutOrStdout())
	if err != nil {
		return c.reportFailure(cmd, err)
	}
	return nil
}

// reportFailure categorizes a run error and prints recovery suggestions
// to stderr before returning the error to Cobra for the final exit.
func (c *ClusterCommand) reportFailure(cmd *cobra.Command, err error) error {
	categorizer := service.NewErrorCategorizer()
	categorized := categorizer.Categorize(err)

	suggestions := categorizer.GetRecoverySuggestions(categorized.Category)
	if len(suggestions) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s:\n", categorized.Category)
		for _, s := range suggestions {
			fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", s)
		}
	}

	return fmt.Errorf("cluster run failed: %w", err)
}

func firstNonZero(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

// NewClusterCmd creates and returns the cluster cobra command.
func NewClusterCmd() *cobra.Command {
	clusterCommand := NewClusterCommand()
	return clusterCommand.CreateCobraCommand()
}
