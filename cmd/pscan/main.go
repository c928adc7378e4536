package main

import (
	"os"

	"github.com/ludo-technologies/pscan/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pscan",
	Short: "A parallel pSCAN structural graph clustering engine",
	Long: `pscan runs the pSCAN structural clustering algorithm over large graphs,
partitioning work across a worker pool for the degree-pruning,
core-check, core-clustering and non-core attachment phases.

Features:
  • Exact epsilon-similarity clustering, no approximation
  • Parallel phase execution sized to the graph and machine
  • CSR dataset ingestion, with JSON/YAML/text reporting`,
	Version: version.Short(),
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewClusterCmd())
	rootCmd.AddCommand(NewVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
