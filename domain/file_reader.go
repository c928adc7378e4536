package domain

// FileReader abstracts dataset discovery and reading so the CLI and MCP
// layers can resolve a mix of files and directories into a concrete list
// of CSR dataset files before the engine ever sees a path.
type FileReader interface {
	// CollectDatasetFiles walks paths (files or directories) and returns
	// every dataset file found, recursing into directories when recursive
	// is set. includePatterns/excludePatterns are doublestar glob
	// patterns matched against each candidate's path.
	CollectDatasetFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error)

	// ReadFile reads the raw content of a file.
	ReadFile(path string) ([]byte, error)

	// IsValidDatasetFile reports whether path has a recognized CSR
	// dataset extension (.csr, .graph, .pscan).
	IsValidDatasetFile(path string) bool

	// FileExists reports whether path exists and is a regular file.
	FileExists(path string) (bool, error)
}
