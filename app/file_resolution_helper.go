package app

import "github.com/ludo-technologies/pscan/domain"

// ResolveDatasetPaths resolves a list of CLI-supplied paths into concrete
// CSR dataset file paths. If every path is already a file, it is returned
// unchanged; otherwise directories are expanded via fileReader's
// doublestar-pattern-aware directory walk.
//
// This mirrors the teacher's ResolveFilePaths optimization: a caller that
// has already pre-collected files (e.g. the MCP handler passing a single
// dataset path) skips the directory walk entirely.
func ResolveDatasetPaths(
	fileReader domain.FileReader,
	paths []string,
	recursive bool,
	includePatterns []string,
	excludePatterns []string,
) ([]string, error) {
	allFiles := true
	for _, path := range paths {
		exists, err := fileReader.FileExists(path)
		if err != nil || !exists {
			allFiles = false
			break
		}
	}
	if allFiles {
		return paths, nil
	}

	files, err := fileReader.CollectDatasetFiles(paths, recursive, includePatterns, excludePatterns)
	if err != nil {
		return nil, err
	}
	return files, nil
}
