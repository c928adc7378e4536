package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ludo-technologies/pscan/domain"
)

// datasetExtensions lists the file extensions the engine recognizes as CSR
// dataset files. ".pscan" is this project's own dump format (internal/csrio);
// ".csr" and ".graph" are accepted so datasets exported by other pSCAN/SNAP
// style tools can be fed in directly.
var datasetExtensions = map[string]bool{
	".csr":   true,
	".graph": true,
	".pscan": true,
}

// skipDirs lists directory names never worth descending into while
// recursively discovering dataset files.
var skipDirs = []string{".git", "node_modules", "__pycache__", ".venv", "dist", "build"}

// FileReaderImpl implements domain.FileReader over the local filesystem,
// using doublestar for glob matching - a drop-in replacement for the
// hand-rolled globstar parser the teacher's file_reader.go carried, so
// patterns like "**/*.csr" are handled by a real glob engine instead of a
// partial reimplementation of one.
type FileReaderImpl struct{}

// NewFileReader creates a new dataset file reader service.
func NewFileReader() *FileReaderImpl {
	return &FileReaderImpl{}
}

// CollectDatasetFiles finds the CSR dataset files in the given paths,
// descending into subdirectories only when recursive is set.
func (f *FileReaderImpl) CollectDatasetFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error) {
	if err := f.validatePatterns(includePatterns, "include"); err != nil {
		return nil, err
	}
	if err := f.validatePatterns(excludePatterns, "exclude"); err != nil {
		return nil, err
	}

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, domain.NewFileNotFoundError(path, err)
		}

		if info.IsDir() {
			dirFiles, err := f.collectFromDirectory(path, recursive, includePatterns, excludePatterns)
			if err != nil {
				return nil, err
			}
			files = append(files, dirFiles...)
		} else if f.IsValidDatasetFile(path) && f.shouldIncludeFile(path, includePatterns, excludePatterns) {
			files = append(files, path)
		}
	}
	return files, nil
}

// ReadFile reads the content of a file.
func (f *FileReaderImpl) ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewFileNotFoundError(path, err)
	}
	return content, nil
}

// IsValidDatasetFile checks if a file has a recognized dataset extension.
func (f *FileReaderImpl) IsValidDatasetFile(path string) bool {
	return datasetExtensions[strings.ToLower(filepath.Ext(path))]
}

// FileExists checks if a file exists and is a regular file.
func (f *FileReaderImpl) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

func (f *FileReaderImpl) collectFromDirectory(dirPath string, recursive bool, includePatterns, excludePatterns []string) ([]string, error) {
	var files []string

	walkFunc := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != dirPath && !recursive {
				return filepath.SkipDir
			}
			if strings.HasPrefix(info.Name(), ".") && path != dirPath {
				return filepath.SkipDir
			}
			if f.shouldSkipDirectory(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if f.IsValidDatasetFile(path) && f.shouldIncludeFile(path, includePatterns, excludePatterns) {
			files = append(files, path)
		}
		return nil
	}

	if err := filepath.Walk(dirPath, walkFunc); err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", dirPath, err)
	}
	return files, nil
}

func (f *FileReaderImpl) shouldIncludeFile(path string, includePatterns, excludePatterns []string) bool {
	for _, pattern := range excludePatterns {
		if f.matchesPattern(pattern, path) {
			return false
		}
	}
	if len(includePatterns) == 0 {
		return true
	}
	for _, pattern := range includePatterns {
		if f.matchesPattern(pattern, path) {
			return true
		}
	}
	return false
}

// matchesPattern matches pattern against both the full (slash-normalized)
// path and the base name, so a bare "*.csr" pattern still works against a
// deeply nested file the way the CLI's --include flag advertises.
func (f *FileReaderImpl) matchesPattern(pattern, path string) bool {
	slashPath := filepath.ToSlash(path)
	if ok, _ := doublestar.Match(pattern, slashPath); ok {
		return true
	}
	if ok, _ := doublestar.Match(pattern, filepath.Base(path)); ok {
		return true
	}
	return false
}

func (f *FileReaderImpl) validatePatterns(patterns []string, patternType string) error {
	for _, pattern := range patterns {
		if pattern == "" {
			return fmt.Errorf("empty %s pattern not allowed", patternType)
		}
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid %s pattern %q", patternType, pattern)
		}
	}
	return nil
}

func (f *FileReaderImpl) shouldSkipDirectory(dirName string) bool {
	lower := strings.ToLower(dirName)
	for _, skip := range skipDirs {
		if lower == skip {
			return true
		}
	}
	return false
}

// GetFileInfo provides additional information about a file.
func (f *FileReaderImpl) GetFileInfo(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, domain.NewFileNotFoundError(path, err)
	}
	return info, nil
}

// ValidatePaths validates that all provided paths exist and are accessible.
func (f *FileReaderImpl) ValidatePaths(paths []string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return domain.NewFileNotFoundError(path, err)
			}
			return domain.NewInvalidInputError(fmt.Sprintf("cannot access path: %s", path), err)
		}
	}
	return nil
}
