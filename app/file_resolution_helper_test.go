package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFileReader is a mock implementation of domain.FileReader.
type MockFileReader struct {
	mock.Mock
}

func (m *MockFileReader) FileExists(path string) (bool, error) {
	args := m.Called(path)
	return args.Bool(0), args.Error(1)
}

func (m *MockFileReader) IsValidDatasetFile(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

func (m *MockFileReader) CollectDatasetFiles(paths []string, recursive bool, includePatterns []string, excludePatterns []string) ([]string, error) {
	args := m.Called(paths, recursive, includePatterns, excludePatterns)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFileReader) ReadFile(path string) ([]byte, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func TestResolveDatasetPaths_AllPathsAreFiles(t *testing.T) {
	mockReader := new(MockFileReader)
	paths := []string{"a.csr", "b.csr"}
	for _, path := range paths {
		mockReader.On("FileExists", path).Return(true, nil)
	}

	result, err := ResolveDatasetPaths(mockReader, paths, false, []string{"*.csr"}, nil)

	assert.NoError(t, err)
	assert.Equal(t, paths, result)
	mockReader.AssertExpectations(t)
	mockReader.AssertNotCalled(t, "CollectDatasetFiles")
}

func TestResolveDatasetPaths_MixedFilesAndDirectories(t *testing.T) {
	mockReader := new(MockFileReader)
	paths := []string{"a.csr", "datasets"}

	mockReader.On("FileExists", "a.csr").Return(true, nil)
	mockReader.On("FileExists", "datasets").Return(false, nil)

	collected := []string{"a.csr", "datasets/b.csr", "datasets/c.csr"}
	mockReader.On("CollectDatasetFiles", paths, true, []string{"*.csr"}, []string{"*_tmp.csr"}).Return(collected, nil)

	result, err := ResolveDatasetPaths(mockReader, paths, true, []string{"*.csr"}, []string{"*_tmp.csr"})

	assert.NoError(t, err)
	assert.Equal(t, collected, result)
	mockReader.AssertExpectations(t)
}

func TestResolveDatasetPaths_FileExistsError(t *testing.T) {
	mockReader := new(MockFileReader)
	paths := []string{"a.csr", "b.csr"}

	mockReader.On("FileExists", "a.csr").Return(true, nil)
	mockReader.On("FileExists", "b.csr").Return(false, errors.New("permission denied"))

	collected := []string{"a.csr"}
	mockReader.On("CollectDatasetFiles", paths, false, []string{"*.csr"}, []string{}).Return(collected, nil)

	result, err := ResolveDatasetPaths(mockReader, paths, false, []string{"*.csr"}, []string{})

	assert.NoError(t, err)
	assert.Equal(t, collected, result)
	mockReader.AssertExpectations(t)
}

func TestResolveDatasetPaths_CollectFilesError(t *testing.T) {
	mockReader := new(MockFileReader)
	paths := []string{"datasets"}

	mockReader.On("FileExists", "datasets").Return(false, nil)

	collectErr := errors.New("failed to collect files")
	mockReader.On("CollectDatasetFiles", paths, true, []string{"*.csr"}, []string{}).Return([]string(nil), collectErr)

	result, err := ResolveDatasetPaths(mockReader, paths, true, []string{"*.csr"}, []string{})

	assert.Error(t, err)
	assert.Equal(t, collectErr, err)
	assert.Nil(t, result)
	mockReader.AssertExpectations(t)
}

func TestResolveDatasetPaths_EmptyPaths(t *testing.T) {
	mockReader := new(MockFileReader)

	result, err := ResolveDatasetPaths(mockReader, []string{}, false, []string{"*.csr"}, []string{})

	assert.NoError(t, err)
	assert.Equal(t, []string{}, result)
}

func TestResolveDatasetPaths_NoFilesCollected(t *testing.T) {
	mockReader := new(MockFileReader)
	paths := []string{"empty_directory"}

	mockReader.On("FileExists", "empty_directory").Return(false, nil)
	mockReader.On("CollectDatasetFiles", paths, false, []string{"*.csr"}, []string{}).Return([]string{}, nil)

	result, err := ResolveDatasetPaths(mockReader, paths, false, []string{"*.csr"}, []string{})

	assert.NoError(t, err)
	assert.Empty(t, result)
	mockReader.AssertExpectations(t)
}
