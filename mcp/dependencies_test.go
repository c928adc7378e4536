package mcp

import (
	"github.com/ludo-technologies/pscan/domain"
	"github.com/ludo-technologies/pscan/internal/config"
)

// NewTestDependencies builds a Dependencies with injected collaborators,
// letting handler tests substitute fakes without going through
// NewDependencies' real service construction.
func NewTestDependencies(fr domain.FileReader, formatter domain.ClusterFormatter, writer domain.ReportWriter, cfg *config.PscanConfig, path string) *Dependencies {
	return &Dependencies{
		fileReader: fr,
		formatter:  formatter,
		writer:     writer,
		config:     cfg,
		configPath: path,
	}
}
