package mcp

import (
	"github.com/ludo-technologies/pscan/app"
	"github.com/ludo-technologies/pscan/domain"
	"github.com/ludo-technologies/pscan/internal/config"
	"github.com/ludo-technologies/pscan/service"
)

// Dependencies aggregates the shared services required by MCP handlers.
type Dependencies struct {
	fileReader domain.FileReader
	formatter  domain.ClusterFormatter
	writer     domain.ReportWriter

	config     *config.PscanConfig
	configPath string
}

// NewDependencies constructs the dependency set with sane defaults.
func NewDependencies(cfg *config.PscanConfig, configPath string) *Dependencies {
	if cfg == nil {
		cfg = config.DefaultPscanConfig()
	}

	return &Dependencies{
		fileReader: service.NewFileReader(),
		formatter:  service.NewClusterFormatter(),
		writer:     service.NewFileOutputWriter(nil),
		config:     cfg,
		configPath: configPath,
	}
}

// Config exposes the loaded configuration snapshot.
func (d *Dependencies) Config() *config.PscanConfig {
	return d.config
}

// ConfigPath returns the configured config file path (may be empty to trigger discovery).
func (d *Dependencies) ConfigPath() string {
	return d.configPath
}

// BuildClusterUseCase assembles a fresh ClusterUseCase with injected
// dependencies, the MCP-layer analog of the CLI's use case construction.
func (d *Dependencies) BuildClusterUseCase() *app.ClusterUseCase {
	return app.NewClusterUseCase(d.fileReader, service.NewClusterService(), d.formatter, d.writer)
}
