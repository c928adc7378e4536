// Package config loads PscanConfig, the CLI/MCP-layer configuration that
// supplies defaults for flags the user did not set explicitly: epsilon,
// mu, worker count, the per-phase partition thresholds and the
// precompute-reverse-index knob.
//
// Grounded on the teacher's internal/config (toml_loader.go's
// find-file-walking-up-directories convention and
// service/clone_config_loader.go's viper.SetDefault/ReadInConfig usage),
// trimmed to pscan's much smaller configuration surface: one dedicated
// TOML file, no pyproject.toml fallback (pscan has no Python-ecosystem
// analog to fall back to).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/ludo-technologies/pscan/domain"
)

// configFileName is the dedicated pscan configuration file, searched for
// by walking up from the current directory the way the teacher's
// .pyscn.toml lookup does.
const configFileName = ".pscan.toml"

// Thresholds mirrors domain.ClusterRequest's per-phase partition
// threshold fields, as a config-file-friendly, all-zero-means-default
// value type.
type Thresholds struct {
	Prune           int `toml:"prune" mapstructure:"prune"`
	CheckCoreBSP1   int `toml:"check_core_bsp1" mapstructure:"check_core_bsp1"`
	CheckCoreBSP2   int `toml:"check_core_bsp2" mapstructure:"check_core_bsp2"`
	ClusterCore     int `toml:"cluster_core" mapstructure:"cluster_core"`
	ClusterNonCore  int `toml:"cluster_non_core" mapstructure:"cluster_non_core"`
}

// PscanConfig is the full set of run defaults a .pscan.toml file, or the
// hardcoded fallback, supplies to the CLI and MCP layers.
type PscanConfig struct {
	Epsilon string `toml:"epsilon" mapstructure:"epsilon"`
	Mu      int    `toml:"mu" mapstructure:"mu"`

	Workers int `toml:"workers" mapstructure:"workers"`

	Thresholds Thresholds `toml:"thresholds" mapstructure:"thresholds"`

	PrecomputeReverseIndex bool `toml:"precompute_reverse_index" mapstructure:"precompute_reverse_index"`

	Format string `toml:"format" mapstructure:"format"`
}

// DefaultPscanConfig returns the hardcoded configuration used when no
// .pscan.toml is found, sourced from domain/defaults.go's constants.
func DefaultPscanConfig() *PscanConfig {
	return &PscanConfig{
		Epsilon: fmt.Sprintf("%d/%d", domain.DefaultEpsilonNumerator, domain.DefaultEpsilonDenominator),
		Mu:      domain.DefaultMu,
		Workers: domain.DefaultWorkerCount,
		Thresholds: Thresholds{
			Prune:          domain.DefaultPruneThreshold,
			CheckCoreBSP1:  domain.DefaultCheckCoreBSP1Threshold,
			CheckCoreBSP2:  domain.DefaultCheckCoreBSP2Threshold,
			ClusterCore:    domain.DefaultClusterCoreThreshold,
			ClusterNonCore: domain.DefaultClusterNonCoreThreshold,
		},
		PrecomputeReverseIndex: domain.DefaultPrecomputeReverseIndex,
		Format:                 string(domain.OutputFormatText),
	}
}

// LoadPscanConfig loads PscanConfig with the teacher's load-or-default
// semantics:
//   - explicitPath, if given, must exist and is read directly via viper
//     (any format viper recognizes from the extension: toml, yaml, json).
//   - otherwise .pscan.toml is searched for by walking up from the
//     current working directory the way findPyscnToml does.
//   - if neither is found, DefaultPscanConfig is returned unchanged.
func LoadPscanConfig(explicitPath string) (*PscanConfig, error) {
	if explicitPath != "" {
		return loadFile(explicitPath)
	}

	found, err := findConfigFile(".")
	if err != nil {
		return DefaultPscanConfig(), nil
	}
	return loadFile(found)
}

func loadFile(path string) (*PscanConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := DefaultPscanConfig()
	v.SetDefault("epsilon", defaults.Epsilon)
	v.SetDefault("mu", defaults.Mu)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("thresholds.prune", defaults.Thresholds.Prune)
	v.SetDefault("thresholds.check_core_bsp1", defaults.Thresholds.CheckCoreBSP1)
	v.SetDefault("thresholds.check_core_bsp2", defaults.Thresholds.CheckCoreBSP2)
	v.SetDefault("thresholds.cluster_core", defaults.Thresholds.ClusterCore)
	v.SetDefault("thresholds.cluster_non_core", defaults.Thresholds.ClusterNonCore)
	v.SetDefault("precompute_reverse_index", defaults.PrecomputeReverseIndex)
	v.SetDefault("format", defaults.Format)

	if err := v.ReadInConfig(); err != nil {
		return nil, domain.NewConfigError(fmt.Sprintf("failed to read config file: %s", path), err)
	}

	cfg := &PscanConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, domain.NewConfigError(fmt.Sprintf("failed to parse config file: %s", path), err)
	}
	return cfg, nil
}

// findConfigFile walks up from startDir looking for .pscan.toml, the way
// the teacher's findPyscnToml walks up looking for .pyscn.toml.
func findConfigFile(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, configFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// WritePscanConfig renders cfg as TOML and writes it to path, producing a
// file LoadPscanConfig can read back.
func WritePscanConfig(cfg *PscanConfig, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return domain.NewConfigError("failed to encode config", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return domain.NewIOError(path, err)
	}
	return nil
}
