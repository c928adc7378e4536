package service

import (
    "fmt"

    "github.com/ludo-technologies/pscan/domain"
)

// OutputFormatResolver resolves the CLI's mutually exclusive --json/--yaml
// flags into a single domain.OutputFormat, the way the teacher's resolver
// turned --html/--json/--csv/--yaml into one format - trimmed to the
// three formats domain.OutputFormat defines for a cluster report.
type OutputFormatResolver struct{}

func NewOutputFormatResolver() *OutputFormatResolver { return &OutputFormatResolver{} }

// Determine evaluates format flags and returns the selected format.
// At most one of json/yaml may be true; if neither is, it falls back to
// configDefault (typically the loaded config file's format field, itself
// defaulting to text).
func (r *OutputFormatResolver) Determine(json, yaml bool, configDefault domain.OutputFormat) (domain.OutputFormat, error) {
    formatCount := 0
    var format domain.OutputFormat

    if json {
        formatCount++
        format = domain.OutputFormatJSON
    }
    if yaml {
        formatCount++
        format = domain.OutputFormatYAML
    }

    if formatCount > 1 {
        return "", fmt.Errorf("only one output format flag can be specified")
    }
    if formatCount == 0 {
        if configDefault != "" {
            return configDefault, nil
        }
        return domain.OutputFormatText, nil
    }
    return format, nil
}

