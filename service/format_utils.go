package service

import (
    "encoding/json"
    "fmt"
    "sort"
    "strings"

    "github.com/ludo-technologies/pscan/domain"
    "gopkg.in/yaml.v3"
)

// EncodeJSON returns an indented JSON string for the given value.
func EncodeJSON(v interface{}) (string, error) {
    data, err := json.MarshalIndent(v, "", "  ")
    if err != nil {
        return "", domain.NewOutputError("failed to marshal JSON", err)
    }
    return string(data), nil
}

// EncodeYAML returns a YAML string for the given value.
func EncodeYAML(v interface{}) (string, error) {
    data, err := yaml.Marshal(v)
    if err != nil {
        return "", domain.NewOutputError("failed to marshal YAML", err)
    }
    return string(data), nil
}

// Standard formatting constants
const (
    HeaderWidth    = 40
    LabelWidth     = 25
    SectionPadding = 2
)

// FormatUtils provides shared formatting utilities
type FormatUtils struct{}

// NewFormatUtils creates a new format utilities instance
func NewFormatUtils() *FormatUtils {
    return &FormatUtils{}
}

// FormatMainHeader creates a standardized main header
func (f *FormatUtils) FormatMainHeader(title string) string {
    var builder strings.Builder
    builder.WriteString(title + "\n")
    builder.WriteString(strings.Repeat("=", HeaderWidth) + "\n\n")
    return builder.String()
}

// FormatSectionHeader creates a standardized section header
func (f *FormatUtils) FormatSectionHeader(title string) string {
    var builder strings.Builder
    builder.WriteString(strings.ToUpper(title) + "\n")
    builder.WriteString(strings.Repeat("-", len(title)) + "\n")
    return builder.String()
}

// FormatSectionSeparator creates a section separator
func (f *FormatUtils) FormatSectionSeparator() string {
    return "\n"
}

// FormatLabelWithIndent creates a formatted label with specific indentation
func (f *FormatUtils) FormatLabelWithIndent(indent int, label string, value interface{}) string {
    return fmt.Sprintf("%s%s: %v\n", strings.Repeat(" ", indent), label, value)
}

// FormatDuration formats duration in milliseconds consistently
func (f *FormatUtils) FormatDuration(durationMs int64) string {
    return fmt.Sprintf("%dms", durationMs)
}

// FormatTableHeader creates a table header with consistent formatting
func (f *FormatUtils) FormatTableHeader(columns ...string) string {
    header := strings.Join(columns, "  ")
    separator := strings.Repeat("-", len(header))
    return header + "\n" + separator + "\n"
}

// FormatSummaryStats creates a standardized summary statistics section,
// one line per entry in label order
func (f *FormatUtils) FormatSummaryStats(stats map[string]interface{}) string {
    var builder strings.Builder
    builder.WriteString(f.FormatSectionHeader("SUMMARY"))

    labels := make([]string, 0, len(stats))
    for label := range stats {
        labels = append(labels, label)
    }
    sort.Strings(labels)
    for _, label := range labels {
        builder.WriteString(f.FormatLabelWithIndent(SectionPadding, label, stats[label]))
    }

    builder.WriteString(f.FormatSectionSeparator())
    return builder.String()
}
