package service

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ludo-technologies/pscan/domain"
)

// ClusterFormatterImpl implements domain.ClusterFormatter.
//
// Grounded on the teacher's OutputFormatterImpl: same Format/Write
// contract and the same FormatUtils-based text rendering, retargeted
// from a ComplexityResponse's function table to a ClusterResponse's
// core/non-core pair tables.
type ClusterFormatterImpl struct{}

// NewClusterFormatter creates a new cluster report formatter.
func NewClusterFormatter() *ClusterFormatterImpl {
	return &ClusterFormatterImpl{}
}

// Format renders resp in the requested format.
func (f *ClusterFormatterImpl) Format(resp *domain.ClusterResponse, format domain.OutputFormat) (string, error) {
	switch format {
	case domain.OutputFormatText, "":
		return f.formatText(resp)
	case domain.OutputFormatJSON:
		return EncodeJSON(resp)
	case domain.OutputFormatYAML:
		return EncodeYAML(resp)
	default:
		return "", domain.NewUnsupportedFormatError(string(format))
	}
}

// Write formats resp and writes it to writer.
func (f *ClusterFormatterImpl) Write(resp *domain.ClusterResponse, format domain.OutputFormat, writer io.Writer) error {
	output, err := f.Format(resp, format)
	if err != nil {
		return err
	}
	if _, err := writer.Write([]byte(output)); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}
	return nil
}

// formatText renders resp as the human-readable report spec Section 6
// describes: run parameters, then summary counts, then phase timings,
// then the core/non-core pair tables.
func (f *ClusterFormatterImpl) formatText(resp *domain.ClusterResponse) (string, error) {
	var builder strings.Builder
	utils := NewFormatUtils()

	builder.WriteString(utils.FormatMainHeader("pSCAN Clustering Report"))

	stats := map[string]interface{}{
		"Run ID":  resp.RunID,
		"Epsilon": resp.Epsilon,
		"Mu":      resp.Mu,
	}
	builder.WriteString(utils.FormatSummaryStats(stats))

	builder.WriteString(utils.FormatSectionHeader("RESULT"))
	builder.WriteString(utils.FormatLabelWithIndent(SectionPadding, "Clusters", resp.ClusterCount))
	builder.WriteString(utils.FormatLabelWithIndent(SectionPadding, "Core vertices", resp.CoreCount))
	builder.WriteString(utils.FormatLabelWithIndent(SectionPadding, "Non-core pairs", len(resp.NonCorePairs)))
	builder.WriteString(utils.FormatSectionSeparator())

	if len(resp.PhaseTimings) > 0 {
		builder.WriteString(utils.FormatSectionHeader("PHASE TIMINGS"))
		for _, pt := range resp.PhaseTimings {
			builder.WriteString(fmt.Sprintf("  %s: %s ... %s\n", pt.Label, "done", utils.FormatDuration(pt.DurationMS)))
		}
		builder.WriteString(utils.FormatSectionSeparator())
	}

	if len(resp.CorePairs) > 0 {
		builder.WriteString(utils.FormatSectionHeader("CORE CLUSTERS"))
		builder.WriteString(utils.FormatTableHeader("Cluster", "Member"))
		for _, p := range sortedPairs(resp.CorePairs) {
			builder.WriteString(fmt.Sprintf("%-10d %10d\n", p.ClusterID, p.Member))
		}
		builder.WriteString(utils.FormatSectionSeparator())
	}

	if len(resp.NonCorePairs) > 0 {
		builder.WriteString(utils.FormatSectionHeader("NON-CORE ATTACHMENTS"))
		builder.WriteString(utils.FormatTableHeader("Cluster", "Member", "Role"))
		for _, p := range sortedPairs(resp.NonCorePairs) {
			role := resp.Roles[p.Member]
			builder.WriteString(fmt.Sprintf("%-10d %10d  %s\n", p.ClusterID, p.Member, role))
		}
		builder.WriteString(utils.FormatSectionSeparator())
	}

	return builder.String(), nil
}

// sortedPairs returns pairs ordered by (ClusterID, Member) so the text
// report is deterministic across runs regardless of the concurrent
// phases' write order.
func sortedPairs(pairs []domain.ClusterPair) []domain.ClusterPair {
	sorted := make([]domain.ClusterPair, len(pairs))
	copy(sorted, pairs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].ClusterID != sorted[j].ClusterID {
			return sorted[i].ClusterID < sorted[j].ClusterID
		}
		return sorted[i].Member < sorted[j].Member
	})
	return sorted
}
