// Package findings holds the manual review records and their severity scale.
package findings

import (
	"encoding/json"
	"fmt"
	"os"
)

// Severity is the reviewer-assigned impact level of a manual finding.
type Severity string

// Severity constants (matching the axe-core impact scale)
const (
	SeverityCritical Severity = "critical"
	SeveritySerious  Severity = "serious"
	SeverityModerate Severity = "moderate"
	SeverityMinor    Severity = "minor"
)

// ManualFinding is a reviewer-supplied issue automated scans cannot catch.
type ManualFinding struct {
	Severity Severity `json:"severity"`
	Issue    string   `json:"issue"`
	// Location is a file:line style pointer into the audited source.
	Location string `json:"location"`
	// WCAG is the success criterion reference, e.g. "1.4.3".
	WCAG string `json:"wcag,omitempty"`
	Fix  string `json:"fix"`
}

// Rank orders severities for display, most severe first.
func Rank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 0
	case SeveritySerious:
		return 1
	case SeverityModerate:
		return 2
	case SeverityMinor:
		return 3
	default:
		return 4
	}
}

// BadgeClass maps a severity to the CSS badge class used in the HTML report.
// Unrecognized severities render with the neutral badge, never rejected.
func BadgeClass(s Severity) string {
	switch s {
	case SeverityCritical:
		return "badge critical"
	case SeveritySerious:
		return "badge serious"
	case SeverityModerate:
		return "badge moderate"
	case SeverityMinor:
		return "badge minor"
	default:
		return "badge info"
	}
}

// LoadManualFindings reads findings from a file path or an inline JSON string.
// The file path wins when both are given; with neither, the list is empty.
// Parse failures are reported to the caller, which is expected to degrade to
// an empty list rather than abort.
func LoadManualFindings(path, inline string) ([]ManualFinding, error) {
	var raw []byte
	switch {
	case path != "":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read manual findings: %w", err)
		}
		raw = b
	case inline != "":
		raw = []byte(inline)
	default:
		return nil, nil
	}

	var list []ManualFinding
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to parse manual findings: %w", err)
	}
	return list, nil
}
