// Package lighthouse loads the accessibility slice of a Lighthouse JSON report.
package lighthouse

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
)

// Result carries the rounded accessibility score and the audits that failed.
type Result struct {
	// Score is the accessibility category score on a 0-100 scale.
	Score *int
	// FailingAudits lists every audit with a non-null score below 1 that
	// reports at least one offending item, ordered by audit id.
	FailingAudits []Audit
}

// Audit is one failing Lighthouse accessibility audit.
type Audit struct {
	ID          string
	Title       string
	Description string
	ItemCount   int
}

// report mirrors the subset of the Lighthouse document we consume.
type report struct {
	Categories struct {
		Accessibility struct {
			Score *float64 `json:"score"`
		} `json:"accessibility"`
	} `json:"categories"`
	Audits map[string]audit `json:"audits"`
}

type audit struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Score       *float64 `json:"score"`
	Details     struct {
		Items []json.RawMessage `json:"items"`
	} `json:"details"`
}

// Load reads a Lighthouse JSON report from disk. An empty path yields a nil
// result with no error. A missing or malformed file is reported to the caller,
// which is expected to fall back to an N/A score rather than abort.
func Load(path string) (*Result, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lighthouse report: %w", err)
	}
	var doc report
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse lighthouse report: %w", err)
	}

	// Missing score inside an otherwise valid document counts as 0.
	frac := 0.0
	if doc.Categories.Accessibility.Score != nil {
		frac = *doc.Categories.Accessibility.Score
	}
	score := int(math.Round(frac * 100))

	res := &Result{Score: &score}
	ids := make([]string, 0, len(doc.Audits))
	for id := range doc.Audits {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		a := doc.Audits[id]
		if a.Score == nil || *a.Score >= 1 || len(a.Details.Items) == 0 {
			continue
		}
		res.FailingAudits = append(res.FailingAudits, Audit{
			ID:          id,
			Title:       a.Title,
			Description: a.Description,
			ItemCount:   len(a.Details.Items),
		})
	}
	return res, nil
}
