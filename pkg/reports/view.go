package reports

import (
	"sort"
	"time"

	"a11yreport/pkg/axe"
	"a11yreport/pkg/findings"
	"a11yreport/pkg/lighthouse"
	"a11yreport/pkg/scorecard"
)

// Phase tags a report as before or after the fix pass.
type Phase string

const (
	PhasePre  Phase = "pre"
	PhasePost Phase = "post"
)

// FindingRow is a manual finding plus its display badge class.
type FindingRow struct {
	findings.ManualFinding
	BadgeCls string
}

// ReportView is everything the HTML template needs.
type ReportView struct {
	Title       string
	GeneratedAt string
	Cards       []scorecard.Card

	Violations      axe.ViolationList
	TotalViolations int

	Findings []FindingRow

	FailingAudits []lighthouse.Audit

	// ScreenReader is an accessibility tree dump embedded verbatim.
	ScreenReader string
}

// BuildReportView assembles the template view from the loaded scan artifacts.
// Any of the inputs may be empty or nil; the view still renders.
func BuildReportView(phase Phase, lh *lighthouse.Result, violations axe.ViolationList, manual []findings.ManualFinding, screenReader string) ReportView {
	title := "Accessibility Audit Report"
	if phase == PhasePost {
		title = "Post-Fix Accessibility Report"
	}

	var score *int
	var audits []lighthouse.Audit
	if lh != nil {
		score = lh.Score
		audits = lh.FailingAudits
	}

	rows := make([]FindingRow, 0, len(manual))
	for _, f := range manual {
		rows = append(rows, FindingRow{
			ManualFinding: f,
			BadgeCls:      findings.BadgeClass(f.Severity),
		})
	}
	// Most severe first; entries of equal severity keep their input order.
	sort.SliceStable(rows, func(i, j int) bool {
		return findings.Rank(rows[i].Severity) < findings.Rank(rows[j].Severity)
	})

	return ReportView{
		Title:           title,
		GeneratedAt:     time.Now().Format(time.RFC1123),
		Cards:           scorecard.NewCards(score, violations.TotalCount(), len(manual)),
		Violations:      violations,
		TotalViolations: violations.TotalCount(),
		Findings:        rows,
		FailingAudits:   audits,
		ScreenReader:    screenReader,
	}
}
