package reports

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"a11yreport/pkg/axe"
	"a11yreport/pkg/findings"
	"a11yreport/pkg/lighthouse"
)

func intPtr(n int) *int { return &n }

func sampleViolations() axe.ViolationList {
	return axe.ViolationList{
		{Rule: "image-alt", Count: 3, Description: "Ensures <img> elements have alternate text.", Elements: []string{"img.hero", "img.logo"}, HelpURL: "https://dequeuniversity.com/rules/axe/4.4/image-alt"},
		{Rule: "label", Count: 1, Description: "Ensures every form element has a label.", Elements: []string{"input#search"}},
	}
}

func generate(t *testing.T, view ReportView) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, GenerateHTMLReport(view, path))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestGenerateHTMLReport(t *testing.T) {
	lh := &lighthouse.Result{Score: intPtr(81)}
	view := BuildReportView(PhasePre, lh, sampleViolations(), nil, "")
	content := generate(t, view)

	assert.Contains(t, content, "Accessibility Audit Report")
	assert.Contains(t, content, "81/100")
	assert.Contains(t, content, `<div class="value ok">81/100</div>`)
	assert.Contains(t, content, `<div class="value bad">4</div>`)
	assert.Contains(t, content, `<div class="value good">0</div>`)
	assert.Contains(t, content, "Axe-core Violations (4 total)")
	assert.Contains(t, content, "image-alt")
	assert.Contains(t, content, "3 occurrences")
	assert.Contains(t, content, "1 occurrence<")
	assert.Contains(t, content, `href="https://dequeuniversity.com/rules/axe/4.4/image-alt"`)
	assert.NotContains(t, content, "Manual Findings")
	assert.NotContains(t, content, "Lighthouse Failing Audits")
	assert.Contains(t, content, "<html")
	assert.Contains(t, content, "</html>")
}

func TestGenerateHTMLReportPostPhase(t *testing.T) {
	view := BuildReportView(PhasePost, nil, nil, nil, "")
	content := generate(t, view)

	assert.Contains(t, content, "Post-Fix Accessibility Report")
	assert.NotContains(t, content, "Accessibility Audit Report")
}

func TestGenerateHTMLReportAllInputsAbsent(t *testing.T) {
	view := BuildReportView(PhasePre, nil, nil, nil, "")
	content := generate(t, view)

	assert.Contains(t, content, "N/A")
	assert.Contains(t, content, "No axe-core violations detected.")
	assert.Contains(t, content, "Axe-core Violations (0 total)")
	assert.Contains(t, content, `<div class="value good">0</div>`)
	assert.NotContains(t, content, "Manual Findings")
	assert.NotContains(t, content, "Lighthouse Failing Audits")
	assert.NotContains(t, content, "Screen Reader Tree")
}

func TestGenerateHTMLReportManualFindings(t *testing.T) {
	manual := []findings.ManualFinding{
		{Severity: findings.SeverityMinor, Issue: "Low contrast on footer links", Location: "src/Footer.tsx:12", Fix: "Darken the link color"},
		{Severity: findings.SeverityCritical, Issue: "Modal cannot be closed with <script>alert(1)</script> keyboard", Location: "src/Modal.tsx:88", WCAG: "2.1.2", Fix: "Handle Escape"},
	}
	view := BuildReportView(PhasePre, nil, nil, manual, "")
	content := generate(t, view)

	assert.Contains(t, content, "Manual Findings")
	assert.Contains(t, content, `<span class="badge critical">critical</span>`)
	assert.Contains(t, content, `<span class="badge minor">minor</span>`)
	// Critical sorts above minor.
	assert.Less(t, strings.Index(content, "badge critical"), strings.Index(content, "badge minor"))
	// Untrusted text never reaches the output unescaped.
	assert.Contains(t, content, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, content, "<script>alert(1)</script>")
	assert.Contains(t, content, `<div class="value bad">2</div>`)
}

func TestGenerateHTMLReportFailingAudits(t *testing.T) {
	lh := &lighthouse.Result{
		Score: intPtr(64),
		FailingAudits: []lighthouse.Audit{
			{ID: "image-alt", Title: "Image elements have [alt] attributes", Description: "Informative elements should have short alt text.", ItemCount: 2},
		},
	}
	view := BuildReportView(PhasePre, lh, nil, nil, "")
	content := generate(t, view)

	assert.Contains(t, content, "Lighthouse Failing Audits")
	assert.Contains(t, content, `<div class="value bad">64/100</div>`)
	assert.Contains(t, content, "Image elements have [alt] attributes")
}

func TestGenerateHTMLReportScreenReaderTree(t *testing.T) {
	view := BuildReportView(PhasePre, nil, nil, nil, "document\n  heading \"Welcome\" level=1\n  button \"<submit>\"")
	content := generate(t, view)

	assert.Contains(t, content, "Screen Reader Tree")
	assert.Contains(t, content, "&lt;submit&gt;")
}

func TestGenerateHTMLReportCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "report.html")
	view := BuildReportView(PhasePre, nil, nil, nil, "")
	require.NoError(t, GenerateHTMLReport(view, path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestGenerateHTMLReportStableExceptTimestamp(t *testing.T) {
	strip := func(s string) string {
		var kept []string
		for _, line := range strings.Split(s, "\n") {
			if strings.Contains(line, "Generated at") {
				continue
			}
			kept = append(kept, line)
		}
		return strings.Join(kept, "\n")
	}

	lh := &lighthouse.Result{Score: intPtr(81)}
	first := generate(t, BuildReportView(PhasePre, lh, sampleViolations(), nil, ""))
	second := generate(t, BuildReportView(PhasePre, lh, sampleViolations(), nil, ""))

	assert.Equal(t, strip(first), strip(second))
}
