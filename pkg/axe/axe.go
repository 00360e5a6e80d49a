// Package axe extracts violation records from raw axe-core CLI output.
package axe

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// ViolationList is a list of violations parsed from one axe-core log.
type ViolationList []Violation

// Violation is a single rule violation block from the axe-core CLI log.
type Violation struct {
	// Rule is the axe-core rule identifier, e.g. "image-alt".
	Rule string
	// Count is the number of occurrences reported for the rule, always >= 1.
	Count int
	// Description is the first non-blank line of the block.
	Description string
	// Elements are the affected element descriptors, in source order.
	Elements []string
	// HelpURL is the first documentation link found in the block, if any.
	HelpURL string
}

var (
	ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)
	// A block starts at a header like: Violation of "image-alt" with 3 occurrences!
	headerPattern = regexp.MustCompile(`Violation of "([^"]+)" with (\d+) occurrences?`)
	// The CLI closes its output with a line like: 4 violations found!
	summaryPattern = regexp.MustCompile(`(?i)^\s*\d+\s+violations?\s+found`)
	bulletPattern  = regexp.MustCompile(`^\s+-\s+(.*\S)`)
	helpURLPattern = regexp.MustCompile(`https?://[^\s"']+`)
)

// LoadLog reads an axe-core log from disk and parses it. An empty path yields
// an empty list with no error; a missing or unreadable file is reported to the
// caller, which is expected to degrade rather than abort.
func LoadLog(path string) (ViolationList, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read axe log: %w", err)
	}
	return ParseLog(string(b)), nil
}

// ParseLog extracts violation blocks from raw axe-core CLI output. Terminal
// escape sequences are stripped first. A block runs from its header line to
// the next header, the trailing summary line, or the end of the text.
func ParseLog(text string) ViolationList {
	text = ansiPattern.ReplaceAllString(text, "")

	var list ViolationList
	var cur *Violation
	for _, line := range strings.Split(text, "\n") {
		if m := headerPattern.FindStringSubmatch(line); m != nil {
			if cur != nil {
				list = append(list, *cur)
			}
			count, _ := strconv.Atoi(m[2])
			if count < 1 {
				count = 1
			}
			cur = &Violation{Rule: m[1], Count: count}
			continue
		}
		if cur == nil {
			continue
		}
		if summaryPattern.MatchString(line) {
			list = append(list, *cur)
			cur = nil
			continue
		}
		if cur.HelpURL == "" {
			cur.HelpURL = helpURLPattern.FindString(line)
		}
		if m := bulletPattern.FindStringSubmatch(line); m != nil {
			cur.Elements = append(cur.Elements, m[1])
			continue
		}
		if cur.Description == "" {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				cur.Description = trimmed
			}
		}
	}
	if cur != nil {
		list = append(list, *cur)
	}
	return list
}

// TotalCount sums the per-rule occurrence counts. This sum, not the number of
// distinct rules, is the headline violations figure.
func (l ViolationList) TotalCount() int {
	total := 0
	for _, v := range l {
		total += v.Count
	}
	return total
}
