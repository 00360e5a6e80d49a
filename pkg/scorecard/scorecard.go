// Package scorecard computes the headline figures shown at the top of a report.
package scorecard

import (
	"fmt"

	"github.com/fatih/color"
)

// Band is the display classification of a score card.
type Band string

const (
	BandGood Band = "good"
	BandOK   Band = "ok"
	BandBad  Band = "bad"
	BandNA   Band = "na"
)

// Banding thresholds for the Lighthouse accessibility score
const goodThreshold = 90
const okThreshold = 70

// Card is one headline figure.
type Card struct {
	Label string
	Value string
	Band  Band
}

// ScoreBand classifies a 0-100 Lighthouse score. A nil score has no band.
func ScoreBand(score *int) Band {
	switch {
	case score == nil:
		return BandNA
	case *score >= goodThreshold:
		return BandGood
	case *score >= okThreshold:
		return BandOK
	default:
		return BandBad
	}
}

// CountBand is good only when the count is exactly zero.
func CountBand(n int) Band {
	if n == 0 {
		return BandGood
	}
	return BandBad
}

// NewCards builds the three headline cards: Lighthouse score, total axe
// violation occurrences, and manual finding count.
func NewCards(score *int, violationTotal, manualCount int) []Card {
	scoreValue := "N/A"
	if score != nil {
		scoreValue = fmt.Sprintf("%d/100", *score)
	}
	return []Card{
		{Label: "Lighthouse Accessibility", Value: scoreValue, Band: ScoreBand(score)},
		{Label: "Axe Violations", Value: fmt.Sprintf("%d", violationTotal), Band: CountBand(violationTotal)},
		{Label: "Manual Findings", Value: fmt.Sprintf("%d", manualCount), Band: CountBand(manualCount)},
	}
}

// DisplayCards prints the cards to the terminal with a color per band.
func DisplayCards(cards []Card) {
	for _, c := range cards {
		labelColor := color.New(color.FgHiBlue).SprintFunc()
		valueColor := color.New(color.FgWhite)
		switch c.Band {
		case BandGood:
			valueColor = color.New(color.FgGreen, color.Bold)
		case BandOK:
			valueColor = color.New(color.FgYellow, color.Bold)
		case BandBad:
			valueColor = color.New(color.FgRed, color.Bold)
		}
		fmt.Printf("%-26s %s\n", labelColor(c.Label), valueColor.Sprint(c.Value))
	}
}
