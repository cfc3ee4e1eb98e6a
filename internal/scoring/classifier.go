// internal/scoring/classifier.go
package scoring

import "bizfit-workers/internal/models"

// Category thresholds. BestFit floats with the batch maximum so the top
// match lands in BestFit for almost every user; the remaining cutoffs are
// absolute.
const (
	bestFitAbsolute  = 85
	bestFitMaxDelta  = 5
	strongFitCutoff  = 70
	possibleFitCutoff = 55
)

// Classify maps a fit score to its category given the maximum score in the
// same ranked batch. Checks run top-down, first match wins, and every result
// is classified independently against the shared maximum.
func Classify(score, maxScore int) string {
	bestCutoff := bestFitAbsolute
	if relative := maxScore - bestFitMaxDelta; relative > bestCutoff {
		bestCutoff = relative
	}
	switch {
	case score >= bestCutoff:
		return models.CategoryBestFit
	case score >= strongFitCutoff:
		return models.CategoryStrongFit
	case score >= possibleFitCutoff:
		return models.CategoryPossibleFit
	default:
		return models.CategoryPoorFit
	}
}

// ClassifyAll assigns a category to every match in a ranked list, using the
// list's maximum score as the shared reference. The slice is modified in
// place.
func ClassifyAll(matches []models.MatchResult) {
	maxScore := 0
	for _, m := range matches {
		if m.FitScore > maxScore {
			maxScore = m.FitScore
		}
	}
	for i := range matches {
		matches[i].FitCategory = Classify(matches[i].FitScore, maxScore)
	}
}
