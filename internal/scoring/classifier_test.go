// internal/scoring/classifier_test.go
package scoring

import (
	"testing"

	"bizfit-workers/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		maxScore int
		expected string
	}{
		{name: "top of a strong batch", score: 95, maxScore: 95, expected: models.CategoryBestFit},
		{name: "within five of the batch max", score: 91, maxScore: 95, expected: models.CategoryBestFit},
		{name: "six below a high max is only strong", score: 89, maxScore: 95, expected: models.CategoryStrongFit},
		{name: "absolute floor holds in weak batches", score: 84, maxScore: 84, expected: models.CategoryStrongFit},
		{name: "85 is best fit even as batch max", score: 85, maxScore: 85, expected: models.CategoryBestFit},
		{name: "strong fit lower bound", score: 70, maxScore: 95, expected: models.CategoryStrongFit},
		{name: "possible fit upper bound", score: 69, maxScore: 95, expected: models.CategoryPossibleFit},
		{name: "possible fit lower bound", score: 55, maxScore: 95, expected: models.CategoryPossibleFit},
		{name: "poor fit", score: 54, maxScore: 95, expected: models.CategoryPoorFit},
		{name: "presentation floor", score: 40, maxScore: 95, expected: models.CategoryPoorFit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.score, tt.maxScore))
		})
	}
}

func TestClassifyAll(t *testing.T) {
	matches := []models.MatchResult{
		{ModelID: "a", FitScore: 93},
		{ModelID: "b", FitScore: 90},
		{ModelID: "c", FitScore: 72},
		{ModelID: "d", FitScore: 60},
		{ModelID: "e", FitScore: 41},
	}

	ClassifyAll(matches)

	// Best-fit cutoff floats to max(85, 93-5) = 88.
	assert.Equal(t, models.CategoryBestFit, matches[0].FitCategory)
	assert.Equal(t, models.CategoryBestFit, matches[1].FitCategory)
	assert.Equal(t, models.CategoryStrongFit, matches[2].FitCategory)
	assert.Equal(t, models.CategoryPossibleFit, matches[3].FitCategory)
	assert.Equal(t, models.CategoryPoorFit, matches[4].FitCategory)
}

func TestClassifyAll_EmptyBatch(t *testing.T) {
	assert.NotPanics(t, func() {
		ClassifyAll(nil)
		ClassifyAll([]models.MatchResult{})
	})
}
