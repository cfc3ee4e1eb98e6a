// internal/workers/analysis/analyze-business-fit/models.go
package analyzebusinessfit

import "bizfit-workers/internal/models"

type Input struct {
	SessionID   string              `json:"sessionId"`
	QuizAnswers *models.QuizAnswers `json:"quizAnswers"`
}

type Output struct {
	FitAnalysis *models.ComprehensiveFitAnalysis `json:"fitAnalysis"`
	FromCache   bool                             `json:"fromCache"`
}
