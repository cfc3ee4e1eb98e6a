// internal/workers/analysis/personality-profile/models.go
package personalityprofile

import "bizfit-workers/internal/models"

type Input struct {
	QuizAnswers *models.QuizAnswers `json:"quizAnswers"`
}

type Output struct {
	PersonalityProfile models.PersonalityProfile `json:"personalityProfile"`
	Recommendations    []string                  `json:"recommendations"`
}
