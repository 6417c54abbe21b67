package utils

import (
	"strings"

	"mna-assessment-service/internal/pkg/dto/requests"
)

func cleanWhiteSpaceFromEachValueOfAMap(input map[string]string) map[string]string {
	sanitized := make(map[string]string, len(input))
	for key, value := range input {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		sanitized[key] = strings.TrimSpace(value)
	}
	return sanitized
}

func SanitizeSubmitAssessmentRequest(input *requests.SubmitAssessment) {
	input.Questionnaire = strings.ToLower(strings.TrimSpace(input.Questionnaire))
	input.Name = strings.TrimSpace(input.Name)
	input.Gender = strings.ToLower(strings.TrimSpace(input.Gender))
	input.DOB = strings.TrimSpace(input.DOB)
	input.IdempotencyKey = strings.TrimSpace(input.IdempotencyKey)
	input.Answers = cleanWhiteSpaceFromEachValueOfAMap(input.Answers)
}

func SanitizeScoreAnswersRequest(input *requests.ScoreAnswers) {
	input.Questionnaire = strings.ToLower(strings.TrimSpace(input.Questionnaire))
	input.Answers = cleanWhiteSpaceFromEachValueOfAMap(input.Answers)
}
