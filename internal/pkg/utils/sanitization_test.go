package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mna-assessment-service/internal/pkg/dto/requests"
)

func TestSanitizeSubmitAssessmentRequest(t *testing.T) {
	t.Run("Subject Sanitization", func(t *testing.T) {
		request := &requests.SubmitAssessment{
			Questionnaire: "  MNA-SF ",
			Name:          "  王小明  ",
			Gender:        " Male ",
			DOB:           " 1950-03-03 ",
		}

		SanitizeSubmitAssessmentRequest(request)

		assert.Equal(t, "mna-sf", request.Questionnaire, "questionnaire should be lowercase and trimmed")
		assert.Equal(t, "王小明", request.Name, "name should be trimmed")
		assert.Equal(t, "male", request.Gender, "gender should be lowercase and trimmed")
		assert.Equal(t, "1950-03-03", request.DOB, "dob should be trimmed")
	})

	t.Run("Answers Sanitization", func(t *testing.T) {
		request := &requests.SubmitAssessment{
			Answers: map[string]string{
				" appetite ": " none ",
				"ac":         "22.5 ",
				"  ":         "dropped",
			},
		}

		SanitizeSubmitAssessmentRequest(request)

		assert.Equal(t, map[string]string{"appetite": "none", "ac": "22.5"}, request.Answers, "answers should be trimmed and blank keys dropped")
	})

	t.Run("Nil Answers", func(t *testing.T) {
		request := &requests.SubmitAssessment{}

		SanitizeSubmitAssessmentRequest(request)

		assert.NotNil(t, request.Answers, "answers should never be nil after sanitization")
		assert.Empty(t, request.Answers)
	})
}

func TestSanitizeScoreAnswersRequest(t *testing.T) {
	request := &requests.ScoreAnswers{
		Questionnaire: " MNA-FULL",
		Answers:       map[string]string{"meals": " three"},
	}

	SanitizeScoreAnswersRequest(request)

	assert.Equal(t, "mna-full", request.Questionnaire)
	assert.Equal(t, "three", request.Answers["meals"])
}
