package questionnaires

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mna-assessment-service/internal/pkg/constvars"
	"mna-assessment-service/internal/pkg/dto/requests"
	"mna-assessment-service/internal/pkg/exceptions"
	"mna-assessment-service/internal/pkg/scoring"
)

func TestQuestionnaireUsecase_FindAll(t *testing.T) {
	uc := &questionnaireUsecase{Log: zap.NewNop()}

	summaries, err := uc.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, scoring.QuestionnaireFull, summaries[0].ID)
	assert.Equal(t, 18, summaries[0].ItemCount)
	assert.Equal(t, 30.0, summaries[0].MaxScore)
	assert.Equal(t, scoring.QuestionnaireShort, summaries[1].ID)
	assert.Equal(t, 6, summaries[1].ItemCount)
	assert.Equal(t, 13.0, summaries[1].MaxScore)
}

func TestQuestionnaireUsecase_FindQuestionnaireByID(t *testing.T) {
	uc := &questionnaireUsecase{Log: zap.NewNop()}

	t.Run("Short form inputs", func(t *testing.T) {
		questionnaire, err := uc.FindQuestionnaireByID(context.Background(), scoring.QuestionnaireShort)

		require.NoError(t, err)
		require.Len(t, questionnaire.Items, 6)

		appetite := questionnaire.Items[0]
		assert.Equal(t, "lookup", appetite.Kind)
		require.Len(t, appetite.Inputs, 1)
		assert.Len(t, appetite.Inputs[0].Options, 3)

		anthropometry := questionnaire.Items[5]
		assert.Equal(t, "sum", anthropometry.Kind)
		require.Len(t, anthropometry.Inputs, 2)
		assert.Equal(t, "ac", anthropometry.Inputs[0].Key)
		assert.Equal(t, "上臂圍", anthropometry.Inputs[0].Label)
		assert.Equal(t, "cm", anthropometry.Inputs[0].Unit)
		assert.Equal(t, "cc", anthropometry.Inputs[1].Key)
	})

	t.Run("Counted inputs list their codes", func(t *testing.T) {
		questionnaire, err := uc.FindQuestionnaireByID(context.Background(), scoring.QuestionnaireFull)

		require.NoError(t, err)
		var found bool
		for _, item := range questionnaire.Items {
			if item.Key != "protein" {
				continue
			}
			found = true
			assert.Equal(t, "count", item.Kind)
			require.Len(t, item.Inputs, 3)
			assert.Equal(t, "dairy", item.Inputs[0].Key)
			assert.Equal(t, "乳製品", item.Inputs[0].Label)
			assert.Equal(t, []string{"yes", "no"}, item.Inputs[0].Codes)
		}
		assert.True(t, found)
	})

	t.Run("Unknown questionnaire", func(t *testing.T) {
		_, err := uc.FindQuestionnaireByID(context.Background(), "mna-xl")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestQuestionnaireUsecase_ScoreAnswers(t *testing.T) {
	uc := &questionnaireUsecase{Log: zap.NewNop()}

	t.Run("Preview lists invalid answers", func(t *testing.T) {
		result, err := uc.ScoreAnswers(context.Background(), &requests.ScoreAnswers{
			Questionnaire: scoring.QuestionnaireShort,
			Answers: map[string]string{
				"appetite": "none",
				"mobility": "flying",
				"ac":       "21.5",
				"cc":       "32",
			},
		})

		require.NoError(t, err)
		assert.Equal(t, 3.5, result.TotalScore)
		assert.Equal(t, scoring.StatusMalnourished, result.Status.Code)
		require.Len(t, result.Invalid, 1)
		assert.Equal(t, "mobility", result.Invalid[0].Key)
	})

	t.Run("Default questionnaire", func(t *testing.T) {
		result, err := uc.ScoreAnswers(context.Background(), &requests.ScoreAnswers{})

		require.NoError(t, err)
		assert.Equal(t, scoring.QuestionnaireFull, result.Questionnaire)
		assert.Len(t, result.Items, 18)
	})

	t.Run("Unknown questionnaire", func(t *testing.T) {
		_, err := uc.ScoreAnswers(context.Background(), &requests.ScoreAnswers{Questionnaire: "mna-xl"})

		assert.Error(t, err)
	})
}
