package contracts

import (
	"context"

	"mna-assessment-service/internal/pkg/dto/requests"
	"mna-assessment-service/internal/pkg/dto/responses"
	"mna-assessment-service/internal/pkg/scoring"
)

type QuestionnaireUsecase interface {
	FindAll(ctx context.Context) ([]responses.QuestionnaireSummary, error)
	FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*responses.Questionnaire, error)
	ScoreAnswers(ctx context.Context, request *requests.ScoreAnswers) (*scoring.Result, error)
}
