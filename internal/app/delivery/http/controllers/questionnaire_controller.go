package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"mna-assessment-service/internal/app/config"
	"mna-assessment-service/internal/app/contracts"
	"mna-assessment-service/internal/pkg/constvars"
	"mna-assessment-service/internal/pkg/dto/requests"
	"mna-assessment-service/internal/pkg/utils"
)

type QuestionnaireController struct {
	Log                  *zap.Logger
	QuestionnaireUsecase contracts.QuestionnaireUsecase
	Timeout              time.Duration
}

func NewQuestionnaireController(logger *zap.Logger, questionnaireUsecase contracts.QuestionnaireUsecase, internalConfig *config.InternalConfig) *QuestionnaireController {
	return &QuestionnaireController{
		Log:                  logger,
		QuestionnaireUsecase: questionnaireUsecase,
		Timeout:              requestTimeout(internalConfig),
	}
}

func (ctrl *QuestionnaireController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.QuestionnaireUsecase.FindAll(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.QuestionnaireListSuccessMessage, response)
}

func (ctrl *QuestionnaireController) FindQuestionnaireByID(w http.ResponseWriter, r *http.Request) {
	questionnaireID := chi.URLParam(r, constvars.URLParamQuestionnaireID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.QuestionnaireUsecase.FindQuestionnaireByID(ctx, questionnaireID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.QuestionnaireGetSuccessMessage, response)
}

func (ctrl *QuestionnaireController) ScoreAnswers(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	request := new(requests.ScoreAnswers)
	err := decodeJSONBody(r, request)
	if err != nil {
		ctrl.Log.Error("QuestionnaireController.ScoreAnswers error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.Questionnaire = chi.URLParam(r, constvars.URLParamQuestionnaireID)
	utils.SanitizeScoreAnswersRequest(request)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.QuestionnaireUsecase.ScoreAnswers(ctx, request)
	if err != nil {
		ctrl.Log.Error("QuestionnaireController.ScoreAnswers error in QuestionnaireUsecase.ScoreAnswers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.QuestionnaireScoreSuccessMessage, response)
}
