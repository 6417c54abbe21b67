package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"mna-assessment-service/internal/app/config"
	"mna-assessment-service/internal/app/contracts"
	"mna-assessment-service/internal/pkg/constvars"
	"mna-assessment-service/internal/pkg/dto/requests"
	"mna-assessment-service/internal/pkg/exceptions"
	"mna-assessment-service/internal/pkg/utils"
)

type AssessmentController struct {
	Log               *zap.Logger
	AssessmentUsecase contracts.AssessmentUsecase
	Timeout           time.Duration
}

func NewAssessmentController(logger *zap.Logger, assessmentUsecase contracts.AssessmentUsecase, internalConfig *config.InternalConfig) *AssessmentController {
	return &AssessmentController{
		Log:               logger,
		AssessmentUsecase: assessmentUsecase,
		Timeout:           requestTimeout(internalConfig),
	}
}

func (ctrl *AssessmentController) SubmitAssessment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AssessmentController.SubmitAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.SubmitAssessment)
	err := decodeJSONBody(r, request)
	if err != nil {
		ctrl.Log.Error("AssessmentController.SubmitAssessment error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeSubmitAssessmentRequest(request)
	request.IdempotencyKey = strings.TrimSpace(r.Header.Get(constvars.HeaderIdempotencyKey))

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.SubmitAssessment(ctx, request)
	if err != nil {
		ctrl.Log.Error("AssessmentController.SubmitAssessment error in AssessmentUsecase.SubmitAssessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AssessmentSubmittedSuccessMessage, response)
}

func (ctrl *AssessmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	request, ok := ctrl.parseFindAllRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.FindAll(ctx, request)
	if err != nil {
		ctrl.Log.Error("AssessmentController.FindAll error in AssessmentUsecase.FindAll",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssessmentListSuccessMessage, response)
}

func (ctrl *AssessmentController) GetReport(w http.ResponseWriter, r *http.Request) {
	request, ok := ctrl.parseFindAllRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.GetReport(ctx, request)
	if err != nil {
		ctrl.Log.Error("AssessmentController.GetReport error in AssessmentUsecase.GetReport",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssessmentReportSuccessMessage, response)
}

// ExportCSV streams the export as an attachment. Failures are JSON errors,
// never an empty file.
func (ctrl *AssessmentController) ExportCSV(w http.ResponseWriter, r *http.Request) {
	request, ok := ctrl.parseFindAllRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.ExportCSV(ctx, request)
	if err != nil {
		ctrl.Log.Error("AssessmentController.ExportCSV error in AssessmentUsecase.ExportCSV",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildAttachmentResponse(w, constvars.MIMETextCSVCharsetUTF8, response.FileName, response.Content)
}

func (ctrl *AssessmentController) ArchiveExport(w http.ResponseWriter, r *http.Request) {
	request, ok := ctrl.parseFindAllRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.ArchiveExport(ctx, request)
	if err != nil {
		ctrl.Log.Error("AssessmentController.ArchiveExport error in AssessmentUsecase.ArchiveExport",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AssessmentExportArchivedSuccessMessage, response)
}

func (ctrl *AssessmentController) parseFindAllRequest(w http.ResponseWriter, r *http.Request) (*requests.FindAllAssessment, bool) {
	request := &requests.FindAllAssessment{
		Questionnaire: strings.TrimSpace(r.URL.Query().Get(constvars.QueryParamQuestionnaire)),
	}

	err := utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("AssessmentController validation error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return nil, false
	}
	return request, true
}
