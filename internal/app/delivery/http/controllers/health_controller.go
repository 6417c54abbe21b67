package controllers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"mna-assessment-service/internal/app/config"
	"mna-assessment-service/internal/app/contracts"
	"mna-assessment-service/internal/pkg/constvars"
	"mna-assessment-service/internal/pkg/utils"
)

type HealthController struct {
	Log               *zap.Logger
	AssessmentUsecase contracts.AssessmentUsecase
	Version           string
}

type healthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Store   string `json:"store"`
}

func NewHealthController(logger *zap.Logger, assessmentUsecase contracts.AssessmentUsecase, internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{
		Log:               logger,
		AssessmentUsecase: assessmentUsecase,
		Version:           internalConfig.App.Version,
	}
}

// Check reports 200 when the assessment store answers a ping and 503
// otherwise.
func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	err := ctrl.AssessmentUsecase.CheckStore(ctx)
	if err != nil {
		ctrl.Log.Warn("HealthController.Check store is unavailable",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, healthStatus{
		Status:  constvars.ResponseSuccess,
		Version: ctrl.Version,
		Store:   "up",
	})
}
