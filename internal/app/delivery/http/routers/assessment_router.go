package routers

import (
	"github.com/go-chi/chi/v5"

	"mna-assessment-service/internal/app/delivery/http/controllers"
)

func attachAssessmentRoutes(router chi.Router, assessmentController *controllers.AssessmentController) {
	router.Post("/", assessmentController.SubmitAssessment)
	router.Get("/", assessmentController.FindAll)
	router.Get("/report", assessmentController.GetReport)
	router.Get("/export", assessmentController.ExportCSV)
	router.Post("/exports", assessmentController.ArchiveExport)
}
