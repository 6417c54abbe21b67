package routers

import (
	"github.com/go-chi/chi/v5"

	"mna-assessment-service/internal/app/delivery/http/controllers"
)

func attachQuestionnaireRoutes(router chi.Router, questionnaireController *controllers.QuestionnaireController) {
	router.Get("/", questionnaireController.FindAll)
	router.Get("/{questionnaireID}", questionnaireController.FindQuestionnaireByID)
	router.Post("/{questionnaireID}/score", questionnaireController.ScoreAnswers)
}
