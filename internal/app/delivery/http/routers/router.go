package routers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"mna-assessment-service/internal/app/config"
	"mna-assessment-service/internal/app/delivery/http/controllers"
	"mna-assessment-service/internal/app/delivery/http/middlewares"
	"mna-assessment-service/internal/pkg/constvars"
	"mna-assessment-service/internal/pkg/exceptions"
	"mna-assessment-service/internal/pkg/utils"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	assessmentController *controllers.AssessmentController,
	questionnaireController *controllers.QuestionnaireController,
	healthController *controllers.HealthController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: internalConfig.App.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderIdempotencyKey,
			constvars.HeaderXRequestID,
		},
		ExposedHeaders: []string{constvars.HeaderContentDisposition, constvars.HeaderXRequestID},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.BodyLimit)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.BuildErrorResponse(middlewares.Log, w, exceptions.ErrRouteNotFound(nil))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.BuildErrorResponse(middlewares.Log, w, exceptions.ErrMethodNotAllowed(nil))
	})

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Get("/health", healthController.Check)

			r.Route("/assessments", func(r chi.Router) {
				attachAssessmentRoutes(r, assessmentController)
			})

			r.Route("/questionnaires", func(r chi.Router) {
				attachQuestionnaireRoutes(r, questionnaireController)
			})
		})
	})
}
