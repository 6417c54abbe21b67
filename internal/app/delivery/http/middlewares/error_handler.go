package middlewares

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"mna-assessment-service/internal/pkg/constvars"
	"mna-assessment-service/internal/pkg/exceptions"
	"mna-assessment-service/internal/pkg/utils"
)

// ErrorHandler turns a panic in a handler into a JSON 500 response.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				m.Log.Error("panic recovered",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
					zap.Any("panic", rec),
					zap.Stack("stacktrace"),
				)
				err := fmt.Errorf(constvars.ErrDevPanicRecovered, rec)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
