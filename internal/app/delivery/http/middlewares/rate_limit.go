package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"mna-assessment-service/internal/pkg/exceptions"
	"mna-assessment-service/internal/pkg/utils"
)

// RateLimit limits each client IP to App.MaxRequests per second. A limit of
// zero or less disables it.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	if m.InternalConfig.App.MaxRequests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}
