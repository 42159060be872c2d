package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/barbelltracker/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery answers 500 for a panicking handler and counts the panic.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				log.WithFields(log.Fields{
					"route":  routeName(req),
					"method": req.Method,
					"path":   req.URL.Path,
				}).Errorf("panic serving request: %v\n%s", r, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				http.Error(w, "internal error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, req)
		})
	}
}
