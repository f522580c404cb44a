package middleware

import (
	"net/http"
	"time"

	"niko-backend/internal/logging"
)

// statusRecorder captures the status code written by the handler chain.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger logs one line per request with method, path, status, and
// duration.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		logging.GetLogger().WithField("request_id", r.Header.Get("X-Request-ID")).
			Infof("%s -- %s %s -- %d (%s)", r.RemoteAddr, r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
