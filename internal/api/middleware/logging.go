package middleware

import (
	"net/http"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dom/football-dashboard/internal/logger"
)

// RequestLogger logs one structured line per request with a generated
// request id, so slow or failing queries can be traced in aggregated logs.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		start := time.Now()

		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(ww, r)

		logger.Get().WithFields(logrus.Fields{
			"request_id":  requestID,
			"http_method": r.Method,
			"http_path":   r.URL.Path,
			"status":      ww.Status(),
			"bytes":       ww.BytesWritten(),
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("request completed")
	})
}
