// Package observability provides HTTP access logging for the web service.
package observability

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestLogger logs one structured line per request with method, path,
// status, bytes written, latency and request id. Server errors log at error
// level, client errors at warn, everything else at info.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			metrics := httpsnoop.CaptureMetrics(next, w, r)
			level := zapcore.InfoLevel
			switch {
			case metrics.Code >= http.StatusInternalServerError:
				level = zapcore.ErrorLevel
			case metrics.Code >= http.StatusBadRequest:
				level = zapcore.WarnLevel
			}
			if ce := logger.Check(level, "http request"); ce != nil {
				ce.Write(
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", metrics.Code),
					zap.Int64("bytes", metrics.Written),
					zap.Duration("latency", metrics.Duration),
					zap.String("request_id", r.Header.Get("X-Request-ID")),
				)
			}
		})
	}
}
