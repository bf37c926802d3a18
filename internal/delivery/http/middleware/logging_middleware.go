package middleware

import (
	"net/http"
	"time"

	"mediconnect/pkg/metrics"

	"github.com/sirupsen/logrus"
)

type LoggingMiddleware struct {
	log *logrus.Logger
}

func NewLoggingMiddleware(log *logrus.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{log: log}
}

func (m *LoggingMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		recorder := &metrics.StatusRecorder{ResponseWriter: w, StatusCode: http.StatusOK}
		next.ServeHTTP(recorder, r)

		entry := m.log.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     recorder.StatusCode,
			"latency_ms": time.Since(start).Milliseconds(),
			"remote":     r.RemoteAddr,
		})

		switch {
		case recorder.StatusCode >= http.StatusInternalServerError:
			entry.Error("HTTP request failed")
		case recorder.StatusCode >= http.StatusBadRequest:
			entry.Warn("HTTP request rejected")
		default:
			entry.Info("HTTP request")
		}
	})
}
