package middleware

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/vfg2006/finance-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/finance-dashboard-api/pkg/log"
)

// Relatórios que passam disso provavelmente não acertaram o cache.
const slowRequestThreshold = 3 * time.Second

// LoggingMiddleware registra cada requisição com ID de correlação, status e duração.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			fields := log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": lrw.statusCode,
				"duration":    formatDuration(elapsed),
			}
			if !log.IsDevelopment() {
				fields["correlation_id"] = correlationID
				fields["query"] = r.URL.RawQuery
				fields["remote_addr"] = r.RemoteAddr
			}
			logger := log.L.WithFields(fields)

			switch {
			case lrw.statusCode >= http.StatusInternalServerError:
				logger.Error("api: request failed")
			case lrw.statusCode >= http.StatusBadRequest:
				logger.Warn("api: request rejected")
			default:
				logger.Info("api: request completed")
			}

			if elapsed > slowRequestThreshold {
				logger.Warn("api: slow request")
			}
		})
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware converte panics em SRV_001 e registra a pilha.
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stack = stack[:runtime.Stack(stack, false)]

					log.ForContext(r.Context()).WithFields(log.Fields{
						"panic":       err,
						"method":      r.Method,
						"path":        r.URL.Path,
						"stack_trace": string(stack),
					}).Error("api: recovered from panic")

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
