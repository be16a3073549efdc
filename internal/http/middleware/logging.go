package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sendsafe/sendsafe-api/internal/auth"
	"go.uber.org/zap"
)

// responseWriter remembers the status and body size for logging and metrics
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// requestUser is filled in by the authentication layer further down the chain,
// so the access log line can name the caller
type requestUser struct {
	user *auth.UserContext
}

// Logging writes one access log line per request. It expects chi's RequestID
// middleware to run first and echoes the id back in X-Request-ID.
func Logging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := chimiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			holder := &requestUser{}
			r = r.WithContext(auth.WithObserver(r.Context(), func(u *auth.UserContext) { holder.user = u }))
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			fields := []zap.Field{
				zap.String("request_id", requestID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr),
				zap.Int("status_code", rw.statusCode),
				zap.Int64("response_size", rw.written),
				zap.Duration("duration", time.Since(start)),
			}
			if holder.user != nil {
				fields = append(fields,
					zap.String("user_id", holder.user.UserID.String()),
					zap.String("user_email", holder.user.Email),
				)
			}

			switch {
			case rw.statusCode >= http.StatusInternalServerError:
				logger.Error("request failed", fields...)
			case rw.statusCode >= http.StatusBadRequest:
				logger.Warn("request rejected", fields...)
			default:
				logger.Info("request completed", fields...)
			}
		})
	}
}
