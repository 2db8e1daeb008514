package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type RecoveryMiddleware struct {
	logs *zap.SugaredLogger
}

func NewRecoveryMiddleware(logger *zap.SugaredLogger) *RecoveryMiddleware {
	return &RecoveryMiddleware{
		logs: logger,
	}
}

// Recover turns a panicking handler into a 500 response.
func (m *RecoveryMiddleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			m.logs.Errorw("handler panicked",
				"panic", rec,
				"path", r.URL.Path,
				"request_id", RequestIDFrom(r.Context()),
				zap.StackSkip("stack", 2))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"message": "Internal server error",
			})
		}()

		next.ServeHTTP(w, r)
	})
}
