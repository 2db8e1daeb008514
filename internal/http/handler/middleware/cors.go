package middleware

import "net/http"

type CORSMiddleware struct {
	origin string
}

func NewCORSMiddleware(origin string) *CORSMiddleware {
	return &CORSMiddleware{
		origin: origin,
	}
}

// CORS allows the configured origin and answers preflight requests itself.
func (m *CORSMiddleware) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", m.origin)
		h.Set("Access-Control-Expose-Headers", RequestIDHeader)
		if m.origin != "*" {
			h.Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)
			h.Set("Access-Control-Max-Age", "600")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
