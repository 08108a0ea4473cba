package middlewares

import "net/http"

// CORS header values sent by the wish API.
const (
	AllowOrigin  = "*"
	AllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	AllowHeaders = "Content-Type, X-Admin-Password"
	MaxAge       = "86400"
)

// CORSMiddleware adds Access-Control-Allow-Origin to every response and answers
// preflight requests itself with 200 and an empty body. Preflight never reaches
// authentication or storage.
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", AllowOrigin)

		if r.Method == http.MethodOptions {
			h.Set("Access-Control-Allow-Methods", AllowMethods)
			h.Set("Access-Control-Allow-Headers", AllowHeaders)
			h.Set("Access-Control-Max-Age", MaxAge)
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
