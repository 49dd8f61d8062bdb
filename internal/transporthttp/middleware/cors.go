package middleware

import "net/http"

// CORSMiddleware allows any origin to call the API: every Doka service is
// meant to be consumed by a thin client that holds no browser-trusted
// session cookie (auth travels as an explicit sid/token header), so there is
// no CSRF surface a strict origin policy would protect.
func (mid *middleware) CORSMiddleware(fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, sid, token, X-Request-ID")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		fn(w, r)
	}
}
