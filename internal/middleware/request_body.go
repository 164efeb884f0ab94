package middleware

import (
	"io"
	"net/http"
)

// DefaultMaxRequestBodyBytes covers a login form or a set update with room to spare.
const DefaultMaxRequestBodyBytes = 64 << 10

// LimitRequestBody caps how much of the request body a handler can read, then
// drains and closes whatever the handler left behind so the connection can be reused.
func LimitRequestBody(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			body := r.Body
			r.Body = http.MaxBytesReader(w, body, maxBytes)
			next.ServeHTTP(w, r)

			_, _ = io.Copy(io.Discard, io.LimitReader(body, maxBytes))
			_ = body.Close()
		})
	}
}
