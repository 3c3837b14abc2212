// Package middleware provides HTTP middleware components.
package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/plateahq/Platea_Backend/internal/auth"
	"github.com/plateahq/Platea_Backend/internal/utils"
)

// Recovery recovers from panics in downstream handlers and returns a 500
// Internal Server Error instead of tearing down the connection.
func Recovery() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					requestID, _ := auth.GetRequestID(r)

					log.Error().
						Str("request_id", requestID).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("Panic recovered in request handler")
					utils.LogPanic(rec, debug.Stack())

					utils.InternalServerError(w, nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
