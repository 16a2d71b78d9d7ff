package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type recoveryError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Recovery turns a panic in a handler into a 500 JSON error and logs it with
// the request and session ids.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Str("request_id", chimiddleware.GetReqID(r.Context())).
					Str("session_id", GetSessionID(r.Context())).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("Panic recovered")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)

				body := map[string]recoveryError{
					"error": {Code: "INTERNAL_ERROR", Message: "Internal server error"},
				}
				if err := json.NewEncoder(w).Encode(body); err != nil {
					log.Warn().Err(err).Msg("Failed to write panic response")
				}
			}
		}()

		next.ServeHTTP(w, r)
	})
}
