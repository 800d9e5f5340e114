package api

import (
	"net/http"

	"github.com/rs/cors"
)

// WithCORS wraps handler with a permissive CORS policy suitable for a
// local status dashboard polling the API from a different origin.
func WithCORS(handler http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	})
	return c.Handler(handler)
}
