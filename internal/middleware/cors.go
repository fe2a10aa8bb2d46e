package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors lets browsers on any origin reach the game in development. Otherwise
// only the listed origins are allowed, or every origin if none are listed.
func Cors(development bool, origins ...string) Middleware {
	options := cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
		},
		AllowedHeaders: []string{"*"},
	}
	if development {
		options.AllowOriginFunc = func(origin string) bool {
			return true
		}
	}
	return cors.New(options).Handler
}
