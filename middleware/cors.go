// Package middleware contains the HTTP middleware wrapped around every route.
package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

var corsMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// CORS negotiates browser preflights with go-chi/cors. Every response also
// carries the permissive CORS headers, with or without an Origin header, and
// every OPTIONS request is answered with 200 before routing.
func CORS(next http.Handler) http.Handler {
	negotiate := cors.New(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     corsMethods,
		AllowedHeaders:     []string{"Content-Type"},
		MaxAge:             300,
		OptionsPassthrough: true,
	}).Handler

	chain := negotiate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	}))

	allowMethods := strings.Join(corsMethods, ", ")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", allowMethods)
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		chain.ServeHTTP(w, r)
	})
}
