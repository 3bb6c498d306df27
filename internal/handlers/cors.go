package handlers

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS applies the configured cross-origin policy in front of next.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   h.cors.AllowedOrigins,
		AllowedMethods:   h.cors.AllowedMethods,
		AllowedHeaders:   h.cors.AllowedHeaders,
		MaxAge:           h.cors.MaxAge,
		AllowCredentials: h.cors.AllowCredentials,
	})
	return c.Handler(next)
}
