package analyze

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers analyze routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/analyze", h.Analyze)
}
