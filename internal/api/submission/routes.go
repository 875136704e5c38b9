package submission

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers submission routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/submissions", func(r chi.Router) {
		r.Get("/", h.ListSubmissions)
		r.Post("/", h.CreateSubmission)

		r.Route("/{submission_id}", func(r chi.Router) {
			r.Get("/", h.GetSubmission)
			r.Get("/export", h.ExportSubmission)
		})
	})
}
