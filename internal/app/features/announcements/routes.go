// internal/app/features/announcements/routes.go
package announcements

import (
	"github.com/dalemusser/schoolhub/internal/app/system/teacherauth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the announcements subrouter. Listing active announcements
// is public; every other operation passes through the teacher verifier.
func Routes(h *Handler, verifier *teacherauth.Verifier) chi.Router {
	r := chi.NewRouter()

	r.Get("/active", h.ListActive)

	r.Group(func(r chi.Router) {
		r.Use(verifier.RequireTeacher)
		r.Get("/all", h.ListAll)
		r.Get("/audit", h.AuditRecent)
		r.Get("/{id}/audit", h.AuditTrail)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
