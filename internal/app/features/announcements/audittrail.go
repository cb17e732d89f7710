// internal/app/features/announcements/audittrail.go
package announcements

import (
	"context"
	"net/http"

	"github.com/dalemusser/schoolhub/internal/app/system/apijson"
	"github.com/dalemusser/schoolhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// auditRecentLimit caps GET /announcements/audit.
const auditRecentLimit = 50

// AuditRecent handles GET /announcements/audit. Requires a verified
// teacher; returns the most recent announcement mutation events, newest
// first.
func (h *Handler) AuditRecent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	events, err := h.AuditEvents.Recent(ctx, auditRecentLimit)
	if err != nil {
		h.Log.Error("failed to list audit events", zap.Error(err))
		apijson.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	apijson.Write(w, http.StatusOK, events)
}

// AuditTrail handles GET /announcements/{id}/audit. Requires a verified
// teacher; returns the mutation history of one announcement, newest first.
// The id only needs to be well-formed: history for a deleted announcement
// is still readable.
func (h *Handler) AuditTrail(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apijson.Error(w, http.StatusBadRequest, "Invalid announcement ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	events, err := h.AuditEvents.ForAnnouncement(ctx, id)
	if err != nil {
		h.Log.Error("failed to load audit trail", zap.Error(err), zap.String("id", id.Hex()))
		apijson.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	apijson.Write(w, http.StatusOK, events)
}
