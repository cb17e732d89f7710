// internal/app/features/announcements/announcements.go
package announcements

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	announcementstore "github.com/dalemusser/schoolhub/internal/app/store/announcements"
	"github.com/dalemusser/schoolhub/internal/app/system/apijson"
	"github.com/dalemusser/schoolhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/schoolhub/internal/app/system/isodate"
	"github.com/dalemusser/schoolhub/internal/app/system/teacherauth"
	"github.com/dalemusser/schoolhub/internal/app/system/timeouts"
	"github.com/dalemusser/schoolhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ListActive handles GET /announcements/active. Public: returns every
// announcement whose window contains the current server time, most
// recently created first.
func (h *Handler) ListActive(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Store.ListActive(ctx, isodate.Now())
	if err != nil {
		h.Log.Error("failed to list active announcements", zap.Error(err))
		apijson.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	apijson.Write(w, http.StatusOK, items)
}

// ListAll handles GET /announcements/all. Requires a verified teacher;
// returns every announcement regardless of active window.
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Store.ListAll(ctx)
	if err != nil {
		h.Log.Error("failed to list announcements", zap.Error(err))
		apijson.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	apijson.Write(w, http.StatusOK, items)
}

// createRequest is the JSON body for POST /announcements.
type createRequest struct {
	Message   string  `json:"message"`
	EndDate   string  `json:"end_date"`
	StartDate *string `json:"start_date"`
}

// Create handles POST /announcements. The verified teacher becomes
// created_by; the store assigns id and created_at.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := teacherauth.CurrentTeacher(r)
	if !ok {
		apijson.Error(w, http.StatusUnauthorized, "Authentication required for this action")
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apijson.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Message == "" {
		apijson.Error(w, http.StatusBadRequest, "Message is required")
		return
	}

	end, err := isodate.Parse(req.EndDate)
	if err != nil {
		apijson.Error(w, http.StatusBadRequest, "Invalid date format. Use ISO format (YYYY-MM-DDTHH:MM:SS)")
		return
	}

	// An empty start_date means "always started", same as omitting it.
	startDate := req.StartDate
	if startDate != nil && *startDate == "" {
		startDate = nil
	}
	if startDate != nil {
		start, err := isodate.Parse(*startDate)
		if err != nil {
			apijson.Error(w, http.StatusBadRequest, "Invalid date format. Use ISO format (YYYY-MM-DDTHH:MM:SS)")
			return
		}
		if !start.Before(end) {
			apijson.Error(w, http.StatusBadRequest, "Start date must be before end date")
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, models.Announcement{
		Message:   htmlsanitize.Message(req.Message),
		StartDate: startDate,
		EndDate:   req.EndDate,
		CreatedBy: principal.Username,
	})
	if err != nil {
		h.Log.Error("failed to create announcement", zap.Error(err), zap.String("created_by", principal.Username))
		apijson.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.Audit.AnnouncementCreated(ctx, r, principal.Username, created.ID)

	apijson.Write(w, http.StatusCreated, created)
}

// updateRequest is the JSON body for PUT /announcements/{id}. nil means
// "leave unchanged"; for start_date an explicit empty string clears the
// field to "always started".
type updateRequest struct {
	Message   *string `json:"message"`
	EndDate   *string `json:"end_date"`
	StartDate *string `json:"start_date"`
}

// Update handles PUT /announcements/{id}. Only supplied fields change.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := teacherauth.CurrentTeacher(r)
	if !ok {
		apijson.Error(w, http.StatusUnauthorized, "Authentication required for this action")
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apijson.Error(w, http.StatusBadRequest, "Invalid announcement ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	current, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, announcementstore.ErrNotFound) {
			apijson.Error(w, http.StatusNotFound, "Announcement not found")
			return
		}
		h.Log.Error("failed to load announcement", zap.Error(err), zap.String("id", id.Hex()))
		apijson.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		apijson.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	set := bson.M{}
	var changed []string
	if req.Message != nil {
		set["message"] = htmlsanitize.Message(*req.Message)
		changed = append(changed, "message")
	}
	if req.EndDate != nil {
		if !isodate.Valid(*req.EndDate) {
			apijson.Error(w, http.StatusBadRequest, "Invalid end_date format. Use ISO format")
			return
		}
		set["end_date"] = *req.EndDate
		changed = append(changed, "end_date")
	}
	if req.StartDate != nil {
		if *req.StartDate == "" {
			set["start_date"] = nil
		} else {
			if !isodate.Valid(*req.StartDate) {
				apijson.Error(w, http.StatusBadRequest, "Invalid start_date format. Use ISO format")
				return
			}
			set["start_date"] = *req.StartDate
		}
		changed = append(changed, "start_date")
	}

	// Re-validate the window over the prospective final values: supplied
	// values override stored ones. When either final value no longer
	// parses, the individual checks above already passed, so the combined
	// check is skipped rather than failing the request.
	finalStart := current.StartDate
	if req.StartDate != nil {
		if *req.StartDate == "" {
			finalStart = nil
		} else {
			finalStart = req.StartDate
		}
	}
	finalEnd := current.EndDate
	if req.EndDate != nil {
		finalEnd = *req.EndDate
	}
	if finalStart != nil && *finalStart != "" && finalEnd != "" {
		start, startErr := isodate.Parse(*finalStart)
		end, endErr := isodate.Parse(finalEnd)
		if startErr == nil && endErr == nil && !start.Before(end) {
			apijson.Error(w, http.StatusBadRequest, "Start date must be before end date")
			return
		}
	}

	if err := h.Store.Update(ctx, id, set); err != nil {
		if errors.Is(err, announcementstore.ErrNotFound) {
			apijson.Error(w, http.StatusNotFound, "Announcement not found")
			return
		}
		h.Log.Error("failed to update announcement", zap.Error(err), zap.String("id", id.Hex()))
		apijson.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	updated, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.Log.Error("failed to reload announcement", zap.Error(err), zap.String("id", id.Hex()))
		apijson.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if len(changed) > 0 {
		h.Audit.AnnouncementUpdated(ctx, r, principal.Username, id, changed)
	}

	apijson.Write(w, http.StatusOK, updated)
}

// Delete handles DELETE /announcements/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := teacherauth.CurrentTeacher(r)
	if !ok {
		apijson.Error(w, http.StatusUnauthorized, "Authentication required for this action")
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apijson.Error(w, http.StatusBadRequest, "Invalid announcement ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, announcementstore.ErrNotFound) {
			apijson.Error(w, http.StatusNotFound, "Announcement not found")
			return
		}
		h.Log.Error("failed to delete announcement", zap.Error(err), zap.String("id", id.Hex()))
		apijson.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	h.Audit.AnnouncementDeleted(ctx, r, principal.Username, id)

	apijson.Write(w, http.StatusOK, map[string]string{"message": "Announcement deleted successfully"})
}
