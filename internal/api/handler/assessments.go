package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/keywarden/keywarden/internal/api/dto"
	apierrors "github.com/keywarden/keywarden/internal/api/errors"
	"github.com/keywarden/keywarden/internal/store"
)

// AssessmentsHandler handles assessment history endpoints.
type AssessmentsHandler struct {
	store store.Store
}

// NewAssessmentsHandler creates a new AssessmentsHandler. The store
// may be nil when persistence is disabled.
func NewAssessmentsHandler(st store.Store) *AssessmentsHandler {
	return &AssessmentsHandler{store: st}
}

// List handles GET /api/v1/assessments.
func (h *AssessmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		respondJSON(w, http.StatusOK, dto.AssessmentsResponse{Assessments: []*store.AssessmentRecord{}})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, apierrors.NewBadRequest("invalid limit: "+raw))
			return
		}
		limit = n
	}

	records, err := h.store.ListAssessments(r.Context(), limit)
	if err != nil {
		status, apiErr := apierrors.MapError(err)
		respondError(w, status, apiErr)
		return
	}
	if records == nil {
		records = []*store.AssessmentRecord{}
	}

	respondJSON(w, http.StatusOK, dto.AssessmentsResponse{
		Assessments: records,
		Count:       len(records),
	})
}

// Get handles GET /api/v1/assessments/{id}.
func (h *AssessmentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if h.store == nil {
		respondError(w, http.StatusNotFound, apierrors.NewNotFound("assessment", id))
		return
	}

	rec, err := h.store.GetAssessment(r.Context(), id)
	if err != nil {
		status, apiErr := apierrors.MapError(err)
		respondError(w, status, apiErr)
		return
	}
	if rec == nil {
		respondError(w, http.StatusNotFound, apierrors.NewNotFound("assessment", id))
		return
	}

	respondJSON(w, http.StatusOK, rec)
}
