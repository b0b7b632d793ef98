package handler

import (
	"net/http"

	"github.com/keywarden/keywarden/internal/api/dto"
	"github.com/keywarden/keywarden/pkg/standard"
)

// StandardsHandler handles standard listing endpoints.
type StandardsHandler struct{}

// NewStandardsHandler creates a new StandardsHandler.
func NewStandardsHandler() *StandardsHandler {
	return &StandardsHandler{}
}

// List handles GET /api/v1/standards.
func (h *StandardsHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.StandardsResponse{
		Standards: standard.Names(),
	})
}
