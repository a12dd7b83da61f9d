package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/skysearch/internal/adapters/http/dto"
	"github.com/jsamuelsen11/skysearch/internal/domain/passenger"
)

// CatalogHandler serves static reference data used to build search forms.
type CatalogHandler struct {
	categories dto.PassengerCategoryListResponse
}

// NewCatalogHandler creates a CatalogHandler over the passenger categories.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{categories: dto.ToPassengerCategoryListResponse(passenger.Categories())}
}

// ListPassengerCategories handles GET /api/v1/passenger-categories.
func (h *CatalogHandler) ListPassengerCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.categories)
}
