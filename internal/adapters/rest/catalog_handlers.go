package rest

import (
	"net/http"
	"strconv"
	"wareland-api/internal/contextkeys"
	"wareland-api/internal/core/domain"
	"wareland-api/internal/core/port"
	"wareland-api/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	listUC   usecases_port.ListPropertiesUseCasePort
	searchUC usecases_port.SearchPropertiesUseCasePort
	detailUC usecases_port.GetPropertyDetailUseCasePort
}

func NewCatalogHandler(listUC usecases_port.ListPropertiesUseCasePort,
	searchUC usecases_port.SearchPropertiesUseCasePort,
	detailUC usecases_port.GetPropertyDetailUseCasePort) *CatalogHandler {
	return &CatalogHandler{
		listUC:   listUC,
		searchUC: searchUC,
		detailUC: detailUC,
	}
}

// ListProperties handles GET /api/catalog/properties
func (h *CatalogHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListProperties"})

	entries, err := h.listUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	respondCatalogList(w, entries)
}

// SearchProperties handles GET /api/catalog/properties/search?keyword=&minPrice=&maxPrice=
func (h *CatalogHandler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SearchProperties"})
	query := r.URL.Query()

	minPrice, err := parseOptionalFloat(query, "minPrice")
	if err != nil {
		logger.Warn("Invalid minPrice parameter", port.Fields{"value": query.Get("minPrice")})
		WriteJSONError(w, http.StatusBadRequest, "Parameter minPrice tidak valid")
		return
	}
	maxPrice, err := parseOptionalFloat(query, "maxPrice")
	if err != nil {
		logger.Warn("Invalid maxPrice parameter", port.Fields{"value": query.Get("maxPrice")})
		WriteJSONError(w, http.StatusBadRequest, "Parameter maxPrice tidak valid")
		return
	}

	criteria := &domain.SearchCriteria{
		Keyword:  parseOptionalString(query, "keyword"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	}

	entries, err := h.searchUC.Execute(r.Context(), criteria)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	respondCatalogList(w, entries)
}

// GetPropertyDetail handles GET /api/catalog/properties/{propertyId}
func (h *CatalogHandler) GetPropertyDetail(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPropertyDetail"})

	rawID := chi.URLParam(r, "propertyId")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		logger.Warn("Invalid propertyId path parameter", port.Fields{"value": rawID})
		WriteJSONError(w, http.StatusBadRequest, "Parameter propertyId tidak valid")
		return
	}

	entry, err := h.detailUC.Execute(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	if entry == nil {
		respondSuccess(w, http.StatusOK, MessagePropertyUnavailable, nil)
		return
	}
	respondSuccess(w, http.StatusOK, "", toCatalogEntryResponse(entry))
}

func respondCatalogList(w http.ResponseWriter, entries []domain.CatalogEntry) {
	data := toCatalogEntryResponses(entries)
	if len(data) == 0 {
		respondSuccess(w, http.StatusOK, MessagePropertyUnavailable, data)
		return
	}
	respondSuccess(w, http.StatusOK, "", data)
}
