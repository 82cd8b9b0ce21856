package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/offerresolver/internal/models"
	"github.com/dharmasatrya/offerresolver/internal/resolver"
	"github.com/dharmasatrya/offerresolver/internal/store"
)

const DefaultMaxDocumentBytes = 32 << 20

type OffersHandler struct {
	store    store.Store
	maxBytes int64
}

func NewOffersHandler(s store.Store, maxDocumentBytes int64) *OffersHandler {
	if maxDocumentBytes <= 0 {
		maxDocumentBytes = DefaultMaxDocumentBytes
	}
	return &OffersHandler{
		store:    s,
		maxBytes: maxDocumentBytes,
	}
}

// Register mounts the offer routes on g.
func (h *OffersHandler) Register(g *echo.Group) {
	g.POST("/documents", h.UploadDocument)
	g.GET("/documents/:id/offers", h.ListOffers)
	g.GET("/documents/:id/offers/:offerId", h.GetOffer)
	g.POST("/offers/search", h.Search)
}

func (h *OffersHandler) UploadDocument(c echo.Context) error {
	raw, apiErr := h.readBody(c)
	if apiErr != nil {
		return apiErr.write(c)
	}

	r, apiErr := decodeDocument(raw)
	if apiErr != nil {
		return apiErr.write(c)
	}

	id := uuid.NewString()
	if err := h.store.Put(c.Request().Context(), id, raw); err != nil {
		log.Printf("Failed to store document %s: %v", id, err)
		return errorJSON(c, http.StatusInternalServerError, "store_error", "Failed to store document")
	}

	return c.JSON(http.StatusCreated, models.DocumentResponse{
		DocumentID:  id,
		TotalOffers: len(r.AllOffers()),
	})
}

func (h *OffersHandler) ListOffers(c echo.Context) error {
	startTime := time.Now()

	filters := filtersFromQuery(c)
	sortBy, err := models.NormalizeSortKey(c.QueryParam("sort_by"))
	if err == nil {
		err = filters.Validate()
	}
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "validation_error", err.Error())
	}

	id := c.Param("id")
	r, apiErr := h.loadResolver(c, id)
	if apiErr != nil {
		return apiErr.write(c)
	}

	all := r.AllOffers()
	offers, err := r.Offers(filters, sortBy)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "validation_error", err.Error())
	}

	return c.JSON(http.StatusOK, models.OffersResponse{
		SearchCriteria: models.SearchCriteria{
			DocumentID: id,
			Filters:    filters,
			SortBy:     sortBy,
		},
		Metadata: models.SearchMetadata{
			TotalResults: len(offers),
			TotalOffers:  len(all),
			SearchTimeMs: time.Since(startTime).Milliseconds(),
		},
		Offers: offers,
	})
}

func (h *OffersHandler) GetOffer(c echo.Context) error {
	r, apiErr := h.loadResolver(c, c.Param("id"))
	if apiErr != nil {
		return apiErr.write(c)
	}

	offerID := c.Param("offerId")
	d, err := r.OfferDetail(offerID)
	if errors.Is(err, resolver.ErrOfferNotFound) {
		return errorJSON(c, http.StatusNotFound, "offer_not_found", "Offer ID "+offerID+" not found")
	}
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "resolve_error", err.Error())
	}

	return c.JSON(http.StatusOK, d)
}

// Search resolves a document sent inline, without storing it.
func (h *OffersHandler) Search(c echo.Context) error {
	startTime := time.Now()

	body, apiErr := h.readBody(c)
	if apiErr != nil {
		return apiErr.write(c)
	}

	var req models.SearchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "Failed to parse request body: "+err.Error())
	}

	if err := req.Validate(); err != nil {
		return errorJSON(c, http.StatusBadRequest, "validation_error", err.Error())
	}

	r, apiErr := decodeDocument(req.Document)
	if apiErr != nil {
		return apiErr.write(c)
	}

	all := r.AllOffers()
	offers, err := r.Offers(req.Filters, req.SortBy)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "validation_error", err.Error())
	}

	return c.JSON(http.StatusOK, models.OffersResponse{
		SearchCriteria: models.SearchCriteria{
			Filters: req.Filters,
			SortBy:  req.SortBy,
		},
		Metadata: models.SearchMetadata{
			TotalResults: len(offers),
			TotalOffers:  len(all),
			SearchTimeMs: time.Since(startTime).Milliseconds(),
		},
		Offers: offers,
	})
}

type apiError struct {
	status  int
	code    string
	message string
}

func (e *apiError) write(c echo.Context) error {
	return errorJSON(c, e.status, e.code, e.message)
}

// readBody reads at most maxBytes of the request body. Anything longer is
// rejected with 413 before it is parsed.
func (h *OffersHandler) readBody(c echo.Context) ([]byte, *apiError) {
	raw, err := io.ReadAll(io.LimitReader(c.Request().Body, h.maxBytes+1))
	if err != nil {
		return nil, &apiError{http.StatusBadRequest, "invalid_request", "Failed to read request body: " + err.Error()}
	}
	if int64(len(raw)) > h.maxBytes {
		return nil, &apiError{http.StatusRequestEntityTooLarge, "document_too_large", "Document exceeds the upload limit"}
	}
	return raw, nil
}

func (h *OffersHandler) loadResolver(c echo.Context, id string) (*resolver.Resolver, *apiError) {
	raw, found, err := h.store.Get(c.Request().Context(), id)
	if err != nil {
		log.Printf("Failed to load document %s: %v", id, err)
		return nil, &apiError{http.StatusInternalServerError, "store_error", "Failed to load document"}
	}
	if !found {
		return nil, &apiError{http.StatusNotFound, "document_not_found", "Document " + id + " not found"}
	}

	return decodeDocument(raw)
}

// decodeDocument maps a syntax error to 400 and a missing response wrapper
// to 422.
func decodeDocument(raw []byte) (*resolver.Resolver, *apiError) {
	doc, err := resolver.Decode(raw)
	if err == nil {
		var r *resolver.Resolver
		if r, err = resolver.New(doc); err == nil {
			return r, nil
		}
	}

	if errors.Is(err, resolver.ErrInvalidFormat) {
		return nil, &apiError{http.StatusUnprocessableEntity, "invalid_format", err.Error()}
	}
	return nil, &apiError{http.StatusBadRequest, "invalid_document", err.Error()}
}

func filtersFromQuery(c echo.Context) *models.SearchFilters {
	f := &models.SearchFilters{
		Flight: c.QueryParam("flight"),
		Brand:  c.QueryParam("brand"),
	}
	if v := c.QueryParam("departure_time_min"); v != "" {
		f.DepartureTimeMin = &v
	}
	if v := c.QueryParam("departure_time_max"); v != "" {
		f.DepartureTimeMax = &v
	}
	return f
}

func errorJSON(c echo.Context, status int, code, message string) error {
	return c.JSON(status, models.ErrorResponse{
		Error:   code,
		Message: message,
		Code:    status,
	})
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
