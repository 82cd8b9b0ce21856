package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/offerresolver/internal/fixture"
	"github.com/dharmasatrya/offerresolver/internal/models"
	"github.com/dharmasatrya/offerresolver/internal/store"
)

func newTestServer(s store.Store) *echo.Echo {
	e := echo.New()
	NewOffersHandler(s, 0).Register(e.Group("/api/v1"))
	e.GET("/health", HealthHandler)
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func uploadSample(t *testing.T, e *echo.Echo) string {
	t.Helper()
	rec := do(e, http.MethodPost, "/api/v1/documents", fixture.SampleJSON)
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload status = %d, body %s", rec.Code, rec.Body.String())
	}
	resp := decode[models.DocumentResponse](t, rec)
	if resp.TotalOffers != 4 {
		t.Errorf("TotalOffers = %d, expected 4", resp.TotalOffers)
	}
	return resp.DocumentID
}

func TestUploadAndListOffers(t *testing.T) {
	e := newTestServer(store.NewMemoryStore(0))
	id := uploadSample(t, e)

	rec := do(e, http.MethodGet, "/api/v1/documents/"+id+"/offers?brand=LIGHT&sort_by=departure_time", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	resp := decode[models.OffersResponse](t, rec)
	if resp.Metadata.TotalResults != 2 || resp.Metadata.TotalOffers != 4 {
		t.Errorf("Metadata = %+v", resp.Metadata)
	}
	if resp.Offers[0].OfferID != "OFFER-B" || resp.Offers[1].OfferID != "GDS-ITIN-1-P1" {
		t.Errorf("offers = %s, %s", resp.Offers[0].OfferID, resp.Offers[1].OfferID)
	}
	if resp.SearchCriteria.DocumentID != id || resp.SearchCriteria.SortBy != models.SortDepartureTime {
		t.Errorf("SearchCriteria = %+v", resp.SearchCriteria)
	}
}

func TestListOffersValidation(t *testing.T) {
	e := newTestServer(store.NewMemoryStore(0))
	id := uploadSample(t, e)

	tests := []struct {
		query string
		code  int
	}{
		{"sort_by=price", http.StatusBadRequest},
		{"departure_time_min=8am", http.StatusBadRequest},
		{"departure_time_min=07:00&departure_time_max=09:00", http.StatusOK},
		{"sort_by=departureTime", http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			rec := do(e, http.MethodGet, "/api/v1/documents/"+id+"/offers?"+tc.query, "")
			if rec.Code != tc.code {
				t.Errorf("status = %d, expected %d (body %s)", rec.Code, tc.code, rec.Body.String())
			}
		})
	}
}

func TestGetOffer(t *testing.T) {
	e := newTestServer(store.NewMemoryStore(0))
	id := uploadSample(t, e)

	rec := do(e, http.MethodGet, "/api/v1/documents/"+id+"/offers/OFFER-A", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	d := decode[models.OfferDetail](t, rec)
	if d.OfferID != "OFFER-A" || len(d.Passengers) != 2 {
		t.Errorf("detail = %+v", d)
	}

	rec = do(e, http.MethodGet, "/api/v1/documents/"+id+"/offers/NOPE", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown offer status = %d, expected 404", rec.Code)
	}
	if resp := decode[models.ErrorResponse](t, rec); resp.Error != "offer_not_found" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestUnknownDocument(t *testing.T) {
	e := newTestServer(store.NewMemoryStore(0))

	rec := do(e, http.MethodGet, "/api/v1/documents/missing/offers", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, expected 404", rec.Code)
	}
}

func TestUploadRejectsBadDocuments(t *testing.T) {
	e := newTestServer(store.NewMemoryStore(0))

	tests := []struct {
		name  string
		body  string
		code  int
		error string
	}{
		{"missing wrapper", `{"itineraryGroups": []}`, http.StatusUnprocessableEntity, "invalid_format"},
		{"not json", `{"groupedItineraryResponse":`, http.StatusBadRequest, "invalid_document"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/api/v1/documents", tc.body)
			if rec.Code != tc.code {
				t.Errorf("status = %d, expected %d", rec.Code, tc.code)
			}
			if resp := decode[models.ErrorResponse](t, rec); resp.Error != tc.error {
				t.Errorf("error = %q, expected %q", resp.Error, tc.error)
			}
		})
	}
}

func TestBodyTooLarge(t *testing.T) {
	e := echo.New()
	NewOffersHandler(store.NewMemoryStore(0), 64).Register(e.Group("/api/v1"))

	tests := []struct {
		target string
		body   string
	}{
		{"/api/v1/documents", fixture.SampleJSON},
		{"/api/v1/offers/search", `{"document": ` + fixture.SampleJSON + `}`},
	}

	for _, tc := range tests {
		t.Run(tc.target, func(t *testing.T) {
			rec := do(e, http.MethodPost, tc.target, tc.body)
			if rec.Code != http.StatusRequestEntityTooLarge {
				t.Errorf("status = %d, expected 413", rec.Code)
			}
		})
	}

	rec := do(e, http.MethodPost, "/api/v1/offers/search", `{"document": {"groupedItineraryResponse": {}}}`)
	if rec.Code != http.StatusOK {
		t.Errorf("small search status = %d, expected 200 (body %s)", rec.Code, rec.Body.String())
	}
}

type failingStore struct{}

func (failingStore) Put(context.Context, string, []byte) error { return errors.New("down") }
func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("down")
}
func (failingStore) Close() error { return nil }

func TestStoreFailures(t *testing.T) {
	e := newTestServer(failingStore{})

	if rec := do(e, http.MethodPost, "/api/v1/documents", fixture.SampleJSON); rec.Code != http.StatusInternalServerError {
		t.Errorf("upload status = %d, expected 500", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/api/v1/documents/x/offers", ""); rec.Code != http.StatusInternalServerError {
		t.Errorf("list status = %d, expected 500", rec.Code)
	}
}

func TestSearchInline(t *testing.T) {
	e := newTestServer(store.NewMemoryStore(0))

	body := `{"document": ` + fixture.SampleJSON + `, "filters": {"flight": "ua300"}}`
	rec := do(e, http.MethodPost, "/api/v1/offers/search", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	resp := decode[models.OffersResponse](t, rec)
	if len(resp.Offers) != 1 || resp.Offers[0].OfferID != "OFFER-B" {
		t.Errorf("offers = %+v", resp.Offers)
	}
}

func TestSearchInlineErrors(t *testing.T) {
	e := newTestServer(store.NewMemoryStore(0))

	tests := []struct {
		name string
		body string
		code int
	}{
		{"missing document", `{"filters": {}}`, http.StatusBadRequest},
		{"bad sort", `{"document": {"groupedItineraryResponse": {}}, "sort_by": "price"}`, http.StatusBadRequest},
		{"missing wrapper", `{"document": {}}`, http.StatusUnprocessableEntity},
		{"malformed body", `{"document": `, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if rec := do(e, http.MethodPost, "/api/v1/offers/search", tc.body); rec.Code != tc.code {
				t.Errorf("status = %d, expected %d (body %s)", rec.Code, tc.code, rec.Body.String())
			}
		})
	}
}

func TestHealth(t *testing.T) {
	e := newTestServer(store.NewMemoryStore(0))
	if rec := do(e, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}
