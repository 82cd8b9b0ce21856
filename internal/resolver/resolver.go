// Package resolver is the entry point for turning a shopping document into
// offer records and offer details.
package resolver

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dharmasatrya/offerresolver/internal/aggregator"
	"github.com/dharmasatrya/offerresolver/internal/descriptor"
	"github.com/dharmasatrya/offerresolver/internal/detail"
	"github.com/dharmasatrya/offerresolver/internal/filter"
	"github.com/dharmasatrya/offerresolver/internal/models"
)

type FormatError string

func (e FormatError) Error() string {
	return string(e)
}

const ErrInvalidFormat FormatError = "invalid format: missing groupedItineraryResponse"

var ErrOfferNotFound = errors.New("offer not found")

// Resolver holds one document and its descriptor index. It never mutates
// the document and is safe for concurrent use.
type Resolver struct {
	resp *models.GroupedItineraryResponse
	idx  *descriptor.Index
}

// New fails with ErrInvalidFormat when the document has no
// groupedItineraryResponse.
func New(doc *models.Document) (*Resolver, error) {
	if doc == nil || doc.GroupedItineraryResponse == nil {
		return nil, ErrInvalidFormat
	}
	return &Resolver{
		resp: doc.GroupedItineraryResponse,
		idx:  descriptor.NewIndex(doc.GroupedItineraryResponse),
	}, nil
}

// Decode parses raw JSON and checks the document shape. Syntax errors,
// trailing data included, are wrapped; a well-formed document without the response wrapper yields
// ErrInvalidFormat.
func Decode(raw []byte) (*models.Document, error) {
	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if doc.GroupedItineraryResponse == nil {
		return nil, ErrInvalidFormat
	}
	return &doc, nil
}

// Offers returns every offer record after filtering and sorting. sortBy
// accepts the keys NormalizeSortKey does; any other key is
// models.ErrUnknownSortKey.
func (r *Resolver) Offers(filters *models.SearchFilters, sortBy string) ([]models.OfferRecord, error) {
	key, err := models.NormalizeSortKey(sortBy)
	if err != nil {
		return nil, err
	}
	return filter.Apply(r.AllOffers(), filters, key), nil
}

// AllOffers returns the unfiltered records in document order.
func (r *Resolver) AllOffers() []models.OfferRecord {
	return aggregator.Collect(r.resp, r.idx)
}

func (r *Resolver) OfferDetail(offerID string) (*models.OfferDetail, error) {
	d, ok := detail.Resolve(offerID, r.resp.ItineraryGroups, r.idx)
	if !ok {
		return nil, ErrOfferNotFound
	}
	return d, nil
}

func ResolveOffers(doc *models.Document, filters *models.SearchFilters, sortBy string) ([]models.OfferRecord, error) {
	r, err := New(doc)
	if err != nil {
		return nil, err
	}
	return r.Offers(filters, sortBy)
}

func ResolveOfferDetail(doc *models.Document, offerID string) (*models.OfferDetail, error) {
	r, err := New(doc)
	if err != nil {
		return nil, err
	}
	return r.OfferDetail(offerID)
}
