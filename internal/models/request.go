package models

import (
	"encoding/json"
	"strings"

	"github.com/dharmasatrya/offerresolver/internal/timeofday"
)

const (
	SortNone          = ""
	SortDepartureTime = "departure_time"
)

type SearchFilters struct {
	Flight           string  `json:"flight,omitempty" query:"flight"`
	Brand            string  `json:"brand,omitempty" query:"brand"`
	DepartureTimeMin *string `json:"departure_time_min,omitempty" query:"departure_time_min"`
	DepartureTimeMax *string `json:"departure_time_max,omitempty" query:"departure_time_max"`
}

func (f *SearchFilters) IsEmpty() bool {
	return f == nil ||
		(f.Flight == "" && f.Brand == "" && f.DepartureTimeMin == nil && f.DepartureTimeMax == nil)
}

func (f *SearchFilters) Validate() error {
	if f == nil {
		return nil
	}
	for _, bound := range []*string{f.DepartureTimeMin, f.DepartureTimeMax} {
		if bound == nil {
			continue
		}
		if _, err := timeofday.ParseClock(*bound); err != nil {
			return ErrInvalidTimeOfDay
		}
	}
	return nil
}

type SearchRequest struct {
	Document json.RawMessage `json:"document"`
	Filters  *SearchFilters  `json:"filters,omitempty"`
	SortBy   string          `json:"sort_by,omitempty"`
}

func (r *SearchRequest) Validate() error {
	if len(r.Document) == 0 || string(r.Document) == "null" {
		return ErrMissingDocument
	}
	sortBy, err := NormalizeSortKey(r.SortBy)
	if err != nil {
		return err
	}
	r.SortBy = sortBy
	return r.Filters.Validate()
}

// NormalizeSortKey accepts the snake_case key and the camelCase spelling
// older clients send.
func NormalizeSortKey(key string) (string, error) {
	switch strings.TrimSpace(key) {
	case "":
		return SortNone, nil
	case SortDepartureTime, "departureTime":
		return SortDepartureTime, nil
	default:
		return "", ErrUnknownSortKey
	}
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingDocument  ValidationError = "document is required"
	ErrUnknownSortKey   ValidationError = "sort_by must be empty or departure_time"
	ErrInvalidTimeOfDay ValidationError = "departure time bounds must be formatted as HH:MM"
)
