package filter

import (
	"slices"
	"strings"

	"github.com/dharmasatrya/offerresolver/internal/models"
	"github.com/dharmasatrya/offerresolver/internal/timeofday"
)

// Apply filters records and then sorts them. Records are never mutated; the
// result is a new slice unless no filter and no sort apply.
func Apply(records []models.OfferRecord, filters *models.SearchFilters, sortBy string) []models.OfferRecord {
	filtered := applyFilters(records, filters)

	if sortBy == models.SortDepartureTime {
		filtered = sortByDeparture(filtered)
	}

	return filtered
}

func applyFilters(records []models.OfferRecord, filters *models.SearchFilters) []models.OfferRecord {
	if filters.IsEmpty() {
		return records
	}

	c := compile(filters)
	result := make([]models.OfferRecord, 0, len(records))

	for _, r := range records {
		if c.matches(r) {
			result = append(result, r)
		}
	}

	return result
}

type criteria struct {
	flight    string
	brand     string
	depMin    int
	depMax    int
	hasDepMin bool
	hasDepMax bool
}

func compile(filters *models.SearchFilters) criteria {
	c := criteria{
		flight: strings.ToUpper(filters.Flight),
		brand:  strings.ToLower(filters.Brand),
	}

	// Unparseable bounds are rejected by SearchFilters.Validate; here they
	// are ignored.
	if filters.DepartureTimeMin != nil {
		if m, err := timeofday.ParseClock(*filters.DepartureTimeMin); err == nil {
			c.depMin, c.hasDepMin = m, true
		}
	}
	if filters.DepartureTimeMax != nil {
		if m, err := timeofday.ParseClock(*filters.DepartureTimeMax); err == nil {
			c.depMax, c.hasDepMax = m, true
		}
	}

	return c
}

func (c criteria) matches(r models.OfferRecord) bool {
	// Flight codes belong to the itinerary, so every offer of an itinerary
	// is kept or dropped together.
	if c.flight != "" && !r.HasFlight(c.flight) {
		return false
	}

	if c.brand != "" && !strings.Contains(strings.ToLower(r.Brand), c.brand) {
		return false
	}

	if c.hasDepMin || c.hasDepMax {
		dep, err := timeofday.MinuteOfDay(r.DepartureTime)
		if err != nil {
			return false
		}
		if c.hasDepMin && dep < c.depMin {
			return false
		}
		if c.hasDepMax && dep > c.depMax {
			return false
		}
	}

	return true
}

// sortByDeparture orders by departure time string. Times share one sortable
// layout, so string order is chronological order. Unknown departures go
// last; ties keep their input order.
func sortByDeparture(records []models.OfferRecord) []models.OfferRecord {
	sorted := slices.Clone(records)

	slices.SortStableFunc(sorted, func(a, b models.OfferRecord) int {
		aUnknown := a.DepartureTime == models.NotAvailable
		bUnknown := b.DepartureTime == models.NotAvailable
		switch {
		case aUnknown && bUnknown:
			return 0
		case aUnknown:
			return 1
		case bUnknown:
			return -1
		}
		return strings.Compare(a.DepartureTime, b.DepartureTime)
	})

	return sorted
}
