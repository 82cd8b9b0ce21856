package detail

import (
	"testing"

	"github.com/dharmasatrya/offerresolver/internal/descriptor"
	"github.com/dharmasatrya/offerresolver/internal/models"
)

func bagFor(provision string, allowanceRef int, segmentIDs ...int) models.BaggageInformation {
	bag := models.BaggageInformation{ProvisionType: provision, Allowance: &models.Ref{Ref: allowanceRef}}
	for _, id := range segmentIDs {
		bag.Segments = append(bag.Segments, models.BaggageSegment{ID: id})
	}
	return bag
}

func baggageIndex() *descriptor.Index {
	return descriptor.NewIndex(&models.GroupedItineraryResponse{
		BaggageAllowanceDescs: []models.BaggageAllowanceDesc{
			{ID: 1, PieceCount: 2},
			{ID: 2, PieceCount: 1, Weight: 23, Unit: "kg", Description1: "UP TO 23 KG"},
			{ID: 3, PieceCount: 0},
		},
		BaggageChargeDescs: []models.BaggageChargeDesc{
			{ID: 10, EquivalentAmount: 35, EquivalentCurrency: "USD", Description1: "UP TO 50 POUNDS", Description2: "UP TO 62 LINEAR INCHES"},
			{ID: 11, Description1: "SEE RULES"},
		},
	})
}

func TestProvisionLabel(t *testing.T) {
	tests := map[string]string{
		"A": "Checked",
		"C": "Carry-on",
		"B": "Baggage",
		"P": "Pre-paid",
		"X": "Prov X",
		"":  "Prov ",
	}
	for code, expected := range tests {
		if got := ProvisionLabel(code); got != expected {
			t.Errorf("ProvisionLabel(%q) = %q, expected %q", code, got, expected)
		}
	}
}

func TestBaggageMatchingPredicates(t *testing.T) {
	// Second direction of an itinerary whose first direction has two
	// segments: schedule ids 41 and 42, positions 2 and 3.
	dir := models.Direction{
		Segments:    []models.Segment{{}, {}},
		SegmentRefs: []int{41, 42},
	}
	offset := 2

	tests := []struct {
		name       string
		bag        models.BaggageInformation
		byRef      bool
		byPosition bool
	}{
		{"schedule id only", bagFor("A", 1, 42), true, false},
		{"position only", bagFor("A", 1, 3), false, true},
		{"both", bagFor("A", 1, 2, 41), true, true},
		{"neither", bagFor("A", 1, 0, 1, 4, 40), false, false},
		{"no segments", bagFor("A", 1), false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchesBySegmentRef(tc.bag, dir.SegmentRefs); got != tc.byRef {
				t.Errorf("MatchesBySegmentRef = %v, expected %v", got, tc.byRef)
			}
			if got := MatchesByPosition(tc.bag, offset, len(dir.Segments)); got != tc.byPosition {
				t.Errorf("MatchesByPosition = %v, expected %v", got, tc.byPosition)
			}
		})
	}
}

func TestBaggageText(t *testing.T) {
	dir := models.Direction{Segments: []models.Segment{{}}, SegmentRefs: []int{7}}
	idx := baggageIndex()

	tests := []struct {
		name     string
		bags     []models.BaggageInformation
		offset   int
		expected string
	}{
		{"matched by schedule id", []models.BaggageInformation{bagFor("A", 2, 7)}, 5, "Checked: 23 kg (UP TO 23 KG)"},
		{"matched by position", []models.BaggageInformation{bagFor("C", 1, 5)}, 5, "Carry-on: 2 PC"},
		{"matched by neither", []models.BaggageInformation{bagFor("A", 2, 6, 8)}, 5, "N/A"},
		{"unresolved allowance", []models.BaggageInformation{bagFor("A", 99, 7)}, 0, "N/A"},
		{"zero pieces", []models.BaggageInformation{bagFor("B", 3, 7)}, 0, "Baggage: 0 PC"},
		{
			name: "charge",
			bags: []models.BaggageInformation{{
				ProvisionType: "P",
				Segments:      []models.BaggageSegment{{ID: 7}},
				Charge:        &models.Ref{Ref: 10},
			}},
			expected: "Pre-paid (Charge): 35 USD (UP TO 50 POUNDS) UP TO 62 LINEAR INCHES",
		},
		{
			name: "charge without amount",
			bags: []models.BaggageInformation{{
				ProvisionType: "Z",
				Segments:      []models.BaggageSegment{{ID: 7}},
				Charge:        &models.Ref{Ref: 11},
			}},
			expected: "Prov Z (Charge): (SEE RULES)",
		},
		{
			name:     "several lines",
			bags:     []models.BaggageInformation{bagFor("A", 2, 7), bagFor("C", 1, 0)},
			expected: "Checked: 23 kg (UP TO 23 KG)\nCarry-on: 2 PC",
		},
		{"no baggage", nil, 0, "N/A"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := baggageText(tc.bags, dir, tc.offset, idx); got != tc.expected {
				t.Errorf("baggageText = %q, expected %q", got, tc.expected)
			}
		})
	}
}
