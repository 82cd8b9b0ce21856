// Package itinerary turns an itinerary's leg references into resolved
// directions and flight segments.
package itinerary

import (
	"strconv"

	"github.com/dharmasatrya/offerresolver/internal/descriptor"
	"github.com/dharmasatrya/offerresolver/internal/models"
)

type Flattened struct {
	Directions []models.Direction
	// FlightCodes holds every resolved flight code of the itinerary in
	// first-seen order, without duplicates.
	FlightCodes []string
}

// Flatten resolves one direction per leg reference. Leg i realizes the
// group's leg description i. Missing legs and schedules never fail the walk:
// an unresolved leg yields an empty direction, an unresolved schedule is
// skipped.
func Flatten(it models.Itinerary, group models.GroupDescription, idx *descriptor.Index) Flattened {
	out := Flattened{
		Directions:  make([]models.Direction, 0, len(it.Legs)),
		FlightCodes: []string{},
	}
	seen := make(map[string]bool)

	for i, legRef := range it.Legs {
		dir := newDirection(i, group.LegDescriptions)

		leg, ok := idx.Leg(legRef.Ref)
		if !ok {
			out.Directions = append(out.Directions, dir)
			continue
		}

		for j, scheduleRef := range leg.Schedules {
			schedule, ok := idx.Schedule(scheduleRef.Ref)
			if !ok {
				continue
			}
			if j == 0 && schedule.Departure.Time != "" {
				dir.DepartureTime = schedule.Departure.Time
			}

			seg := models.Segment{
				From:                  schedule.Departure.Airport,
				To:                    schedule.Arrival.Airport,
				MarketingCarrier:      schedule.Carrier.Marketing,
				MarketingFlightNumber: schedule.Carrier.MarketingFlightNumber,
				DepartureTime:         schedule.Departure.Time,
				ArrivalTime:           schedule.Arrival.Time,
			}
			dir.Segments = append(dir.Segments, seg)
			dir.SegmentRefs = append(dir.SegmentRefs, scheduleRef.Ref)

			code := seg.FlightCode()
			if !seen[code] {
				seen[code] = true
				out.FlightCodes = append(out.FlightCodes, code)
			}
		}

		out.Directions = append(out.Directions, dir)
	}

	return out
}

func newDirection(i int, templates []models.LegDescription) models.Direction {
	dir := models.Direction{
		Label:         "Direction " + strconv.Itoa(i+1),
		From:          models.NotAvailable,
		To:            models.NotAvailable,
		Date:          models.NotAvailable,
		Segments:      []models.Segment{},
		SegmentRefs:   []int{},
		DepartureTime: models.NotAvailable,
	}

	if i < len(templates) {
		t := templates[i]
		dir.Label = t.DepartureLocation + " -> " + t.ArrivalLocation + " (" + t.DepartureDate + ")"
		dir.From = orNotAvailable(t.DepartureLocation)
		dir.To = orNotAvailable(t.ArrivalLocation)
		dir.Date = orNotAvailable(t.DepartureDate)
	}

	return dir
}

func orNotAvailable(s string) string {
	if s == "" {
		return models.NotAvailable
	}
	return s
}

// SegmentLine renders a segment as "LAX -> JFK (AA100)".
func SegmentLine(s models.Segment) string {
	return s.From + " -> " + s.To + " (" + s.FlightCode() + ")"
}

// FlightLine renders a segment as "AA100 (LAX -> JFK)".
func FlightLine(s models.Segment) string {
	return s.FlightCode() + " (" + s.From + " -> " + s.To + ")"
}

// DepartureTimes lists each direction's departure time in direction order.
func DepartureTimes(dirs []models.Direction) []string {
	out := make([]string, len(dirs))
	for i, d := range dirs {
		out[i] = d.DepartureTime
	}
	return out
}
