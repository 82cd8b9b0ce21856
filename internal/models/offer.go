package models

import "strconv"

const (
	NotAvailable = "N/A"
	NoPenalties  = "None"
)

type Segment struct {
	From                  string `json:"from"`
	To                    string `json:"to"`
	MarketingCarrier      string `json:"marketing_carrier"`
	MarketingFlightNumber int    `json:"marketing_flight_number"`
	DepartureTime         string `json:"departure_time,omitempty"`
	ArrivalTime           string `json:"arrival_time,omitempty"`
}

// FlightCode is the carrier code followed by the flight number, e.g. "AF123".
func (s Segment) FlightCode() string {
	return s.MarketingCarrier + strconv.Itoa(s.MarketingFlightNumber)
}

type Direction struct {
	Label         string    `json:"label"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	Date          string    `json:"date"`
	Segments      []Segment `json:"segments"`
	SegmentRefs   []int     `json:"segment_refs"`
	DepartureTime string    `json:"departure_time"`
}

type Price struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Display   string  `json:"display"`
	Formatted string  `json:"formatted,omitempty"`
}

type OfferRecord struct {
	OfferID                   string      `json:"offer_id"`
	Synthetic                 bool        `json:"synthetic"`
	ItineraryID               int         `json:"itinerary_id"`
	Price                     Price       `json:"price"`
	ValidatingCarrier         string      `json:"validating_carrier"`
	FareBasisCodes            []string    `json:"fare_basis_codes"`
	FareBasis                 string      `json:"fare_basis"`
	BrandNames                []string    `json:"brand_names"`
	Brand                     string      `json:"brand"`
	Directions                []Direction `json:"directions"`
	DepartureTime             string      `json:"departure_time"`
	DepartureTimesByDirection []string    `json:"departure_times_by_direction"`
	FlightCodes               []string    `json:"flight_codes"`
}

// HasFlight reports whether code is one of the itinerary's flight codes.
// The comparison is exact; callers normalize case.
func (o OfferRecord) HasFlight(code string) bool {
	for _, c := range o.FlightCodes {
		if c == code {
			return true
		}
	}
	return false
}

type PriceBreakdown struct {
	Total string `json:"total"`
	Base  string `json:"base"`
	Taxes string `json:"taxes"`
}

type ItineraryRow struct {
	Date     string   `json:"date"`
	Route    string   `json:"route"`
	Segments []string `json:"segments"`
}

type PassengerRow struct {
	Passenger   string `json:"passenger"`
	Route       string `json:"route"`
	Baggage     string `json:"baggage"`
	FareDetails string `json:"fare_details"`
	Penalties   string `json:"penalties"`
}

type OfferDetail struct {
	OfferID           string          `json:"offer_id"`
	Synthetic         bool            `json:"synthetic"`
	ValidatingCarrier string          `json:"validating_carrier"`
	Price             *PriceBreakdown `json:"price,omitempty"`
	Itinerary         []ItineraryRow  `json:"itinerary"`
	Passengers        []PassengerRow  `json:"passengers"`
}
