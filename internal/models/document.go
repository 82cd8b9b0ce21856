package models

import "encoding/json"

type Document struct {
	GroupedItineraryResponse *GroupedItineraryResponse `json:"groupedItineraryResponse"`
}

type GroupedItineraryResponse struct {
	Version                string                  `json:"version,omitempty"`
	Statistics             *Statistics             `json:"statistics,omitempty"`
	ScheduleDescs          []ScheduleDesc          `json:"scheduleDescs,omitempty"`
	LegDescs               []LegDesc               `json:"legDescs,omitempty"`
	FareComponentDescs     []FareComponentDesc     `json:"fareComponentDescs,omitempty"`
	BaggageAllowanceDescs  []BaggageAllowanceDesc  `json:"baggageAllowanceDescs,omitempty"`
	BaggageChargeDescs     []BaggageChargeDesc     `json:"baggageChargeDescs,omitempty"`
	PriceClassDescriptions []PriceClassDescription `json:"priceClassDescriptions,omitempty"`
	ItineraryGroups        []ItineraryGroup        `json:"itineraryGroups,omitempty"`
}

type Statistics struct {
	ItineraryCount int `json:"itineraryCount"`
}

// Descriptor tables. Each descriptor keeps the bytes it was decoded from in
// Raw so fields this package does not model are still reachable.

type ScheduleDesc struct {
	ID              int             `json:"id"`
	StopCount       int             `json:"stopCount,omitempty"`
	ElapsedTime     int             `json:"elapsedTime,omitempty"`
	TotalMilesFlown int             `json:"totalMilesFlown,omitempty"`
	Departure       ScheduleStop    `json:"departure"`
	Arrival         ScheduleStop    `json:"arrival"`
	Carrier         ScheduleCarrier `json:"carrier"`
	Raw             json.RawMessage `json:"-"`
}

type ScheduleStop struct {
	Airport        string `json:"airport"`
	City           string `json:"city,omitempty"`
	Country        string `json:"country,omitempty"`
	Terminal       string `json:"terminal,omitempty"`
	Time           string `json:"time,omitempty"`
	DateAdjustment int    `json:"dateAdjustment,omitempty"`
}

type ScheduleCarrier struct {
	Marketing             string     `json:"marketing"`
	MarketingFlightNumber int        `json:"marketingFlightNumber"`
	Operating             string     `json:"operating,omitempty"`
	OperatingFlightNumber int        `json:"operatingFlightNumber,omitempty"`
	Equipment             *Equipment `json:"equipment,omitempty"`
}

type Equipment struct {
	Code string `json:"code"`
}

type LegDesc struct {
	ID          int             `json:"id"`
	ElapsedTime int             `json:"elapsedTime,omitempty"`
	Schedules   []Ref           `json:"schedules"`
	Raw         json.RawMessage `json:"-"`
}

type Ref struct {
	Ref                     int `json:"ref"`
	DepartureDateAdjustment int `json:"departureDateAdjustment,omitempty"`
}

type FareComponentDesc struct {
	ID                int             `json:"id"`
	GoverningCarrier  string          `json:"governingCarrier,omitempty"`
	FareBasisCode     string          `json:"fareBasisCode"`
	FarePassengerType string          `json:"farePassengerType,omitempty"`
	Directionality    string          `json:"directionality,omitempty"`
	Brand             *Brand          `json:"brand,omitempty"`
	Raw               json.RawMessage `json:"-"`
}

type Brand struct {
	Code                     string `json:"code"`
	BrandName                string `json:"brandName"`
	ProgramCode              string `json:"programCode,omitempty"`
	PriceClassDescriptionRef int    `json:"priceClassDescriptionRef,omitempty"`
}

type BaggageAllowanceDesc struct {
	ID           int             `json:"id"`
	PieceCount   int             `json:"pieceCount,omitempty"`
	Weight       int             `json:"weight,omitempty"`
	Unit         string          `json:"unit,omitempty"`
	Description1 string          `json:"description1,omitempty"`
	Description2 string          `json:"description2,omitempty"`
	Raw          json.RawMessage `json:"-"`
}

type BaggageChargeDesc struct {
	ID                 int             `json:"id"`
	EquivalentAmount   float64         `json:"equivalentAmount,omitempty"`
	EquivalentCurrency string          `json:"equivalentCurrency,omitempty"`
	Description1       string          `json:"description1,omitempty"`
	Description2       string          `json:"description2,omitempty"`
	FirstPiece         int             `json:"firstPiece,omitempty"`
	LastPiece          int             `json:"lastPiece,omitempty"`
	Raw                json.RawMessage `json:"-"`
}

type PriceClassDescription struct {
	ID           int                `json:"id"`
	Descriptions []PriceClassDetail `json:"descriptions,omitempty"`
	Raw          json.RawMessage    `json:"-"`
}

type PriceClassDetail struct {
	Text string `json:"text"`
}

// Itinerary groups.

type ItineraryGroup struct {
	GroupDescription GroupDescription `json:"groupDescription"`
	Itineraries      []Itinerary      `json:"itineraries,omitempty"`
}

type GroupDescription struct {
	LegDescriptions []LegDescription `json:"legDescriptions,omitempty"`
}

type LegDescription struct {
	DepartureDate     string `json:"departureDate"`
	DepartureLocation string `json:"departureLocation"`
	ArrivalLocation   string `json:"arrivalLocation"`
}

type Itinerary struct {
	ID                 int                  `json:"id"`
	PricingSource      string               `json:"pricingSource,omitempty"`
	Legs               []Ref                `json:"legs,omitempty"`
	PricingInformation []PricingInformation `json:"pricingInformation,omitempty"`
}

type PricingInformation struct {
	PricingSubsource string `json:"pricingSubsource,omitempty"`
	Offer            *Offer `json:"offer,omitempty"`
	Fare             *Fare  `json:"fare,omitempty"`
}

type Offer struct {
	OfferID string `json:"offerId"`
	TTL     int    `json:"ttl,omitempty"`
	Source  string `json:"source,omitempty"`
}

type Fare struct {
	ValidatingCarrierCode string              `json:"validatingCarrierCode,omitempty"`
	LastTicketDate        string              `json:"lastTicketDate,omitempty"`
	ETicketable           bool                `json:"eTicketable,omitempty"`
	PassengerInfoList     []PassengerInfoItem `json:"passengerInfoList,omitempty"`
	TotalFare             *TotalFare          `json:"totalFare,omitempty"`
}

type TotalFare struct {
	TotalPrice       float64 `json:"totalPrice"`
	TotalTaxAmount   float64 `json:"totalTaxAmount"`
	Currency         string  `json:"currency"`
	BaseFareAmount   float64 `json:"baseFareAmount"`
	BaseFareCurrency string  `json:"baseFareCurrency"`
}

type PassengerInfoItem struct {
	PassengerInfo *PassengerInfo `json:"passengerInfo,omitempty"`
}

type PassengerInfo struct {
	PassengerType      string               `json:"passengerType"`
	PassengerNumber    int                  `json:"passengerNumber,omitempty"`
	NonRefundable      bool                 `json:"nonRefundable,omitempty"`
	Passengers         []json.RawMessage    `json:"passengers,omitempty"`
	FareComponents     []FareComponentRef   `json:"fareComponents,omitempty"`
	PenaltiesInfo      *PenaltiesInfo       `json:"penaltiesInfo,omitempty"`
	BaggageInformation []BaggageInformation `json:"baggageInformation,omitempty"`
}

type FareComponentRef struct {
	Ref                 int                    `json:"ref"`
	BeginAirport        string                 `json:"beginAirport"`
	EndAirport          string                 `json:"endAirport"`
	Segments            []FareComponentSegment `json:"segments,omitempty"`
	ApplicablePenalties *ApplicablePenalties   `json:"applicablePenalties,omitempty"`
}

type FareComponentSegment struct {
	Segment SegmentBooking `json:"segment"`
}

type SegmentBooking struct {
	BookingCode    string `json:"bookingCode"`
	CabinCode      string `json:"cabinCode"`
	MealCode       string `json:"mealCode,omitempty"`
	SeatsAvailable int    `json:"seatsAvailable,omitempty"`
}

type ApplicablePenalties struct {
	Penalties []PenaltyLink `json:"penalties,omitempty"`
}

type PenaltyLink struct {
	ID int `json:"id"`
}

type PenaltiesInfo struct {
	Penalties []Penalty `json:"penalties,omitempty"`
}

// Penalty keeps Changeable, Refundable and Amount as pointers: an explicit
// false is a different answer from an omitted flag.
type Penalty struct {
	ID            int      `json:"id,omitempty"`
	Type          string   `json:"type"`
	Applicability string   `json:"applicability,omitempty"`
	Changeable    *bool    `json:"changeable,omitempty"`
	Refundable    *bool    `json:"refundable,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	Currency      string   `json:"currency,omitempty"`
}

const (
	PenaltyExchange = "Exchange"
	PenaltyRefund   = "Refund"
)

type BaggageInformation struct {
	ProvisionType string           `json:"provisionType"`
	AirlineCode   string           `json:"airlineCode,omitempty"`
	Segments      []BaggageSegment `json:"segments,omitempty"`
	Allowance     *Ref             `json:"allowance,omitempty"`
	Charge        *Ref             `json:"charge,omitempty"`
}

type BaggageSegment struct {
	ID int `json:"id"`
}

func (d *ScheduleDesc) UnmarshalJSON(b []byte) error {
	type plain ScheduleDesc
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = ScheduleDesc(v)
	d.Raw = append(json.RawMessage(nil), b...)
	return nil
}

func (d *LegDesc) UnmarshalJSON(b []byte) error {
	type plain LegDesc
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = LegDesc(v)
	d.Raw = append(json.RawMessage(nil), b...)
	return nil
}

func (d *FareComponentDesc) UnmarshalJSON(b []byte) error {
	type plain FareComponentDesc
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = FareComponentDesc(v)
	d.Raw = append(json.RawMessage(nil), b...)
	return nil
}

func (d *BaggageAllowanceDesc) UnmarshalJSON(b []byte) error {
	type plain BaggageAllowanceDesc
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = BaggageAllowanceDesc(v)
	d.Raw = append(json.RawMessage(nil), b...)
	return nil
}

func (d *BaggageChargeDesc) UnmarshalJSON(b []byte) error {
	type plain BaggageChargeDesc
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = BaggageChargeDesc(v)
	d.Raw = append(json.RawMessage(nil), b...)
	return nil
}

func (d *PriceClassDescription) UnmarshalJSON(b []byte) error {
	type plain PriceClassDescription
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = PriceClassDescription(v)
	d.Raw = append(json.RawMessage(nil), b...)
	return nil
}
