// Package detail rebuilds the full fare, baggage and penalty breakdown of a
// single offer.
package detail

import (
	"strconv"
	"strings"

	"github.com/dharmasatrya/offerresolver/internal/aggregator"
	"github.com/dharmasatrya/offerresolver/internal/descriptor"
	"github.com/dharmasatrya/offerresolver/internal/itinerary"
	"github.com/dharmasatrya/offerresolver/internal/models"
	"github.com/dharmasatrya/offerresolver/pkg/currency"
)

// Resolve scans groups, itineraries and pricing entries in document order
// and builds the detail of the first fare-bearing entry whose offer id
// equals target. The second result is false when no entry matches.
func Resolve(target string, groups []models.ItineraryGroup, idx *descriptor.Index) (*models.OfferDetail, bool) {
	for _, group := range groups {
		for _, it := range group.Itineraries {
			for i, info := range it.PricingInformation {
				if info.Fare == nil {
					continue
				}
				offerID, synthetic := aggregator.OfferID(it.ID, i, info.Offer)
				if offerID != target {
					continue
				}

				flat := itinerary.Flatten(it, group.GroupDescription, idx)
				return build(offerID, synthetic, info.Fare, flat.Directions, idx), true
			}
		}
	}

	return nil, false
}

func build(offerID string, synthetic bool, fare *models.Fare, dirs []models.Direction, idx *descriptor.Index) *models.OfferDetail {
	d := &models.OfferDetail{
		OfferID:           offerID,
		Synthetic:         synthetic,
		ValidatingCarrier: fare.ValidatingCarrierCode,
		Itinerary:         make([]models.ItineraryRow, 0, len(dirs)),
		Passengers:        []models.PassengerRow{},
	}
	if d.ValidatingCarrier == "" {
		d.ValidatingCarrier = models.NotAvailable
	}

	if t := fare.TotalFare; t != nil {
		d.Price = &models.PriceBreakdown{
			Total: currency.FormatAmount(t.TotalPrice, t.Currency),
			Base:  currency.FormatAmount(t.BaseFareAmount, t.BaseFareCurrency),
			Taxes: currency.FormatAmount(t.TotalTaxAmount, t.Currency),
		}
	}

	for _, dir := range dirs {
		row := models.ItineraryRow{
			Date:     dir.Date,
			Route:    route(dir),
			Segments: make([]string, len(dir.Segments)),
		}
		for i, s := range dir.Segments {
			row.Segments[i] = itinerary.FlightLine(s)
		}
		d.Itinerary = append(d.Itinerary, row)
	}

	for _, item := range fare.PassengerInfoList {
		if item.PassengerInfo == nil {
			continue
		}
		d.Passengers = append(d.Passengers, passengerRows(item.PassengerInfo, dirs, idx)...)
	}

	return d
}

func passengerRows(pax *models.PassengerInfo, dirs []models.Direction, idx *descriptor.Index) []models.PassengerRow {
	label := passengerLabel(pax)
	rows := make([]models.PassengerRow, 0, len(dirs))

	offset := 0
	for _, dir := range dirs {
		row := models.PassengerRow{
			Passenger:   label,
			Route:       route(dir),
			FareDetails: models.NotAvailable,
			Penalties:   models.NotAvailable,
			Baggage:     baggageText(pax.BaggageInformation, dir, offset, idx),
		}
		offset += len(dir.Segments)

		if fc, ok := fareComponentFor(pax.FareComponents, dir); ok {
			row.FareDetails = fareDetailsText(fc, idx)
			row.Penalties = penaltiesText(fc, pax.PenaltiesInfo)
		}

		rows = append(rows, row)
	}

	return rows
}

func passengerLabel(pax *models.PassengerInfo) string {
	count := len(pax.Passengers)
	if count == 0 {
		count = pax.PassengerNumber
	}
	return pax.PassengerType + " (x" + strconv.Itoa(count) + ")"
}

func route(dir models.Direction) string {
	return dir.From + " -> " + dir.To
}

// fareComponentFor finds the passenger's fare component spanning exactly the
// direction's origin and destination.
func fareComponentFor(fcs []models.FareComponentRef, dir models.Direction) (models.FareComponentRef, bool) {
	for _, fc := range fcs {
		if fc.BeginAirport == dir.From && fc.EndAirport == dir.To {
			return fc, true
		}
	}
	return models.FareComponentRef{}, false
}

func fareDetailsText(fc models.FareComponentRef, idx *descriptor.Index) string {
	desc, ok := idx.FareComponent(fc.Ref)
	if !ok {
		return models.NotAvailable
	}

	header := "[Basis: " + desc.FareBasisCode + "]"
	if desc.Brand != nil {
		header += "\nBrand: " + desc.Brand.BrandName + " (" + desc.Brand.Code + ")"
	}
	lines := []string{header}

	for _, s := range fc.Segments {
		lines = append(lines, "Cabin: "+s.Segment.CabinCode+" (Cls: "+s.Segment.BookingCode+")")
	}

	if desc.Brand != nil {
		if pc, ok := idx.PriceClass(desc.Brand.PriceClassDescriptionRef); ok && len(pc.Descriptions) > 0 {
			lines = append(lines, "Services:")
			for _, d := range pc.Descriptions {
				lines = append(lines, "- "+d.Text)
			}
		}
	}

	return strings.Join(lines, "\n")
}
