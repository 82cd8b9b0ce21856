package aggregator

import (
	"fmt"
	"strings"

	"github.com/dharmasatrya/offerresolver/internal/descriptor"
	"github.com/dharmasatrya/offerresolver/internal/itinerary"
	"github.com/dharmasatrya/offerresolver/internal/models"
	"github.com/dharmasatrya/offerresolver/pkg/currency"
)

// OfferID returns the offer's own identifier, or a synthetic one built from
// the itinerary id and the pricing entry position when the entry carries no
// offer. The second result reports whether the id is synthetic.
func OfferID(itineraryID, position int, offer *models.Offer) (string, bool) {
	if offer != nil && offer.OfferID != "" {
		return offer.OfferID, false
	}
	return fmt.Sprintf("GDS-ITIN-%d-P%d", itineraryID, position), true
}

// Collect walks every itinerary group in document order and returns one
// record per fare-bearing pricing entry.
func Collect(resp *models.GroupedItineraryResponse, idx *descriptor.Index) []models.OfferRecord {
	records := make([]models.OfferRecord, 0)
	if resp == nil {
		return records
	}

	for _, group := range resp.ItineraryGroups {
		for _, it := range group.Itineraries {
			flat := itinerary.Flatten(it, group.GroupDescription, idx)
			records = append(records, collectItinerary(it, flat, idx)...)
		}
	}

	return records
}

func collectItinerary(it models.Itinerary, flat itinerary.Flattened, idx *descriptor.Index) []models.OfferRecord {
	var records []models.OfferRecord

	departures := itinerary.DepartureTimes(flat.Directions)
	departure := models.NotAvailable
	if len(departures) > 0 {
		departure = departures[0]
	}

	for i, info := range it.PricingInformation {
		if info.Fare == nil {
			continue
		}
		fare := info.Fare

		offerID, synthetic := OfferID(it.ID, i, info.Offer)
		fareBasis, brands := fareBasisAndBrands(fare, idx)

		records = append(records, models.OfferRecord{
			OfferID:                   offerID,
			Synthetic:                 synthetic,
			ItineraryID:               it.ID,
			Price:                     buildPrice(fare.TotalFare),
			ValidatingCarrier:         orNotAvailable(fare.ValidatingCarrierCode),
			FareBasisCodes:            fareBasis,
			FareBasis:                 strings.Join(fareBasis, ", "),
			BrandNames:                brands,
			Brand:                     strings.Join(brands, ", "),
			Directions:                flat.Directions,
			DepartureTime:             departure,
			DepartureTimesByDirection: departures,
			FlightCodes:               flat.FlightCodes,
		})
	}

	return records
}

// fareBasisAndBrands collects the distinct fare basis codes and brand names
// of every resolved fare component, in first-seen order.
func fareBasisAndBrands(fare *models.Fare, idx *descriptor.Index) ([]string, []string) {
	fareBasis := newOrderedSet()
	brands := newOrderedSet()

	for _, item := range fare.PassengerInfoList {
		if item.PassengerInfo == nil {
			continue
		}
		for _, fc := range item.PassengerInfo.FareComponents {
			desc, ok := idx.FareComponent(fc.Ref)
			if !ok {
				continue
			}
			fareBasis.add(desc.FareBasisCode)
			if desc.Brand != nil && desc.Brand.BrandName != "" {
				brands.add(desc.Brand.BrandName)
			}
		}
	}

	return fareBasis.items, brands.items
}

func buildPrice(total *models.TotalFare) models.Price {
	if total == nil {
		return models.Price{Display: models.NotAvailable}
	}
	return models.Price{
		Amount:    total.TotalPrice,
		Currency:  total.Currency,
		Display:   currency.FormatAmount(total.TotalPrice, total.Currency),
		Formatted: currency.FormatGrouped(total.TotalPrice, total.Currency),
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return models.NotAvailable
	}
	return s
}

type orderedSet struct {
	seen  map[string]bool
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]bool), items: []string{}}
}

func (s *orderedSet) add(v string) {
	if s.seen[v] {
		return
	}
	s.seen[v] = true
	s.items = append(s.items, v)
}
