// Package descriptor builds the id lookups the rest of the resolver walks.
// Descriptors are referenced by id only, never by position.
package descriptor

import "github.com/dharmasatrya/offerresolver/internal/models"

type Index struct {
	schedules         map[int]models.ScheduleDesc
	legs              map[int]models.LegDesc
	fareComponents    map[int]models.FareComponentDesc
	baggageAllowances map[int]models.BaggageAllowanceDesc
	baggageCharges    map[int]models.BaggageChargeDesc
	priceClasses      map[int]models.PriceClassDescription
}

// NewIndex builds the six lookups. A nil response yields an empty index.
// When an id repeats inside one table the later entry wins.
func NewIndex(resp *models.GroupedItineraryResponse) *Index {
	if resp == nil {
		resp = &models.GroupedItineraryResponse{}
	}

	return &Index{
		schedules:         byID(resp.ScheduleDescs, func(d models.ScheduleDesc) int { return d.ID }),
		legs:              byID(resp.LegDescs, func(d models.LegDesc) int { return d.ID }),
		fareComponents:    byID(resp.FareComponentDescs, func(d models.FareComponentDesc) int { return d.ID }),
		baggageAllowances: byID(resp.BaggageAllowanceDescs, func(d models.BaggageAllowanceDesc) int { return d.ID }),
		baggageCharges:    byID(resp.BaggageChargeDescs, func(d models.BaggageChargeDesc) int { return d.ID }),
		priceClasses:      byID(resp.PriceClassDescriptions, func(d models.PriceClassDescription) int { return d.ID }),
	}
}

func byID[T any](items []T, id func(T) int) map[int]T {
	m := make(map[int]T, len(items))
	for _, item := range items {
		m[id(item)] = item
	}
	return m
}

func (x *Index) Schedule(id int) (models.ScheduleDesc, bool) {
	d, ok := x.schedules[id]
	return d, ok
}

func (x *Index) Leg(id int) (models.LegDesc, bool) {
	d, ok := x.legs[id]
	return d, ok
}

func (x *Index) FareComponent(id int) (models.FareComponentDesc, bool) {
	d, ok := x.fareComponents[id]
	return d, ok
}

func (x *Index) BaggageAllowance(id int) (models.BaggageAllowanceDesc, bool) {
	d, ok := x.baggageAllowances[id]
	return d, ok
}

func (x *Index) BaggageCharge(id int) (models.BaggageChargeDesc, bool) {
	d, ok := x.baggageCharges[id]
	return d, ok
}

func (x *Index) PriceClass(id int) (models.PriceClassDescription, bool) {
	d, ok := x.priceClasses[id]
	return d, ok
}

// Sizes reports the entry count of each lookup, in table order.
func (x *Index) Sizes() [6]int {
	return [6]int{
		len(x.schedules),
		len(x.legs),
		len(x.fareComponents),
		len(x.baggageAllowances),
		len(x.baggageCharges),
		len(x.priceClasses),
	}
}
