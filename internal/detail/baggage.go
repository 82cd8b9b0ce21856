package detail

import (
	"strconv"
	"strings"

	"github.com/dharmasatrya/offerresolver/internal/descriptor"
	"github.com/dharmasatrya/offerresolver/internal/models"
	"github.com/dharmasatrya/offerresolver/pkg/currency"
)

var provisionLabels = map[string]string{
	"A": "Checked",
	"C": "Carry-on",
	"B": "Baggage",
	"P": "Pre-paid",
}

func ProvisionLabel(code string) string {
	if label, ok := provisionLabels[code]; ok {
		return label
	}
	return "Prov " + code
}

// Baggage entries point at segments in one of two ways, depending on where
// the data came from: by schedule id, or by the segment's position counted
// across the whole itinerary. An entry applies to a direction when either
// matches.

// MatchesBySegmentRef reports whether any segment id of bag is one of the
// direction's schedule ids.
func MatchesBySegmentRef(bag models.BaggageInformation, scheduleRefs []int) bool {
	refs := make(map[int]bool, len(scheduleRefs))
	for _, r := range scheduleRefs {
		refs[r] = true
	}
	for _, s := range bag.Segments {
		if refs[s.ID] {
			return true
		}
	}
	return false
}

// MatchesByPosition reports whether any segment id of bag falls in
// [offset, offset+count), the positions of the direction's segments in the
// itinerary.
func MatchesByPosition(bag models.BaggageInformation, offset, count int) bool {
	for _, s := range bag.Segments {
		if s.ID >= offset && s.ID < offset+count {
			return true
		}
	}
	return false
}

func baggageText(bags []models.BaggageInformation, dir models.Direction, offset int, idx *descriptor.Index) string {
	var lines []string

	for _, bag := range bags {
		if !MatchesBySegmentRef(bag, dir.SegmentRefs) && !MatchesByPosition(bag, offset, len(dir.Segments)) {
			continue
		}
		if line, ok := baggageLine(bag, idx); ok {
			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		return models.NotAvailable
	}
	return strings.Join(lines, "\n")
}

// baggageLine renders an allowance as "Checked: 23 kg (UP TO 23 KG)" and a
// charge as "Pre-paid (Charge): 35 USD (UP TO 50 POUNDS) UP TO 62 LINEAR INCHES".
// Entries whose descriptor does not resolve produce no line.
func baggageLine(bag models.BaggageInformation, idx *descriptor.Index) (string, bool) {
	label := ProvisionLabel(bag.ProvisionType)

	switch {
	case bag.Allowance != nil:
		allowance, ok := idx.BaggageAllowance(bag.Allowance.Ref)
		if !ok {
			return "", false
		}
		details := strconv.Itoa(allowance.PieceCount) + " PC"
		if allowance.Weight != 0 {
			details = strconv.Itoa(allowance.Weight) + " " + allowance.Unit
		}
		if allowance.Description1 != "" {
			details += " (" + allowance.Description1 + ")"
		}
		return label + ": " + details, true

	case bag.Charge != nil:
		charge, ok := idx.BaggageCharge(bag.Charge.Ref)
		if !ok {
			return "", false
		}
		details := ""
		if charge.EquivalentAmount != 0 {
			details = currency.FormatAmount(charge.EquivalentAmount, charge.EquivalentCurrency)
		}
		if charge.Description1 != "" {
			details += " (" + charge.Description1 + ")"
		}
		if charge.Description2 != "" {
			details += " " + charge.Description2
		}
		return label + " (Charge): " + strings.TrimSpace(details), true
	}

	return "", false
}
