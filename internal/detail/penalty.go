package detail

import (
	"strings"

	"github.com/dharmasatrya/offerresolver/internal/models"
	"github.com/dharmasatrya/offerresolver/pkg/currency"
)

const (
	penaltyFree       = "Free"
	penaltyNotAllowed = "Not Allowed"
)

// PenaltyAmount classifies one penalty:
//
//	amount present                               -> "<amount> <currency>"
//	changeable or refundable, no amount          -> "Free"
//	Exchange with changeable explicitly false    -> "Not Allowed"
//	Refund with refundable explicitly false      -> "Not Allowed"
//	anything else                                -> "N/A"
//
// A zero amount counts as absent.
func PenaltyAmount(p models.Penalty) string {
	if p.Amount != nil && *p.Amount != 0 {
		return currency.FormatAmount(*p.Amount, p.Currency)
	}
	if isTrue(p.Changeable) || isTrue(p.Refundable) {
		return penaltyFree
	}
	if p.Type == models.PenaltyExchange && isFalse(p.Changeable) {
		return penaltyNotAllowed
	}
	if p.Type == models.PenaltyRefund && isFalse(p.Refundable) {
		return penaltyNotAllowed
	}
	return models.NotAvailable
}

// PenaltyLine renders "Exchange (Before): 75 USD". The applicability
// qualifier is left out when the penalty has none.
func PenaltyLine(p models.Penalty) string {
	label := p.Type
	if p.Applicability != "" {
		label += " (" + p.Applicability + ")"
	}
	return label + ": " + PenaltyAmount(p)
}

// applicablePenalties picks the passenger penalties a fare component links
// to. A component with no links at all gets every passenger penalty.
func applicablePenalties(fc models.FareComponentRef, info *models.PenaltiesInfo) []models.Penalty {
	if info == nil {
		return nil
	}

	linked := make(map[int]bool)
	if fc.ApplicablePenalties != nil {
		for _, link := range fc.ApplicablePenalties.Penalties {
			linked[link.ID] = true
		}
	}
	if len(linked) == 0 {
		return info.Penalties
	}

	var out []models.Penalty
	for _, p := range info.Penalties {
		if p.ID != 0 && linked[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

func penaltiesText(fc models.FareComponentRef, info *models.PenaltiesInfo) string {
	penalties := applicablePenalties(fc, info)
	if len(penalties) == 0 {
		return models.NoPenalties
	}

	lines := make([]string, len(penalties))
	for i, p := range penalties {
		lines[i] = PenaltyLine(p)
	}
	return strings.Join(lines, "\n")
}

func isTrue(b *bool) bool  { return b != nil && *b }
func isFalse(b *bool) bool { return b != nil && !*b }
