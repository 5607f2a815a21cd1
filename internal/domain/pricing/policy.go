package pricing

import (
	"errors"
	"fmt"

	"parking-facility/internal/domain/spot"
)

var ErrMissingRate = errors.New("missing hourly rate for category")

// Policy maps (required category, elapsed whole hours) to a fee in cents.
// Implementations must be pure: same inputs, same fee, no side effects.
type Policy interface {
	PriceCents(category spot.Category, hoursElapsed int64) int64
}

// HourlyPolicy bills per started hour with a minimum of one billable hour and
// a multiplicative long-stay discount once the stay reaches the threshold.
type HourlyPolicy struct {
	rates              map[spot.Category]int64
	discountAfterHours int64
	discountPercent    int64
}

func NewHourlyPolicy(rates map[spot.Category]int64, discountAfterHours, discountPercent int64) (*HourlyPolicy, error) {
	for _, c := range spot.Categories() {
		if _, ok := rates[c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingRate, c)
		}
	}
	if discountPercent < 0 || discountPercent > 100 {
		return nil, fmt.Errorf("discount percent must be within [0,100], got %d", discountPercent)
	}
	copied := make(map[spot.Category]int64, len(rates))
	for c, r := range rates {
		copied[c] = r
	}
	return &HourlyPolicy{
		rates:              copied,
		discountAfterHours: discountAfterHours,
		discountPercent:    discountPercent,
	}, nil
}

func (p *HourlyPolicy) PriceCents(category spot.Category, hoursElapsed int64) int64 {
	billable := hoursElapsed
	if billable < 1 {
		billable = 1 // minimum charge
	}
	fee := p.rates[category] * billable
	if p.discountAfterHours > 0 && billable >= p.discountAfterHours {
		fee = fee * (100 - p.discountPercent) / 100
	}
	return fee
}

func (p *HourlyPolicy) RateCents(category spot.Category) int64 {
	return p.rates[category]
}
