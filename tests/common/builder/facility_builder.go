//go:build unit

package builder

import (
	"time"

	"parking-facility/internal/domain/payment"
	"parking-facility/internal/domain/pricing"
	"parking-facility/internal/domain/spot"
	"parking-facility/internal/facility"
	"parking-facility/internal/lot"
	"parking-facility/internal/pkg/clock"

	"github.com/prometheus/client_golang/prometheus"
)

// FacilityBuilder assembles a facility with an isolated metrics registry and
// a mock clock, so tests control both layout and time.
type FacilityBuilder struct {
	FloorCounts        []map[spot.Category]int
	Rates              map[spot.Category]int64
	DiscountAfterHours int64
	DiscountPercent    int64
	Clock              *clock.MockClock
	Validators         *payment.ValidatorRegistry
}

func NewFacilityBuilder() *FacilityBuilder {
	return &FacilityBuilder{
		FloorCounts: []map[spot.Category]int{
			{
				spot.CategoryCompact:    3,
				spot.CategoryRegular:    2,
				spot.CategoryLarge:      1,
				spot.CategoryAccessible: 1,
			},
		},
		Rates: map[spot.Category]int64{
			spot.CategoryCompact:    200,
			spot.CategoryRegular:    500,
			spot.CategoryLarge:      1000,
			spot.CategoryAccessible: 500,
		},
		DiscountAfterHours: 24,
		DiscountPercent:    20,
		Clock:              clock.NewMockClock(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)),
		Validators:         payment.NewValidatorRegistry(),
	}
}

func (b *FacilityBuilder) With(mutate func(*FacilityBuilder)) *FacilityBuilder {
	mutate(b)
	return b
}

// WithFloorCounts replaces the layout; floor i gets number i+1.
func (b *FacilityBuilder) WithFloorCounts(counts ...map[spot.Category]int) *FacilityBuilder {
	b.FloorCounts = counts
	return b
}

func (b *FacilityBuilder) WithRate(category spot.Category, cents int64) *FacilityBuilder {
	b.Rates[category] = cents
	return b
}

func (b *FacilityBuilder) Build() (*facility.Facility, error) {
	policy, err := pricing.NewHourlyPolicy(b.Rates, b.DiscountAfterHours, b.DiscountPercent)
	if err != nil {
		return nil, err
	}

	floors := make([]*lot.Floor, 0, len(b.FloorCounts))
	for i, counts := range b.FloorCounts {
		floor, err := lot.NewFloor(i+1, counts)
		if err != nil {
			return nil, err
		}
		floors = append(floors, floor)
	}

	metrics := facility.NewMetrics(prometheus.NewRegistry())
	return facility.New(floors, policy, b.Validators, b.Clock, metrics)
}
