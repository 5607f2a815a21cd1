package bootstrap

import (
	"parking-facility/internal/domain/payment"
	"parking-facility/internal/domain/pricing"
	"parking-facility/internal/domain/spot"
	"parking-facility/internal/facility"
	"parking-facility/internal/lot"
	"parking-facility/internal/pkg/clock"
	"parking-facility/internal/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

// FacilityModule builds the one Facility instance the whole process shares.
// It is constructed here and passed explicitly; nothing reaches it through a
// package-level global.
var FacilityModule = fx.Module("facility",
	fx.Provide(
		NewPrometheusRegistry,
		NewPricingPolicy,
		payment.NewValidatorRegistry,
		NewFacility,
	),
)

func NewPrometheusRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewPricingPolicy(cfg config.Config) (pricing.Policy, error) {
	return pricing.NewHourlyPolicy(map[spot.Category]int64{
		spot.CategoryCompact:    cfg.Pricing.CompactRateCents,
		spot.CategoryRegular:    cfg.Pricing.RegularRateCents,
		spot.CategoryLarge:      cfg.Pricing.LargeRateCents,
		spot.CategoryAccessible: cfg.Pricing.AccessibleRateCents,
	}, cfg.Pricing.DiscountAfterHours, cfg.Pricing.DiscountPercent)
}

func NewFacility(
	cfg config.Config,
	policy pricing.Policy,
	validators *payment.ValidatorRegistry,
	clk clock.Clock,
	promRegistry *prometheus.Registry,
) (*facility.Facility, error) {
	counts := map[spot.Category]int{
		spot.CategoryCompact:    cfg.Facility.CompactPerFloor,
		spot.CategoryRegular:    cfg.Facility.RegularPerFloor,
		spot.CategoryLarge:      cfg.Facility.LargePerFloor,
		spot.CategoryAccessible: cfg.Facility.AccessiblePerFloor,
	}

	floors := make([]*lot.Floor, 0, cfg.Facility.Floors)
	for number := 1; number <= cfg.Facility.Floors; number++ {
		floor, err := lot.NewFloor(number, counts)
		if err != nil {
			return nil, err
		}
		floors = append(floors, floor)
	}

	return facility.New(floors, policy, validators, clk, facility.NewMetrics(promRegistry))
}
