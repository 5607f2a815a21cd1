package lot

import (
	"time"

	"parking-facility/internal/domain/spot"
	"parking-facility/internal/domain/vehicle"
	"parking-facility/internal/pkg/errs"
)

// Floor owns one SpotRegistry per category. The multi-category search is one
// logical operation but holds no cross-category lock; each registry guards
// only itself.
type Floor struct {
	number     int
	registries map[spot.Category]*SpotRegistry
}

// NewFloor builds a floor with counts[c] spots per category, ids assigned in
// ascending order ("F2-C001", "F2-C002", ...). Categories absent from counts
// get an empty registry so lookups stay total.
func NewFloor(number int, counts map[spot.Category]int) (*Floor, error) {
	registries := make(map[spot.Category]*SpotRegistry, len(spot.Categories()))
	for _, c := range spot.Categories() {
		spots := make([]*spot.Spot, 0, counts[c])
		for i := 1; i <= counts[c]; i++ {
			spots = append(spots, spot.NewSpot(spot.SpotID(number, c, i), number, c))
		}
		reg, err := NewSpotRegistry(c, spots)
		if err != nil {
			return nil, err
		}
		registries[c] = reg
	}
	return &Floor{number: number, registries: registries}, nil
}

func (f *Floor) Number() int { return f.number }

// FindAndAssign tries the vehicle's exact category first, then each
// strictly-larger category in ascending upgrade order. A vehicle requiring
// the reserved accessible category gets only the exact match; that category
// is never offered as a fallback to anyone else.
func (f *Floor) FindAndAssign(v vehicle.Vehicle, at time.Time) (*spot.Spot, bool) {
	required := v.RequiredCategory()
	if s, ok := f.registries[required].TryAssign(v.Plate(), at); ok {
		return s, true
	}
	for _, c := range required.FallbackTargets() {
		if s, ok := f.registries[c].TryAssign(v.Plate(), at); ok {
			return s, true
		}
	}
	return nil, false
}

func (f *Floor) Release(category spot.Category, spotID string) error {
	reg, ok := f.registries[category]
	if !ok {
		return errs.Mark(errs.Newf("floor %d has no %s registry", f.number, category), errs.ErrUnknownSpot)
	}
	return reg.Release(spotID)
}

func (f *Floor) AvailableCount(category spot.Category) int {
	reg, ok := f.registries[category]
	if !ok {
		return 0
	}
	return reg.AvailableCount()
}

func (f *Floor) TotalCount(category spot.Category) int {
	reg, ok := f.registries[category]
	if !ok {
		return 0
	}
	return reg.TotalCount()
}
