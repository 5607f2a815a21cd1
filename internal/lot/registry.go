package lot

import (
	"fmt"
	"sync"
	"time"

	"parking-facility/internal/domain/spot"
	"parking-facility/internal/pkg/errs"
)

// SpotRegistry owns every spot of one category on one floor. All occupancy
// transitions for those spots go through its lock, which makes the registry
// the sole arbiter of assign/release ordering per spot: writers (TryAssign,
// Release) take the write lock, count snapshots take the read lock.
type SpotRegistry struct {
	category spot.Category

	mu    sync.RWMutex
	spots []*spot.Spot // ascending id order, fixed at construction
}

func NewSpotRegistry(category spot.Category, spots []*spot.Spot) (*SpotRegistry, error) {
	for _, s := range spots {
		if s.Category() != category {
			return nil, errs.Newf("spot %s has category %s, registry expects %s", s.ID(), s.Category(), category)
		}
	}
	return &SpotRegistry{category: category, spots: spots}, nil
}

func (r *SpotRegistry) Category() spot.Category { return r.category }

// TryAssign scans spots in ascending id order and atomically occupies the
// first free one for plate. Returns nil, false when all are occupied. Two
// concurrent callers can never both succeed on the same spot.
func (r *SpotRegistry) TryAssign(plate string, at time.Time) (*spot.Spot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.spots {
		if s.Assign(plate, at) {
			return s, true
		}
	}
	return nil, false
}

// Release frees the spot with the given id. Releasing an unknown or
// already-free spot is a caller error, reported as an invariant violation
// rather than swallowed.
func (r *SpotRegistry) Release(spotID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.spots {
		if s.ID() != spotID {
			continue
		}
		if !s.Release() {
			return errs.Mark(fmt.Errorf("spot %s is already free", spotID), errs.ErrInvalidRelease)
		}
		return nil
	}
	return errs.Mark(fmt.Errorf("spot %s is not in the %s registry", spotID, r.category), errs.ErrUnknownSpot)
}

// AvailableCount is a consistent snapshot at the instant of the call; it may
// be stale immediately after return and is never reused for a check-then-act
// decision without revalidation under the write lock.
func (r *SpotRegistry) AvailableCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	free := 0
	for _, s := range r.spots {
		if !s.Occupied() {
			free++
		}
	}
	return free
}

func (r *SpotRegistry) TotalCount() int {
	return len(r.spots)
}
