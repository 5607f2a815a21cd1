package ticket

import (
	"errors"
	"sync"
	"time"

	"parking-facility/internal/domain/spot"
	"parking-facility/internal/domain/vehicle"
)

var ErrAlreadyCompleted = errors.New("ticket is already completed")

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Ticket records one occupancy episode. Identity, vehicle, assigned spot and
// entry instant are fixed at issuance; status, exit instant and fee mutate
// exactly once, at settlement. The ticket keeps only the spot's coordinates,
// never ownership of the spot itself.
type Ticket struct {
	id           string
	veh          vehicle.Vehicle
	spotID       string
	spotCategory spot.Category
	floorNumber  int
	entryAt      time.Time

	mu       sync.RWMutex
	status   Status
	exitAt   time.Time
	feeCents int64
}

func NewActive(id string, veh vehicle.Vehicle, assigned *spot.Spot, entryAt time.Time) *Ticket {
	return &Ticket{
		id:           id,
		veh:          veh,
		spotID:       assigned.ID(),
		spotCategory: assigned.Category(),
		floorNumber:  assigned.FloorNumber(),
		entryAt:      entryAt,
		status:       StatusActive,
	}
}

func (t *Ticket) ID() string                  { return t.id }
func (t *Ticket) Vehicle() vehicle.Vehicle    { return t.veh }
func (t *Ticket) SpotID() string              { return t.spotID }
func (t *Ticket) SpotCategory() spot.Category { return t.spotCategory }
func (t *Ticket) FloorNumber() int            { return t.floorNumber }
func (t *Ticket) EntryAt() time.Time          { return t.entryAt }

func (t *Ticket) Status() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}

func (t *Ticket) ExitAt() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.exitAt
}

func (t *Ticket) FeeCents() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.feeCents
}

// ElapsedHours is the whole number of hours parked as of now, never negative.
func (t *Ticket) ElapsedHours(now time.Time) int64 {
	h := int64(now.Sub(t.entryAt).Hours())
	if h < 0 {
		return 0
	}
	return h
}

// Complete transitions the ticket to COMPLETED with its exit instant and fee.
// A ticket completes at most once.
func (t *Ticket) Complete(exitAt time.Time, feeCents int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status != StatusActive {
		return ErrAlreadyCompleted
	}
	t.status = StatusCompleted
	t.exitAt = exitAt
	t.feeCents = feeCents
	return nil
}
