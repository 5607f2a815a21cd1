package spot

import (
	"fmt"
	"time"
)

// Spot is one physical parking spot. Its occupancy state is mutated only by
// the registry that owns it, under that registry's lock; the methods here do
// no locking of their own.
type Spot struct {
	id          string
	floorNumber int
	category    Category

	occupied   bool
	plate      string
	occupiedAt time.Time
}

func NewSpot(id string, floorNumber int, category Category) *Spot {
	return &Spot{
		id:          id,
		floorNumber: floorNumber,
		category:    category,
	}
}

// SpotID builds the canonical id for the n-th spot of a category on a floor,
// e.g. "F2-R017".
func SpotID(floorNumber int, category Category, n int) string {
	return fmt.Sprintf("F%d-%s%03d", floorNumber, category.Letter(), n)
}

func (s *Spot) ID() string            { return s.id }
func (s *Spot) FloorNumber() int      { return s.floorNumber }
func (s *Spot) Category() Category    { return s.category }
func (s *Spot) Occupied() bool        { return s.occupied }
func (s *Spot) OccupantPlate() string { return s.plate }
func (s *Spot) OccupiedAt() time.Time { return s.occupiedAt }

// Assign marks the spot occupied by plate. Returns false if already occupied,
// leaving the spot untouched.
func (s *Spot) Assign(plate string, at time.Time) bool {
	if s.occupied {
		return false
	}
	s.occupied = true
	s.plate = plate
	s.occupiedAt = at
	return true
}

// Release clears the occupant. Returns false if the spot is already free.
func (s *Spot) Release() bool {
	if !s.occupied {
		return false
	}
	s.occupied = false
	s.plate = ""
	s.occupiedAt = time.Time{}
	return true
}
