package queries

import (
	"context"
	"time"

	"parking-facility/internal/domain/spot"
	"parking-facility/internal/domain/ticket"
	"parking-facility/internal/facility"
)

// TicketView is the read model handed to the interface layer. It is a value
// snapshot; mutating it never touches the live ticket.
type TicketView struct {
	ID               string
	Plate            string
	VehicleKind      string
	RequiredCategory spot.Category
	SpotID           string
	SpotCategory     spot.Category
	FloorNumber      int
	EntryAt          time.Time
	Status           string
}

func NewTicketView(t *ticket.Ticket) TicketView {
	return TicketView{
		ID:               t.ID(),
		Plate:            t.Vehicle().Plate(),
		VehicleKind:      t.Vehicle().Kind().String(),
		RequiredCategory: t.Vehicle().RequiredCategory(),
		SpotID:           t.SpotID(),
		SpotCategory:     t.SpotCategory(),
		FloorNumber:      t.FloorNumber(),
		EntryAt:          t.EntryAt(),
		Status:           string(t.Status()),
	}
}

type StatusView struct {
	Floors        int
	Availability  map[spot.Category]int
	ActiveTickets []TicketView
}

type ParkingQueries interface {
	AvailabilitySummary(ctx context.Context) map[spot.Category]int
	ActiveTickets(ctx context.Context) []TicketView
	Status(ctx context.Context) StatusView
}

type parkingQueriesImpl struct {
	facility *facility.Facility
}

func NewParkingQueries(f *facility.Facility) ParkingQueries {
	return &parkingQueriesImpl{facility: f}
}

func (q *parkingQueriesImpl) AvailabilitySummary(_ context.Context) map[spot.Category]int {
	return q.facility.AvailabilitySummary()
}

func (q *parkingQueriesImpl) ActiveTickets(_ context.Context) []TicketView {
	tickets := q.facility.ActiveTickets()
	views := make([]TicketView, len(tickets))
	for i, t := range tickets {
		views[i] = NewTicketView(t)
	}
	return views
}

func (q *parkingQueriesImpl) Status(ctx context.Context) StatusView {
	return StatusView{
		Floors:        q.facility.FloorCount(),
		Availability:  q.facility.AvailabilitySummary(),
		ActiveTickets: q.ActiveTickets(ctx),
	}
}
