package response

import (
	"time"

	"parking-facility/internal/domain/spot"
	"parking-facility/internal/domain/ticket"
	"parking-facility/internal/usecase/queries"

	"github.com/google/uuid"
)

type TicketResponse struct {
	ID               string    `json:"id"`
	Plate            string    `json:"plate"`
	VehicleKind      string    `json:"vehicleKind"`
	RequiredCategory string    `json:"requiredCategory"`
	SpotID           string    `json:"spotId"`
	SpotCategory     string    `json:"spotCategory"`
	FloorNumber      int       `json:"floorNumber"`
	EntryAt          time.Time `json:"entryAt"`
	Status           string    `json:"status"`
}

type ReceiptResponse struct {
	Number      uuid.UUID `json:"number"`
	TicketID    string    `json:"ticketId"`
	Vehicle     string    `json:"vehicle"`
	SpotID      string    `json:"spotId"`
	FloorNumber int       `json:"floorNumber"`
	EntryAt     time.Time `json:"entryAt"`
	ExitAt      time.Time `json:"exitAt"`
	Hours       int64     `json:"hours"`
	FeeCents    int64     `json:"feeCents"`
	Message     string    `json:"message"`
}

type AvailabilityResponse struct {
	Availability map[string]int `json:"availability"`
}

type StatusResponse struct {
	Floors        int              `json:"floors"`
	Availability  map[string]int   `json:"availability"`
	ActiveTickets []TicketResponse `json:"activeTickets"`
}

func FromTicketView(v *queries.TicketView) *TicketResponse {
	return &TicketResponse{
		ID:               v.ID,
		Plate:            v.Plate,
		VehicleKind:      v.VehicleKind,
		RequiredCategory: v.RequiredCategory.String(),
		SpotID:           v.SpotID,
		SpotCategory:     v.SpotCategory.String(),
		FloorNumber:      v.FloorNumber,
		EntryAt:          v.EntryAt,
		Status:           v.Status,
	}
}

func FromReceipt(r ticket.Receipt) *ReceiptResponse {
	return &ReceiptResponse{
		Number:      r.Number,
		TicketID:    r.TicketID,
		Vehicle:     r.Vehicle,
		SpotID:      r.SpotID,
		FloorNumber: r.FloorNumber,
		EntryAt:     r.EntryAt,
		ExitAt:      r.ExitAt,
		Hours:       r.Hours,
		FeeCents:    r.FeeCents,
		Message:     r.Message,
	}
}

func FromAvailability(summary map[spot.Category]int) *AvailabilityResponse {
	return &AvailabilityResponse{Availability: categoryCounts(summary)}
}

func FromStatusView(v queries.StatusView) *StatusResponse {
	tickets := make([]TicketResponse, len(v.ActiveTickets))
	for i := range v.ActiveTickets {
		tickets[i] = *FromTicketView(&v.ActiveTickets[i])
	}
	return &StatusResponse{
		Floors:        v.Floors,
		Availability:  categoryCounts(v.Availability),
		ActiveTickets: tickets,
	}
}

func categoryCounts(summary map[spot.Category]int) map[string]int {
	counts := make(map[string]int, len(summary))
	for c, n := range summary {
		counts[c.String()] = n
	}
	return counts
}
