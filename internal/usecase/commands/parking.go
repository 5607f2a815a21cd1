package commands

import (
	"context"
	"errors"

	"parking-facility/internal/domain/payment"
	"parking-facility/internal/domain/ticket"
	"parking-facility/internal/domain/vehicle"
	"parking-facility/internal/facility"
	"parking-facility/internal/pkg/errs"
	"parking-facility/internal/usecase/queries"
)

var (
	ErrCapacityExhausted = errs.ErrCapacityExhausted
	ErrTicketNotFound    = errs.ErrTicketNotFound
	ErrPaymentDeclined   = errs.ErrPaymentDeclined
	ErrUnsupportedMethod = errs.ErrUnsupportedMethod
	ErrInvalidVehicle    = errs.ErrInvalidVehicle
)

type IssueTicketParams struct {
	Plate       string
	VehicleKind string
}

type ParkingCommands interface {
	IssueTicket(ctx context.Context, params IssueTicketParams) (*queries.TicketView, error)
	SettleTicket(ctx context.Context, ticketID string, method payment.Method) (ticket.Receipt, error)
}

type parkingCommandsImpl struct {
	facility *facility.Facility
}

func NewParkingCommands(f *facility.Facility) ParkingCommands {
	return &parkingCommandsImpl{facility: f}
}

func (c *parkingCommandsImpl) IssueTicket(_ context.Context, params IssueTicketParams) (*queries.TicketView, error) {
	kind, err := vehicle.NewKind(params.VehicleKind)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidVehicle)
	}
	v, err := vehicle.NewVehicle(params.Plate, kind)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidVehicle)
	}

	t, err := c.facility.Issue(v)
	if err != nil {
		return nil, err
	}
	view := queries.NewTicketView(t)
	return &view, nil
}

func (c *parkingCommandsImpl) SettleTicket(_ context.Context, ticketID string, method payment.Method) (ticket.Receipt, error) {
	if method == nil {
		return ticket.Receipt{}, errors.New("settlement method is required")
	}
	return c.facility.Settle(ticketID, method)
}
