package request

import (
	"errors"
	"strings"

	"parking-facility/internal/domain/payment"
)

type EntryRequest struct {
	Plate       string `json:"plate" binding:"required"`
	VehicleKind string `json:"vehicle_kind" binding:"required"`
}

type PaymentRequest struct {
	Method      string  `json:"method" binding:"required"`
	AmountCents *int64  `json:"amount_cents,omitempty"`
	CardNumber  *string `json:"card_number,omitempty"`
	CVV         *string `json:"cvv,omitempty"`
	Expiry      *string `json:"expiry,omitempty"`
}

type ExitRequest struct {
	TicketID string         `json:"ticket_id" binding:"required"`
	Payment  PaymentRequest `json:"payment" binding:"required"`
}

var (
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrMissingCashAmount    = errors.New("cash payment requires amount_cents")
	ErrMissingCardDetails   = errors.New("card payment requires card_number, cvv and expiry")
)

// ToMethod maps the wire shape onto the closed settlement-method union.
// Unknown method names fail here, before the engine is touched.
func (r ExitRequest) ToMethod() (payment.Method, error) {
	switch strings.ToLower(strings.TrimSpace(r.Payment.Method)) {
	case string(payment.KindCash):
		if r.Payment.AmountCents == nil {
			return nil, ErrMissingCashAmount
		}
		return payment.Cash{TenderedCents: *r.Payment.AmountCents}, nil
	case string(payment.KindCard):
		if r.Payment.CardNumber == nil || r.Payment.CVV == nil || r.Payment.Expiry == nil {
			return nil, ErrMissingCardDetails
		}
		return payment.Card{
			Number: *r.Payment.CardNumber,
			CVV:    *r.Payment.CVV,
			Expiry: *r.Payment.Expiry,
		}, nil
	default:
		return nil, ErrUnknownPaymentMethod
	}
}
