package ticket

import (
	"time"

	"github.com/google/uuid"
)

const MessagePaymentSuccessful = "payment successful"

// Receipt is an immutable snapshot produced once per completed ticket.
type Receipt struct {
	Number      uuid.UUID
	TicketID    string
	Vehicle     string
	SpotID      string
	FloorNumber int
	EntryAt     time.Time
	ExitAt      time.Time
	Hours       int64
	FeeCents    int64
	Message     string
}

// NewReceipt snapshots a completed ticket. Hours is recomputed from the
// recorded entry/exit instants so the receipt is self-consistent even if the
// billable minimum rounded the fee up.
func NewReceipt(t *Ticket, message string) Receipt {
	exitAt := t.ExitAt()
	return Receipt{
		Number:      uuid.New(),
		TicketID:    t.ID(),
		Vehicle:     t.Vehicle().Description(),
		SpotID:      t.SpotID(),
		FloorNumber: t.FloorNumber(),
		EntryAt:     t.EntryAt(),
		ExitAt:      exitAt,
		Hours:       t.ElapsedHours(exitAt),
		FeeCents:    t.FeeCents(),
		Message:     message,
	}
}
