package facility

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"parking-facility/internal/domain/payment"
	"parking-facility/internal/domain/pricing"
	"parking-facility/internal/domain/spot"
	"parking-facility/internal/domain/ticket"
	"parking-facility/internal/domain/vehicle"
	"parking-facility/internal/lot"
	"parking-facility/internal/pkg/clock"
	"parking-facility/internal/pkg/errs"

	cr "github.com/cockroachdb/errors"
)

// Facility is the single entry point of the allocation engine. It owns the
// ordered floors and the live-ticket table and is constructed exactly once by
// the composition root, then passed explicitly to every caller.
type Facility struct {
	floors     []*lot.Floor // ascending floor number
	policy     pricing.Policy
	validators *payment.ValidatorRegistry
	clk        clock.Clock
	metrics    *Metrics

	seq atomic.Uint64

	mu      sync.RWMutex
	tickets map[string]*liveTicket
}

// liveTicket pairs an active ticket with the mutex that serializes its
// settlement. The lock lives here, not on the ticket, because only the
// facility runs multi-step settlements.
type liveTicket struct {
	mu sync.Mutex
	t  *ticket.Ticket
}

func New(floors []*lot.Floor, policy pricing.Policy, validators *payment.ValidatorRegistry, clk clock.Clock, metrics *Metrics) (*Facility, error) {
	if len(floors) == 0 {
		return nil, errs.New("facility needs at least one floor")
	}
	ordered := make([]*lot.Floor, len(floors))
	copy(ordered, floors)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Number() < ordered[j].Number() })
	for i := 1; i < len(ordered); i++ {
		if ordered[i].Number() == ordered[i-1].Number() {
			return nil, errs.Newf("duplicate floor number %d", ordered[i].Number())
		}
	}
	return &Facility{
		floors:     ordered,
		policy:     policy,
		validators: validators,
		clk:        clk,
		metrics:    metrics,
		tickets:    make(map[string]*liveTicket),
	}, nil
}

// Issue searches floors in ascending order, assigns the first eligible spot
// and registers an ACTIVE ticket for it. When every floor refuses it fails
// with ErrCapacityExhausted and no state has changed.
func (f *Facility) Issue(v vehicle.Vehicle) (*ticket.Ticket, error) {
	now := f.clk.Now()

	var assigned *spot.Spot
	for _, fl := range f.floors {
		if s, ok := fl.FindAndAssign(v, now); ok {
			assigned = s
			break
		}
	}
	if assigned == nil {
		f.metrics.issueRejected()
		return nil, errs.Mark(fmt.Errorf("no %s spot or fallback for %s", v.RequiredCategory(), v.Description()), errs.ErrCapacityExhausted)
	}

	t := ticket.NewActive(f.nextTicketID(now), v, assigned, now)

	f.mu.Lock()
	if _, exists := f.tickets[t.ID()]; exists {
		f.mu.Unlock()
		// The counter makes this unreachable; if it ever fires, undo the
		// assignment so no spot leaks.
		_ = f.releaseSpot(t)
		return nil, errs.Newf("duplicate ticket id %s", t.ID())
	}
	f.tickets[t.ID()] = &liveTicket{t: t}
	f.mu.Unlock()

	f.metrics.issued(assigned.Category().String())
	return t, nil
}

// Settle validates the tender against the computed fee, then commits in a
// fixed order: release the spot, complete the ticket, remove it from the
// live table, build the receipt. Nothing mutates before validation passes,
// and removal from the table happens strictly last so concurrent readers
// never observe a completed-looking ticket that still holds a spot.
func (f *Facility) Settle(ticketID string, m payment.Method) (ticket.Receipt, error) {
	f.mu.RLock()
	lt := f.tickets[ticketID]
	f.mu.RUnlock()
	if lt == nil {
		f.metrics.settleFailed("not_found")
		return ticket.Receipt{}, errs.Mark(fmt.Errorf("no active ticket %s", ticketID), errs.ErrTicketNotFound)
	}

	lt.mu.Lock()
	defer lt.mu.Unlock()

	// A concurrent settle may have completed the ticket between the table
	// lookup and taking its lock; completed tickets count as gone.
	if lt.t.Status() != ticket.StatusActive {
		f.metrics.settleFailed("not_found")
		return ticket.Receipt{}, errs.Mark(fmt.Errorf("ticket %s is already settled", ticketID), errs.ErrTicketNotFound)
	}

	now := f.clk.Now()
	fee := f.policy.PriceCents(lt.t.Vehicle().RequiredCategory(), lt.t.ElapsedHours(now))

	if err := f.validators.Validate(m, fee); err != nil {
		switch {
		case cr.Is(err, payment.ErrUnsupportedMethod):
			f.metrics.settleFailed("unsupported")
			return ticket.Receipt{}, errs.Mark(err, errs.ErrUnsupportedMethod)
		default:
			f.metrics.settleFailed("declined")
			return ticket.Receipt{}, errs.Mark(err, errs.ErrPaymentDeclined)
		}
	}

	if err := f.releaseSpot(lt.t); err != nil {
		f.metrics.settleFailed("error")
		return ticket.Receipt{}, errs.Wrap(err, "settlement release")
	}
	if err := lt.t.Complete(now, fee); err != nil {
		return ticket.Receipt{}, errs.Wrap(err, "settlement complete")
	}

	f.mu.Lock()
	delete(f.tickets, ticketID)
	f.mu.Unlock()

	f.metrics.settled(lt.t.SpotCategory().String(), fee)
	return ticket.NewReceipt(lt.t, ticket.MessagePaymentSuccessful), nil
}

// AvailabilitySummary sums free spots per category across floors. Advisory
// snapshot only; it is not linearizable across categories.
func (f *Facility) AvailabilitySummary() map[spot.Category]int {
	summary := make(map[spot.Category]int, len(spot.Categories()))
	for _, c := range spot.Categories() {
		total := 0
		for _, fl := range f.floors {
			total += fl.AvailableCount(c)
		}
		summary[c] = total
	}
	return summary
}

// TotalSummary reports the configured spot counts per category.
func (f *Facility) TotalSummary() map[spot.Category]int {
	summary := make(map[spot.Category]int, len(spot.Categories()))
	for _, c := range spot.Categories() {
		total := 0
		for _, fl := range f.floors {
			total += fl.TotalCount(c)
		}
		summary[c] = total
	}
	return summary
}

// ActiveTickets returns a snapshot copy of the live-ticket table sorted by
// ticket id, never a live view.
func (f *Facility) ActiveTickets() []*ticket.Ticket {
	f.mu.RLock()
	snapshot := make([]*ticket.Ticket, 0, len(f.tickets))
	for _, lt := range f.tickets {
		snapshot = append(snapshot, lt.t)
	}
	f.mu.RUnlock()
	sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].ID() < snapshot[j].ID() })
	return snapshot
}

func (f *Facility) FloorCount() int {
	return len(f.floors)
}

func (f *Facility) releaseSpot(t *ticket.Ticket) error {
	for _, fl := range f.floors {
		if fl.Number() == t.FloorNumber() {
			return fl.Release(t.SpotCategory(), t.SpotID())
		}
	}
	return errs.Mark(errs.Newf("ticket %s references unknown floor %d", t.ID(), t.FloorNumber()), errs.ErrUnknownSpot)
}

// nextTicketID derives uniqueness from an atomically incremented counter;
// the issue date is a readability salt only.
func (f *Facility) nextTicketID(now time.Time) string {
	return fmt.Sprintf("T%s-%06d", now.Format("20060102"), f.seq.Add(1))
}
