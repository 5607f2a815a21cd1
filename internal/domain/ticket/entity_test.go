//go:build unit

package ticket_test

import (
	"testing"
	"time"

	"parking-facility/internal/domain/spot"
	"parking-facility/internal/domain/ticket"
	"parking-facility/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActiveTicket(t *testing.T, entryAt time.Time) *ticket.Ticket {
	t.Helper()
	v, err := builder.NewVehicleBuilder().BuildDomain()
	require.NoError(t, err)
	s := spot.NewSpot("F1-R001", 1, spot.CategoryRegular)
	require.True(t, s.Assign(v.Plate(), entryAt))
	return ticket.NewActive("T20260314-000001", v, s, entryAt)
}

func TestTicketLifecycle(t *testing.T) {
	entryAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("issued ticket is active", func(t *testing.T) {
		tk := newActiveTicket(t, entryAt)

		assert.Equal(t, ticket.StatusActive, tk.Status())
		assert.Equal(t, "F1-R001", tk.SpotID())
		assert.Equal(t, spot.CategoryRegular, tk.SpotCategory())
		assert.Equal(t, 1, tk.FloorNumber())
		assert.Equal(t, entryAt, tk.EntryAt())
		assert.Zero(t, tk.FeeCents())
	})

	t.Run("complete records exit and fee exactly once", func(t *testing.T) {
		tk := newActiveTicket(t, entryAt)
		exitAt := entryAt.Add(3 * time.Hour)

		require.NoError(t, tk.Complete(exitAt, 1500))
		assert.Equal(t, ticket.StatusCompleted, tk.Status())
		assert.Equal(t, exitAt, tk.ExitAt())
		assert.Equal(t, int64(1500), tk.FeeCents())

		err := tk.Complete(exitAt.Add(time.Hour), 9999)
		assert.ErrorIs(t, err, ticket.ErrAlreadyCompleted)
		assert.Equal(t, int64(1500), tk.FeeCents(), "second completion must not overwrite")
	})

	t.Run("elapsed hours truncate to whole hours", func(t *testing.T) {
		tk := newActiveTicket(t, entryAt)

		assert.Equal(t, int64(0), tk.ElapsedHours(entryAt.Add(59*time.Minute)))
		assert.Equal(t, int64(1), tk.ElapsedHours(entryAt.Add(90*time.Minute)))
		assert.Equal(t, int64(30), tk.ElapsedHours(entryAt.Add(30*time.Hour+5*time.Minute)))
		assert.Equal(t, int64(0), tk.ElapsedHours(entryAt.Add(-time.Hour)), "clock skew never goes negative")
	})
}

func TestNewReceipt(t *testing.T) {
	entryAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	tk := newActiveTicket(t, entryAt)
	exitAt := entryAt.Add(2*time.Hour + 30*time.Minute)
	require.NoError(t, tk.Complete(exitAt, 1000))

	r := ticket.NewReceipt(tk, ticket.MessagePaymentSuccessful)

	assert.NotEmpty(t, r.Number)
	assert.Equal(t, tk.ID(), r.TicketID)
	assert.Equal(t, "CAR (ABC-1234)", r.Vehicle)
	assert.Equal(t, "F1-R001", r.SpotID)
	assert.Equal(t, 1, r.FloorNumber)
	assert.Equal(t, entryAt, r.EntryAt)
	assert.Equal(t, exitAt, r.ExitAt)
	assert.Equal(t, int64(2), r.Hours)
	assert.Equal(t, int64(1000), r.FeeCents)
	assert.Equal(t, "payment successful", r.Message)
}
