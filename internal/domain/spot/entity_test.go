//go:build unit

package spot_test

import (
	"testing"
	"time"

	"parking-facility/internal/domain/spot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpotOccupancy(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("assign then release", func(t *testing.T) {
		s := spot.NewSpot("F1-R001", 1, spot.CategoryRegular)
		require.False(t, s.Occupied())

		require.True(t, s.Assign("AAA-111", at))
		assert.True(t, s.Occupied())
		assert.Equal(t, "AAA-111", s.OccupantPlate())
		assert.Equal(t, at, s.OccupiedAt())

		require.True(t, s.Release())
		assert.False(t, s.Occupied())
		assert.Empty(t, s.OccupantPlate())
		assert.True(t, s.OccupiedAt().IsZero())
	})

	t.Run("assign fails on occupied spot", func(t *testing.T) {
		s := spot.NewSpot("F1-R001", 1, spot.CategoryRegular)
		require.True(t, s.Assign("AAA-111", at))

		assert.False(t, s.Assign("BBB-222", at.Add(time.Minute)))
		assert.Equal(t, "AAA-111", s.OccupantPlate(), "losing assign must not disturb the occupant")
	})

	t.Run("release fails on free spot", func(t *testing.T) {
		s := spot.NewSpot("F1-R001", 1, spot.CategoryRegular)
		assert.False(t, s.Release())
	})
}
