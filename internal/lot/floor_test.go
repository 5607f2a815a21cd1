//go:build unit

package lot_test

import (
	"testing"
	"time"

	"parking-facility/internal/domain/spot"
	"parking-facility/internal/domain/vehicle"
	"parking-facility/internal/lot"
	"parking-facility/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFloor(t *testing.T, counts map[spot.Category]int) *lot.Floor {
	t.Helper()
	f, err := lot.NewFloor(1, counts)
	require.NoError(t, err)
	return f
}

func mustVehicle(t *testing.T, mutate func(*builder.VehicleBuilder)) vehicle.Vehicle {
	t.Helper()
	b := builder.NewVehicleBuilder()
	if mutate != nil {
		mutate(b)
	}
	v, err := b.BuildDomain()
	require.NoError(t, err)
	return v
}

func TestFloorFindAndAssign(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("exact category preferred", func(t *testing.T) {
		f := newFloor(t, map[spot.Category]int{
			spot.CategoryCompact: 1,
			spot.CategoryRegular: 1,
			spot.CategoryLarge:   1,
		})
		v := mustVehicle(t, func(b *builder.VehicleBuilder) { b.WithKind(vehicle.KindMotorcycle) })

		s, ok := f.FindAndAssign(v, at)
		require.True(t, ok)
		assert.Equal(t, spot.CategoryCompact, s.Category())
	})

	t.Run("falls back in ascending upgrade order", func(t *testing.T) {
		f := newFloor(t, map[spot.Category]int{
			spot.CategoryRegular: 1,
			spot.CategoryLarge:   1,
		})
		moto := mustVehicle(t, func(b *builder.VehicleBuilder) { b.WithKind(vehicle.KindMotorcycle) })

		s, ok := f.FindAndAssign(moto, at)
		require.True(t, ok)
		assert.Equal(t, spot.CategoryRegular, s.Category(), "regular beats large for a compact client")

		second := mustVehicle(t, func(b *builder.VehicleBuilder) {
			b.WithPlate("MOTO-2").WithKind(vehicle.KindMotorcycle)
		})
		s2, ok := f.FindAndAssign(second, at)
		require.True(t, ok)
		assert.Equal(t, spot.CategoryLarge, s2.Category())
	})

	t.Run("no downgrade for large vehicles", func(t *testing.T) {
		f := newFloor(t, map[spot.Category]int{
			spot.CategoryCompact: 5,
			spot.CategoryRegular: 5,
		})
		truck := mustVehicle(t, func(b *builder.VehicleBuilder) { b.WithKind(vehicle.KindTruck) })

		_, ok := f.FindAndAssign(truck, at)
		assert.False(t, ok)
	})

	t.Run("reserved accessible never used as fallback", func(t *testing.T) {
		f := newFloor(t, map[spot.Category]int{
			spot.CategoryAccessible: 3,
		})
		car := mustVehicle(t, nil)

		_, ok := f.FindAndAssign(car, at)
		assert.False(t, ok, "a car must not take an accessible spot")
		assert.Equal(t, 3, f.AvailableCount(spot.CategoryAccessible))
	})

	t.Run("reserved accessible reachable by exact match", func(t *testing.T) {
		f := newFloor(t, map[spot.Category]int{
			spot.CategoryAccessible: 1,
		})
		permit := mustVehicle(t, func(b *builder.VehicleBuilder) {
			b.WithRequiredCategory(spot.CategoryAccessible)
		})

		s, ok := f.FindAndAssign(permit, at)
		require.True(t, ok)
		assert.Equal(t, spot.CategoryAccessible, s.Category())

		// An accessible client has no fallback once the category is full.
		second := mustVehicle(t, func(b *builder.VehicleBuilder) {
			b.WithPlate("PERMIT-2").WithRequiredCategory(spot.CategoryAccessible)
		})
		_, ok = f.FindAndAssign(second, at)
		assert.False(t, ok)
	})
}

func TestFloorRelease(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	f := newFloor(t, map[spot.Category]int{spot.CategoryRegular: 1})
	car := mustVehicle(t, nil)

	s, ok := f.FindAndAssign(car, at)
	require.True(t, ok)

	require.NoError(t, f.Release(s.Category(), s.ID()))
	assert.Equal(t, 1, f.AvailableCount(spot.CategoryRegular))
}

func TestFloorCounts(t *testing.T) {
	f := newFloor(t, map[spot.Category]int{
		spot.CategoryCompact: 2,
		spot.CategoryRegular: 3,
	})

	assert.Equal(t, 2, f.TotalCount(spot.CategoryCompact))
	assert.Equal(t, 3, f.TotalCount(spot.CategoryRegular))
	assert.Equal(t, 0, f.TotalCount(spot.CategoryLarge), "absent categories report zero")
	assert.Equal(t, 0, f.AvailableCount(spot.CategoryLarge))
}
