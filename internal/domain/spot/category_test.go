//go:build unit

package spot_test

import (
	"testing"

	"parking-facility/internal/domain/spot"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  spot.Category
		errIs error
	}{
		{name: "compact", value: "compact", want: spot.CategoryCompact},
		{name: "regular", value: "regular", want: spot.CategoryRegular},
		{name: "large", value: "large", want: spot.CategoryLarge},
		{name: "reserved accessible", value: "reserved_accessible", want: spot.CategoryAccessible},
		{name: "unknown rejected", value: "gigantic", errIs: spot.ErrInvalidCategory},
		{name: "empty rejected", value: "", errIs: spot.ErrInvalidCategory},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := spot.NewCategory(tc.value)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFallbackTargets(t *testing.T) {
	cases := []struct {
		name     string
		category spot.Category
		want     []spot.Category
	}{
		{
			name:     "compact upgrades through regular then large",
			category: spot.CategoryCompact,
			want:     []spot.Category{spot.CategoryRegular, spot.CategoryLarge},
		},
		{
			name:     "regular upgrades to large only",
			category: spot.CategoryRegular,
			want:     []spot.Category{spot.CategoryLarge},
		},
		{
			name:     "large has no upgrade",
			category: spot.CategoryLarge,
			want:     nil,
		},
		{
			name:     "reserved accessible joins no fallback relation",
			category: spot.CategoryAccessible,
			want:     nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.category.FallbackTargets()); diff != "" {
				t.Errorf("fallback targets mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("reserved accessible is never a fallback target", func(t *testing.T) {
		for _, c := range spot.Categories() {
			assert.NotContains(t, c.FallbackTargets(), spot.CategoryAccessible, "category %s", c)
		}
	})
}

func TestSpotID(t *testing.T) {
	assert.Equal(t, "F2-R017", spot.SpotID(2, spot.CategoryRegular, 17))
	assert.Equal(t, "F1-C001", spot.SpotID(1, spot.CategoryCompact, 1))
	assert.Equal(t, "F3-A006", spot.SpotID(3, spot.CategoryAccessible, 6))
}
