package surcharge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/internal/domains/billing/surcharge"
)

func TestResolveBand(t *testing.T) {
	bands := []surcharge.Band{
		{FromMinute: 0, ToMinute: 180, Percent: 25},
		{FromMinute: 181, ToMinute: 720, Percent: 50},
	}

	tests := []struct {
		name   string
		offset int
		want   int
	}{
		{name: "inside first band", offset: 90, want: 25},
		{name: "boundary belongs to first band", offset: 180, want: 25},
		{name: "inside second band", offset: 400, want: 50},
		{name: "beyond all bands", offset: 721, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, surcharge.ResolveBand(bands, tt.offset))
		})
	}
}

func TestResolveBandFirstMatchWins(t *testing.T) {
	overlapping := []surcharge.Band{
		{FromMinute: 0, ToMinute: 300, Percent: 10},
		{FromMinute: 100, ToMinute: 300, Percent: 90},
	}

	assert.Equal(t, 10, surcharge.ResolveBand(overlapping, 150))
}

func TestForOffset(t *testing.T) {
	bands := []surcharge.Band{{FromMinute: 0, ToMinute: 360, Percent: 50}}

	tests := []struct {
		name       string
		base       int64
		offset     int
		want       int64
		wantLine   bool
	}{
		{name: "zero offset yields nothing", base: 200000, offset: 0, want: 0, wantLine: false},
		{name: "negative offset yields nothing", base: 200000, offset: -10, want: 0, wantLine: false},
		{name: "matching band applies percentage", base: 200000, offset: 120, want: 100000, wantLine: true},
		{name: "unmatched offset still explains itself", base: 200000, offset: 400, want: 0, wantLine: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, line := surcharge.ForOffset(tt.base, bands, tt.offset, "early check-in")

			assert.Equal(t, tt.want, amount)

			if tt.wantLine {
				assert.NotEmpty(t, line)
			} else {
				assert.Empty(t, line)
			}
		})
	}
}

func TestForOffsetRoundsHalfUp(t *testing.T) {
	bands := []surcharge.Band{{FromMinute: 0, ToMinute: 60, Percent: 33}}

	amount, _ := surcharge.ForOffset(101, bands, 30, "late check-out")

	assert.Equal(t, int64(33), amount)
}

func TestOccupantFee(t *testing.T) {
	occ := surcharge.Occupancy{ExtraAdults: 2, ExtraChildren: 1}

	amount, line := surcharge.OccupantFee(true, occ, 30000, 15000)
	assert.Equal(t, int64(75000), amount)
	assert.NotEmpty(t, line)

	amount, line = surcharge.OccupantFee(false, occ, 30000, 15000)
	assert.Zero(t, amount)
	assert.Empty(t, line)

	amount, _ = surcharge.OccupantFee(true, surcharge.Occupancy{}, 30000, 15000)
	assert.Zero(t, amount)
}

func TestCustom(t *testing.T) {
	amount, line, err := surcharge.Custom(50000, "broken lamp")
	require.NoError(t, err)
	assert.Equal(t, int64(50000), amount)
	assert.Contains(t, line, "broken lamp")

	amount, line, err = surcharge.Custom(0, "")
	require.NoError(t, err)
	assert.Zero(t, amount)
	assert.Empty(t, line)

	_, _, err = surcharge.Custom(-1, "whatever")
	assert.Error(t, err)

	_, _, err = surcharge.Custom(1000, "   ")
	assert.Error(t, err)
}
