package tariff_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/internal/domains/billing/tariff"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2025, time.March, day, hour, minute, 0, 0, time.UTC)
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    tariff.Clock
		wantErr bool
	}{
		{name: "midnight", raw: "00:00", want: 0},
		{name: "afternoon", raw: "14:30", want: 14*60 + 30},
		{name: "missing minutes", raw: "14", wantErr: true},
		{name: "out of range", raw: "25:00", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tariff.ParseClock(tt.raw)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMode(t *testing.T) {
	for _, valid := range []string{"hourly", "daily", "overnight"} {
		_, err := tariff.ParseMode(valid)
		assert.NoError(t, err)
	}

	_, err := tariff.ParseMode("weekly")
	assert.Error(t, err)
}

func TestResolveHourly(t *testing.T) {
	rates := tariff.Rates{HourlyFirstBlock: 50000, HourlyNextBlock: 30000, Daily: 100000}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		settings tariff.Settings
		want     int64
	}{
		{
			name:     "one minute stay charges one full block",
			checkIn:  at(1, 10, 0),
			checkOut: at(1, 10, 1),
			want:     50000,
		},
		{
			name:     "exactly one block across midnight",
			checkIn:  at(1, 23, 30),
			checkOut: at(2, 0, 30),
			want:     50000,
		},
		{
			name:     "overage inside grace is absorbed",
			checkIn:  at(1, 10, 0),
			checkOut: at(1, 11, 30),
			settings: tariff.Settings{GraceMinutes: 30},
			want:     50000,
		},
		{
			name:     "overage beyond grace rounds up",
			checkIn:  at(1, 10, 0),
			checkOut: at(1, 11, 35),
			settings: tariff.Settings{GraceMinutes: 30},
			want:     80000,
		},
		{
			name:     "three full blocks",
			checkIn:  at(1, 10, 0),
			checkOut: at(1, 13, 0),
			want:     110000,
		},
		{
			name:     "ceiling caps the hourly total at the daily rate",
			checkIn:  at(1, 8, 0),
			checkOut: at(1, 13, 0),
			settings: tariff.Settings{CeilingEnabled: true},
			want:     100000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			charge, err := tariff.Resolve(tariff.Input{
				Mode:     tariff.ModeHourly,
				CheckIn:  tt.checkIn,
				CheckOut: tt.checkOut,
				Rates:    rates,
				Settings: tt.settings,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, charge.Amount)
			assert.NotEmpty(t, charge.Lines)
		})
	}
}

func TestResolveDaily(t *testing.T) {
	rates := tariff.Rates{Daily: 200000}
	settings := tariff.Settings{GraceMinutes: 30}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int64
	}{
		{
			name:     "standard night at exact checkout",
			checkIn:  at(1, 14, 0),
			checkOut: at(2, 12, 0),
			want:     200000,
		},
		{
			name:     "same day stay counts one night",
			checkIn:  at(1, 9, 0),
			checkOut: at(1, 11, 0),
			want:     200000,
		},
		{
			name:     "departure within grace of late threshold",
			checkIn:  at(1, 14, 0),
			checkOut: at(2, 13, 20),
			want:     200000,
		},
		{
			name:     "departure beyond grace adds a night",
			checkIn:  at(1, 14, 0),
			checkOut: at(2, 13, 45),
			want:     400000,
		},
		{
			name:     "arrival before early threshold adds a night",
			checkIn:  at(1, 5, 0),
			checkOut: at(2, 12, 0),
			want:     400000,
		},
		{
			name:     "two boundaries crossed",
			checkIn:  at(1, 14, 0),
			checkOut: at(3, 12, 0),
			want:     400000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			charge, err := tariff.Resolve(tariff.Input{
				Mode:     tariff.ModeDaily,
				CheckIn:  tt.checkIn,
				CheckOut: tt.checkOut,
				Rates:    rates,
				Settings: settings,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, charge.Amount)
		})
	}
}

func TestResolveOvernight(t *testing.T) {
	rates := tariff.Rates{Overnight: 150000}
	settings := tariff.Settings{GraceMinutes: 30}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int64
	}{
		{
			name:     "checkout before window end",
			checkIn:  at(1, 21, 0),
			checkOut: at(2, 11, 0),
			want:     150000,
		},
		{
			name:     "checkout within grace of window end",
			checkIn:  at(1, 21, 0),
			checkOut: at(2, 12, 20),
			want:     150000,
		},
		{
			name:     "checkout beyond grace adds a night",
			checkIn:  at(1, 21, 0),
			checkOut: at(2, 13, 0),
			want:     300000,
		},
		{
			name:     "post midnight arrival ends same day",
			checkIn:  at(2, 1, 0),
			checkOut: at(2, 11, 30),
			want:     150000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			charge, err := tariff.Resolve(tariff.Input{
				Mode:     tariff.ModeOvernight,
				CheckIn:  tt.checkIn,
				CheckOut: tt.checkOut,
				Rates:    rates,
				Settings: settings,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, charge.Amount)
		})
	}
}

func TestResolveCustomPrice(t *testing.T) {
	price := int64(75000)

	charge, err := tariff.Resolve(tariff.Input{
		Mode:         tariff.ModeDaily,
		CheckIn:      at(1, 14, 0),
		CheckOut:     at(2, 12, 0),
		Rates:        tariff.Rates{Daily: 200000},
		CustomPrice:  &price,
		CustomReason: "negotiated corporate rate",
	})

	require.NoError(t, err)
	assert.Equal(t, price, charge.Amount)

	_, err = tariff.Resolve(tariff.Input{
		Mode:        tariff.ModeDaily,
		CheckIn:     at(1, 14, 0),
		CheckOut:    at(2, 12, 0),
		CustomPrice: &price,
	})
	assert.Error(t, err, "custom price without a reason must be rejected")

	negative := int64(-1)
	_, err = tariff.Resolve(tariff.Input{
		Mode:         tariff.ModeDaily,
		CheckIn:      at(1, 14, 0),
		CheckOut:     at(2, 12, 0),
		CustomPrice:  &negative,
		CustomReason: "nonsense",
	})
	assert.Error(t, err)
}

func TestResolveRejectsInvertedRange(t *testing.T) {
	_, err := tariff.Resolve(tariff.Input{
		Mode:     tariff.ModeHourly,
		CheckIn:  at(2, 10, 0),
		CheckOut: at(1, 10, 0),
	})

	assert.Error(t, err)
}

func TestResolveIsPure(t *testing.T) {
	in := tariff.Input{
		Mode:     tariff.ModeDaily,
		CheckIn:  at(1, 5, 0),
		CheckOut: at(2, 13, 45),
		Rates:    tariff.Rates{Daily: 200000},
		Settings: tariff.Settings{GraceMinutes: 30},
	}

	first, err := tariff.Resolve(in)
	require.NoError(t, err)

	second, err := tariff.Resolve(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
