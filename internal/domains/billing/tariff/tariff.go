package tariff

import (
	"fmt"
	"strings"
	"time"

	"lodge/shared/failure"
)

// Mode selects the tariff table and rounding rule for a booking.
type Mode string

const (
	ModeHourly    Mode = "hourly"
	ModeDaily     Mode = "daily"
	ModeOvernight Mode = "overnight"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeHourly, ModeDaily, ModeOvernight:
		return Mode(s), nil
	default:
		return "", failure.Validation(fmt.Sprintf("unknown rental mode %q", s)) //nolint:wrapcheck
	}
}

// Clock is a time of day expressed as minutes from midnight.
type Clock int

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// ParseClock parses an "HH:MM" string into a Clock.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, failure.Validation(fmt.Sprintf("invalid clock time %q, expected HH:MM", s)) //nolint:wrapcheck
	}

	return Clock(t.Hour()*60 + t.Minute()), nil
}

// ClockOf returns the time of day of t as a Clock.
func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

// Rates carries the per-category prices the resolver needs, in whole currency units.
type Rates struct {
	HourlyFirstBlock int64
	HourlyNextBlock  int64
	Daily            int64
	Overnight        int64
}

// Settings is the immutable tariff configuration snapshot passed explicitly
// into every calculation. Zero fields fall back to documented defaults via
// WithDefaults; the resolver never computes against missing configuration.
type Settings struct {
	CheckInTime    Clock
	CheckOutTime   Clock
	EarlyArrival   Clock
	LateDeparture  Clock
	OvernightEnd   Clock
	GraceMinutes   int
	BlockMinutes   int
	CeilingEnabled bool
	CeilingPercent int
}

const (
	DefaultCheckInTime    = Clock(14 * 60)
	DefaultCheckOutTime   = Clock(12 * 60)
	DefaultEarlyArrival   = Clock(6 * 60)
	DefaultLateDeparture  = Clock(13 * 60)
	DefaultOvernightEnd   = Clock(12 * 60)
	DefaultBlockMinutes   = 60
	DefaultCeilingPercent = 100
)

// WithDefaults returns a copy of the settings with every unset field replaced
// by its documented default.
func (s Settings) WithDefaults() Settings {
	if s.CheckInTime == 0 {
		s.CheckInTime = DefaultCheckInTime
	}

	if s.CheckOutTime == 0 {
		s.CheckOutTime = DefaultCheckOutTime
	}

	if s.EarlyArrival == 0 {
		s.EarlyArrival = DefaultEarlyArrival
	}

	if s.LateDeparture == 0 {
		s.LateDeparture = DefaultLateDeparture
	}

	if s.OvernightEnd == 0 {
		s.OvernightEnd = DefaultOvernightEnd
	}

	if s.BlockMinutes <= 0 {
		s.BlockMinutes = DefaultBlockMinutes
	}

	if s.CeilingPercent <= 0 {
		s.CeilingPercent = DefaultCeilingPercent
	}

	return s
}

// Input is everything the resolver needs for one booking.
type Input struct {
	Mode         Mode
	CheckIn      time.Time
	CheckOut     time.Time
	Rates        Rates
	Settings     Settings
	CustomPrice  *int64
	CustomReason string
}

// Charge is a resolved room charge with the ordered explanation of how it was reached.
type Charge struct {
	Amount int64
	Lines  []string
}

// Resolve converts a booking's timing and configuration into the base room
// charge. Pure: the same input always yields the same charge and lines.
func Resolve(in Input) (Charge, error) {
	set := in.Settings.WithDefaults()

	if in.CustomPrice != nil {
		return resolveCustom(in)
	}

	if in.CheckOut.Before(in.CheckIn) {
		return Charge{}, failure.Validation("check-out cannot precede check-in") //nolint:wrapcheck
	}

	switch in.Mode {
	case ModeHourly:
		return resolveHourly(in, set), nil
	case ModeDaily:
		return resolveDaily(in, set), nil
	case ModeOvernight:
		return resolveOvernight(in, set), nil
	default:
		return Charge{}, failure.Validation(fmt.Sprintf("unknown rental mode %q", in.Mode)) //nolint:wrapcheck
	}
}

// resolveCustom replaces the computed room charge entirely. Surcharges still
// layer on top at the composer level.
func resolveCustom(in Input) (Charge, error) {
	if strings.TrimSpace(in.CustomReason) == "" {
		return Charge{}, failure.Validation("custom price requires a reason") //nolint:wrapcheck
	}

	if *in.CustomPrice < 0 {
		return Charge{}, failure.Validation("custom price cannot be negative") //nolint:wrapcheck
	}

	return Charge{
		Amount: *in.CustomPrice,
		Lines:  []string{fmt.Sprintf("Custom room price %d applied: %s", *in.CustomPrice, in.CustomReason)},
	}, nil
}

func resolveHourly(in Input, set Settings) Charge {
	dur := in.CheckOut.Sub(in.CheckIn)
	block := time.Duration(set.BlockMinutes) * time.Minute
	grace := time.Duration(set.GraceMinutes) * time.Minute

	full := int(dur / block)
	over := dur - time.Duration(full)*block

	blocks := full
	lines := []string{}

	switch {
	case full == 0:
		// Minimum one block is always charged, even for a sub-minute stay.
		blocks = 1

		lines = append(lines, fmt.Sprintf("Minimum stay charged as 1 block of %d minutes", set.BlockMinutes))
	case over > grace:
		blocks++

		lines = append(lines, fmt.Sprintf("Partial block of %d minutes exceeds %d minute grace, rounded up to a full block", int(over.Minutes()), set.GraceMinutes))
	case over > 0:
		lines = append(lines, fmt.Sprintf("Overage of %d minutes within %d minute grace, absorbed", int(over.Minutes()), set.GraceMinutes))
	}

	amount := in.Rates.HourlyFirstBlock
	lines = append(lines, fmt.Sprintf("First block: %d", in.Rates.HourlyFirstBlock))

	if blocks > 1 {
		next := int64(blocks-1) * in.Rates.HourlyNextBlock
		amount += next

		lines = append(lines, fmt.Sprintf("%d further block(s) x %d = %d", blocks-1, in.Rates.HourlyNextBlock, next))
	}

	if set.CeilingEnabled && in.Rates.Daily > 0 {
		ceiling := in.Rates.Daily * int64(set.CeilingPercent) / 100
		if amount > ceiling {
			lines = append(lines, fmt.Sprintf("Hourly total %d capped at %d (%d%% of daily rate)", amount, ceiling, set.CeilingPercent))
			amount = ceiling
		}
	}

	return Charge{Amount: amount, Lines: lines}
}

func resolveDaily(in Input, set Settings) Charge {
	nights := daysBetween(in.CheckIn, in.CheckOut)
	lines := []string{}

	if nights == 0 {
		nights = 1

		lines = append(lines, "Same-day daily rental counts as 1 night")
	} else {
		lines = append(lines, fmt.Sprintf("%d day boundary(ies) crossed", nights))
	}

	arrival := ClockOf(in.CheckIn)
	if early := int(set.EarlyArrival) - int(arrival); early > 0 {
		if early > set.GraceMinutes {
			nights++

			lines = append(lines, fmt.Sprintf("Arrival at %s before %s early threshold adds 1 night", arrival, set.EarlyArrival))
		} else {
			lines = append(lines, fmt.Sprintf("Arrival at %s within %d minute grace of %s threshold, no extra night", arrival, set.GraceMinutes, set.EarlyArrival))
		}
	}

	departure := ClockOf(in.CheckOut)
	if over := int(departure) - int(set.LateDeparture); over > 0 {
		if over > set.GraceMinutes {
			nights++

			lines = append(lines, fmt.Sprintf("Departure at %s past %s late threshold adds 1 night", departure, set.LateDeparture))
		} else {
			lines = append(lines, fmt.Sprintf("Departure at %s within %d minute grace of %s threshold, no extra night", departure, set.GraceMinutes, set.LateDeparture))
		}
	}

	amount := int64(nights) * in.Rates.Daily
	lines = append(lines, fmt.Sprintf("%d night(s) x %d = %d", nights, in.Rates.Daily, amount))

	return Charge{Amount: amount, Lines: lines}
}

func resolveOvernight(in Input, set Settings) Charge {
	grace := time.Duration(set.GraceMinutes) * time.Minute

	// The fixed window ends at the overnight checkout time on the day after
	// check-in, or on the same day when the guest arrived past midnight.
	end := dateOf(in.CheckIn).AddDate(0, 0, 1).Add(time.Duration(set.OvernightEnd) * time.Minute)
	if ClockOf(in.CheckIn) < set.OvernightEnd {
		end = dateOf(in.CheckIn).Add(time.Duration(set.OvernightEnd) * time.Minute)
	}

	nights := 1
	lines := []string{fmt.Sprintf("Overnight stay at fixed rate %d, window ends %s", in.Rates.Overnight, set.OvernightEnd)}

	if over := in.CheckOut.Sub(end); over > grace {
		extra := 1 + int(over/(24*time.Hour))
		nights += extra

		lines = append(lines, fmt.Sprintf("Checkout %d minutes past overnight end beyond grace adds %d extra night(s)", int(over.Minutes()), extra))
	} else if over > 0 {
		lines = append(lines, fmt.Sprintf("Checkout %d minutes past overnight end within grace, absorbed", int(over.Minutes())))
	}

	amount := int64(nights) * in.Rates.Overnight
	if nights > 1 {
		lines = append(lines, fmt.Sprintf("%d night(s) x %d = %d", nights, in.Rates.Overnight, amount))
	}

	return Charge{Amount: amount, Lines: lines}
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysBetween(from, to time.Time) int {
	return int(dateOf(to).Sub(dateOf(from)) / (24 * time.Hour))
}
