package surcharge

import (
	"fmt"
	"math"
	"strings"

	"lodge/shared/failure"
)

// Band maps a time-offset range in minutes to a percentage of the room charge.
// Bands are evaluated in order; the first one containing the offset wins.
type Band struct {
	FromMinute int `json:"from_minute"`
	ToMinute   int `json:"to_minute"`
	Percent    int `json:"percent"`
}

// ResolveBand returns the percentage of the first band containing the offset.
// No matching band means zero; there is no implicit default.
func ResolveBand(bands []Band, offsetMinutes int) int {
	for _, band := range bands {
		if offsetMinutes >= band.FromMinute && offsetMinutes <= band.ToMinute {
			return band.Percent
		}
	}

	return 0
}

// ForOffset applies the matching band percentage to the base room charge and
// explains the result. A zero offset or no matching band yields no surcharge.
func ForOffset(base int64, bands []Band, offsetMinutes int, label string) (int64, string) {
	if offsetMinutes <= 0 {
		return 0, ""
	}

	percent := ResolveBand(bands, offsetMinutes)
	if percent == 0 {
		return 0, fmt.Sprintf("No %s surcharge band matches %d minute offset", label, offsetMinutes)
	}

	amount := int64(math.Round(float64(base) * float64(percent) / 100))

	return amount, fmt.Sprintf("%s surcharge %d%% of %d for %d minute offset = %d", label, percent, base, offsetMinutes, amount)
}

// Occupancy carries the occupant counts beyond the room's standard capacity.
type Occupancy struct {
	ExtraAdults   int
	ExtraChildren int
}

// OccupantFee charges extra occupants only when the feature is enabled for the
// room category.
func OccupantFee(enabled bool, occ Occupancy, perAdult, perChild int64) (int64, string) {
	if !enabled || (occ.ExtraAdults == 0 && occ.ExtraChildren == 0) {
		return 0, ""
	}

	amount := int64(occ.ExtraAdults)*perAdult + int64(occ.ExtraChildren)*perChild

	return amount, fmt.Sprintf("Extra occupants: %d adult(s) x %d + %d child(ren) x %d = %d", occ.ExtraAdults, perAdult, occ.ExtraChildren, perChild, amount)
}

// Custom is a manager-entered surcharge, independent of rule-based ones.
// The reason is mandatory.
func Custom(amount int64, reason string) (int64, string, error) {
	if amount == 0 {
		return 0, "", nil
	}

	if amount < 0 {
		return 0, "", failure.Validation("custom surcharge cannot be negative") //nolint:wrapcheck
	}

	if strings.TrimSpace(reason) == "" {
		return 0, "", failure.Validation("custom surcharge requires a reason") //nolint:wrapcheck
	}

	return amount, fmt.Sprintf("Custom surcharge %d: %s", amount, reason), nil
}
