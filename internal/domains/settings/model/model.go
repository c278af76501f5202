package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"lodge/internal/domains/billing/surcharge"
	"lodge/internal/domains/billing/tariff"
	"lodge/shared/failure"
	"lodge/shared/model"
)

const (
	TableName  = "settings"
	EntityName = "setting"

	FieldID = "id"

	// The settings table holds exactly one row.
	SingletonID = "default"
)

// Bands is a surcharge band list persisted as a jsonb column.
type Bands []surcharge.Band

func (b Bands) Value() (driver.Value, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal surcharge bands: %w", err)
	}

	return raw, nil
}

func (b *Bands) Scan(src any) error {
	if src == nil {
		*b = nil

		return nil
	}

	raw, ok := src.([]byte)
	if !ok {
		return errors.New("surcharge bands column is not a byte slice")
	}

	if err := json.Unmarshal(raw, b); err != nil {
		return fmt.Errorf("failed to unmarshal surcharge bands: %w", err)
	}

	return nil
}

// Setting is the property-wide pricing configuration. Blank time fields fall
// back to the documented defaults when the snapshot is built.
type Setting struct {
	ID                string `db:"id"`
	CheckInTime       string `db:"check_in_time"`
	CheckOutTime      string `db:"check_out_time"`
	EarlyArrivalTime  string `db:"early_arrival_time"`
	LateDepartureTime string `db:"late_departure_time"`
	OvernightEndTime  string `db:"overnight_end_time"`
	GraceMinutes      int    `db:"grace_minutes"`
	BlockMinutes      int    `db:"block_minutes"`
	CeilingEnabled    bool   `db:"ceiling_enabled"`
	CeilingPercent    int    `db:"ceiling_percent"`
	EarlyBands        Bands  `db:"early_bands"`
	LateBands         Bands  `db:"late_bands"`
	VatPercent        int    `db:"vat_percent"`
	ServiceFeePercent int    `db:"service_fee_percent"`
	model.Metadata
}

// Snapshot is the immutable configuration view handed to a single bill
// calculation. Later settings edits never touch a snapshot already taken.
type Snapshot struct {
	Tariff            tariff.Settings
	EarlyBands        []surcharge.Band
	LateBands         []surcharge.Band
	VatPercent        int
	ServiceFeePercent int
}

// Snapshot converts the stored row into a calculation snapshot, applying
// defaults for anything unset.
func (s Setting) Snapshot() (Snapshot, error) {
	set := tariff.Settings{
		GraceMinutes:   s.GraceMinutes,
		BlockMinutes:   s.BlockMinutes,
		CeilingEnabled: s.CeilingEnabled,
		CeilingPercent: s.CeilingPercent,
	}

	clocks := []struct {
		raw  string
		dst  *tariff.Clock
		name string
	}{
		{s.CheckInTime, &set.CheckInTime, "check_in_time"},
		{s.CheckOutTime, &set.CheckOutTime, "check_out_time"},
		{s.EarlyArrivalTime, &set.EarlyArrival, "early_arrival_time"},
		{s.LateDepartureTime, &set.LateDeparture, "late_departure_time"},
		{s.OvernightEndTime, &set.OvernightEnd, "overnight_end_time"},
	}

	for _, c := range clocks {
		if c.raw == "" {
			continue
		}

		clock, err := tariff.ParseClock(c.raw)
		if err != nil {
			return Snapshot{}, failure.InsufficientConfig(fmt.Sprintf("setting %s holds invalid time %q", c.name, c.raw)) //nolint:wrapcheck
		}

		*c.dst = clock
	}

	return Snapshot{
		Tariff:            set.WithDefaults(),
		EarlyBands:        s.EarlyBands,
		LateBands:         s.LateBands,
		VatPercent:        s.VatPercent,
		ServiceFeePercent: s.ServiceFeePercent,
	}, nil
}
