package model

import (
	"lodge/internal/domains/billing/tariff"
	"lodge/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldName       = "name"
	FieldCategoryID = "category_id"
	FieldStatus     = "status"
	FieldActive     = "active"
)

const (
	StatusAvailable = "available"
	StatusOccupied  = "occupied"
)

type Room struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	CategoryID string `db:"category_id"`
	Status     string `db:"status"`
	Active     bool   `db:"active"`
	model.Metadata
}

const (
	CategoryTableName  = "room_categories"
	CategoryEntityName = "room category"

	CategoryFieldID   = "id"
	CategoryFieldName = "name"
)

// Category carries the tariff table shared by every room in it. Rates are
// whole currency units.
type Category struct {
	ID                   string `db:"id"`
	Name                 string `db:"name"`
	HourlyFirstBlockRate int64  `db:"hourly_first_block_rate"`
	HourlyNextBlockRate  int64  `db:"hourly_next_block_rate"`
	DailyRate            int64  `db:"daily_rate"`
	OvernightRate        int64  `db:"overnight_rate"`
	ExtraChargeEnabled   bool   `db:"extra_charge_enabled"`
	ExtraAdultRate       int64  `db:"extra_adult_rate"`
	ExtraChildRate       int64  `db:"extra_child_rate"`
	model.Metadata
}

func (c Category) Rates() tariff.Rates {
	return tariff.Rates{
		HourlyFirstBlock: c.HourlyFirstBlockRate,
		HourlyNextBlock:  c.HourlyNextBlockRate,
		Daily:            c.DailyRate,
		Overnight:        c.OvernightRate,
	}
}
