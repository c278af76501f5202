package dto

import (
	"lodge/internal/domains/billing/surcharge"
	"lodge/internal/domains/settings/model"
	gDto "lodge/shared/dto"
)

type BandRequest struct {
	FromMinute int `json:"from_minute" validate:"min=0"`
	ToMinute   int `json:"to_minute"   validate:"required,gtefield=FromMinute"`
	Percent    int `json:"percent"     validate:"min=0,max=100"`
}

type UpdateSettingsRequest struct {
	CheckInTime       string        `db:"check_in_time"       json:"check_in_time"       validate:"omitempty,len=5"`
	CheckOutTime      string        `db:"check_out_time"      json:"check_out_time"      validate:"omitempty,len=5"`
	EarlyArrivalTime  string        `db:"early_arrival_time"  json:"early_arrival_time"  validate:"omitempty,len=5"`
	LateDepartureTime string        `db:"late_departure_time" json:"late_departure_time" validate:"omitempty,len=5"`
	OvernightEndTime  string        `db:"overnight_end_time"  json:"overnight_end_time"  validate:"omitempty,len=5"`
	GraceMinutes      *int          `db:"grace_minutes"       json:"grace_minutes"       validate:"omitempty,min=0,max=1440"`
	BlockMinutes      *int          `db:"block_minutes"       json:"block_minutes"       validate:"omitempty,min=1,max=1440"`
	CeilingEnabled    *bool         `db:"ceiling_enabled"     json:"ceiling_enabled"`
	CeilingPercent    *int          `db:"ceiling_percent"     json:"ceiling_percent"     validate:"omitempty,min=1,max=500"`
	EarlyBands        []BandRequest `json:"early_bands"                                  validate:"omitempty,dive"`
	LateBands         []BandRequest `json:"late_bands"                                   validate:"omitempty,dive"`
	VatPercent        *int          `db:"vat_percent"         json:"vat_percent"         validate:"omitempty,min=0,max=100"`
	ServiceFeePercent *int          `db:"service_fee_percent" json:"service_fee_percent" validate:"omitempty,min=0,max=100"`
}

func (u *UpdateSettingsRequest) ToBands(reqs []BandRequest) model.Bands {
	bands := make(model.Bands, len(reqs))
	for i, req := range reqs {
		bands[i] = surcharge.Band{
			FromMinute: req.FromMinute,
			ToMinute:   req.ToMinute,
			Percent:    req.Percent,
		}
	}

	return bands
}

type SettingsResponse struct {
	CheckInTime       string           `json:"check_in_time"`
	CheckOutTime      string           `json:"check_out_time"`
	EarlyArrivalTime  string           `json:"early_arrival_time"`
	LateDepartureTime string           `json:"late_departure_time"`
	OvernightEndTime  string           `json:"overnight_end_time"`
	GraceMinutes      int              `json:"grace_minutes"`
	BlockMinutes      int              `json:"block_minutes"`
	CeilingEnabled    bool             `json:"ceiling_enabled"`
	CeilingPercent    int              `json:"ceiling_percent"`
	EarlyBands        []surcharge.Band `json:"early_bands"`
	LateBands         []surcharge.Band `json:"late_bands"`
	VatPercent        int              `json:"vat_percent"`
	ServiceFeePercent int              `json:"service_fee_percent"`
	gDto.Metadata
}

func (s *SettingsResponse) FromModel(mod model.Setting) {
	s.CheckInTime = mod.CheckInTime
	s.CheckOutTime = mod.CheckOutTime
	s.EarlyArrivalTime = mod.EarlyArrivalTime
	s.LateDepartureTime = mod.LateDepartureTime
	s.OvernightEndTime = mod.OvernightEndTime
	s.GraceMinutes = mod.GraceMinutes
	s.BlockMinutes = mod.BlockMinutes
	s.CeilingEnabled = mod.CeilingEnabled
	s.CeilingPercent = mod.CeilingPercent
	s.EarlyBands = mod.EarlyBands
	s.LateBands = mod.LateBands
	s.VatPercent = mod.VatPercent
	s.ServiceFeePercent = mod.ServiceFeePercent
	s.Metadata.FromModel(mod.Metadata)
}
