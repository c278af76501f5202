package dto

import (
	"lodge/internal/domains/room/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name       string `json:"name"        validate:"required,max=100"`
	CategoryID string `json:"category_id" validate:"required,uuid"`
	Active     *bool  `json:"active"      validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:         uuid.NewString(),
		Name:       c.Name,
		CategoryID: c.CategoryID,
		Status:     model.StatusAvailable,
		Active:     active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name       string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	CategoryID string `db:"category_id" json:"category_id" validate:"omitempty,uuid"`
	Active     *bool  `db:"active"      json:"active"      validate:"omitempty"`
}

type RoomResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"category_id"`
	Status     string `json:"status"`
	Active     bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.CategoryID = model.CategoryID
	r.Status = model.Status
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type CreateCategoryRequest struct {
	Name                 string `json:"name"                    validate:"required,max=100"`
	HourlyFirstBlockRate int64  `json:"hourly_first_block_rate" validate:"min=0"`
	HourlyNextBlockRate  int64  `json:"hourly_next_block_rate"  validate:"min=0"`
	DailyRate            int64  `json:"daily_rate"              validate:"min=0"`
	OvernightRate        int64  `json:"overnight_rate"          validate:"min=0"`
	ExtraChargeEnabled   bool   `json:"extra_charge_enabled"`
	ExtraAdultRate       int64  `json:"extra_adult_rate"        validate:"min=0"`
	ExtraChildRate       int64  `json:"extra_child_rate"        validate:"min=0"`
}

func (c *CreateCategoryRequest) ToModel(user string) model.Category {
	return model.Category{
		ID:                   uuid.NewString(),
		Name:                 c.Name,
		HourlyFirstBlockRate: c.HourlyFirstBlockRate,
		HourlyNextBlockRate:  c.HourlyNextBlockRate,
		DailyRate:            c.DailyRate,
		OvernightRate:        c.OvernightRate,
		ExtraChargeEnabled:   c.ExtraChargeEnabled,
		ExtraAdultRate:       c.ExtraAdultRate,
		ExtraChildRate:       c.ExtraChildRate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCategoryRequest struct {
	Name                 string `db:"name"                    json:"name"                    validate:"omitempty,max=100"`
	HourlyFirstBlockRate *int64 `db:"hourly_first_block_rate" json:"hourly_first_block_rate" validate:"omitempty,min=0"`
	HourlyNextBlockRate  *int64 `db:"hourly_next_block_rate"  json:"hourly_next_block_rate"  validate:"omitempty,min=0"`
	DailyRate            *int64 `db:"daily_rate"              json:"daily_rate"              validate:"omitempty,min=0"`
	OvernightRate        *int64 `db:"overnight_rate"          json:"overnight_rate"          validate:"omitempty,min=0"`
	ExtraChargeEnabled   *bool  `db:"extra_charge_enabled"    json:"extra_charge_enabled"    validate:"omitempty"`
	ExtraAdultRate       *int64 `db:"extra_adult_rate"        json:"extra_adult_rate"        validate:"omitempty,min=0"`
	ExtraChildRate       *int64 `db:"extra_child_rate"        json:"extra_child_rate"        validate:"omitempty,min=0"`
}

type CategoryResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	HourlyFirstBlockRate int64  `json:"hourly_first_block_rate"`
	HourlyNextBlockRate  int64  `json:"hourly_next_block_rate"`
	DailyRate            int64  `json:"daily_rate"`
	OvernightRate        int64  `json:"overnight_rate"`
	ExtraChargeEnabled   bool   `json:"extra_charge_enabled"`
	ExtraAdultRate       int64  `json:"extra_adult_rate"`
	ExtraChildRate       int64  `json:"extra_child_rate"`
	gDto.Metadata
}

func (c *CategoryResponse) FromModel(model model.Category) {
	c.ID = model.ID
	c.Name = model.Name
	c.HourlyFirstBlockRate = model.HourlyFirstBlockRate
	c.HourlyNextBlockRate = model.HourlyNextBlockRate
	c.DailyRate = model.DailyRate
	c.OvernightRate = model.OvernightRate
	c.ExtraChargeEnabled = model.ExtraChargeEnabled
	c.ExtraAdultRate = model.ExtraAdultRate
	c.ExtraChildRate = model.ExtraChildRate
	c.Metadata.FromModel(model.Metadata)
}

type GetCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (g *GetCategoriesResponse) FromModels(models []model.Category, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Categories = make([]CategoryResponse, len(models))
	for i, mod := range models {
		g.Categories[i].FromModel(mod)
	}
}
