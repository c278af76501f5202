package dto

import (
	"lodge/internal/domains/inventory/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name             string `json:"name"              validate:"required,max=100"`
	Unit             string `json:"unit"              validate:"omitempty,max=20"`
	Price            int64  `json:"price"             validate:"min=0"`
	ConversionFactor int64  `json:"conversion_factor" validate:"omitempty,min=1"`
	MinStock         int64  `json:"min_stock"         validate:"min=0"`
	Active           *bool  `json:"active"            validate:"omitempty"`
}

func (c *CreateItemRequest) ToModel(user string) model.StockItem {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	factor := c.ConversionFactor
	if factor == 0 {
		factor = 1
	}

	return model.StockItem{
		ID:               uuid.NewString(),
		Name:             c.Name,
		Unit:             c.Unit,
		Price:            c.Price,
		ConversionFactor: factor,
		MinStock:         c.MinStock,
		Active:           active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateItemRequest struct {
	Name             string `db:"name"              json:"name"              validate:"omitempty,max=100"`
	Unit             string `db:"unit"              json:"unit"              validate:"omitempty,max=20"`
	Price            *int64 `db:"price"             json:"price"             validate:"omitempty,min=0"`
	ConversionFactor *int64 `db:"conversion_factor" json:"conversion_factor" validate:"omitempty,min=1"`
	MinStock         *int64 `db:"min_stock"         json:"min_stock"         validate:"omitempty,min=0"`
	Active           *bool  `db:"active"            json:"active"            validate:"omitempty"`
}

type ImportRequest struct {
	Quantity      int64  `json:"quantity"       validate:"required,gt=0"`
	Paid          int64  `json:"paid"           validate:"min=0"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=cash bank"`
	Notes         string `json:"notes"          validate:"omitempty,max=500"`
}

type AdjustRequest struct {
	Quantity int64  `json:"quantity" validate:"min=0"`
	Notes    string `json:"notes"    validate:"required,max=500"`
}

type ItemResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Unit             string `json:"unit"`
	Quantity         int64  `json:"quantity"`
	Cost             int64  `json:"cost"`
	Price            int64  `json:"price"`
	ConversionFactor int64  `json:"conversion_factor"`
	MinStock         int64  `json:"min_stock"`
	LowStock         bool   `json:"low_stock"`
	Active           bool   `json:"active"`
	gDto.Metadata
}

func (r *ItemResponse) FromModel(mod model.StockItem) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Unit = mod.Unit
	r.Quantity = mod.Quantity
	r.Cost = mod.Cost
	r.Price = mod.Price
	r.ConversionFactor = mod.ConversionFactor
	r.MinStock = mod.MinStock
	r.LowStock = mod.LowStock()
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetItemsResponse struct {
	Items     []ItemResponse `json:"items"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (g *GetItemsResponse) FromModels(models []model.StockItem, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Items = make([]ItemResponse, len(models))
	for i, mod := range models {
		g.Items[i].FromModel(mod)
	}
}

type LogResponse struct {
	ID            string  `json:"id"`
	StockItemID   string  `json:"stock_item_id"`
	Type          string  `json:"type"`
	Change        int64   `json:"change"`
	QuantityAfter int64   `json:"quantity_after"`
	UnitCost      int64   `json:"unit_cost"`
	Paid          int64   `json:"paid"`
	BookingID     *string `json:"booking_id,omitempty"`
	Notes         string  `json:"notes"`
	gDto.Metadata
}

func (r *LogResponse) FromModel(mod model.Log) {
	r.ID = mod.ID
	r.StockItemID = mod.StockItemID
	r.Type = mod.Type
	r.Change = mod.Change
	r.QuantityAfter = mod.QuantityAfter
	r.UnitCost = mod.UnitCost
	r.Paid = mod.Paid
	r.BookingID = mod.BookingID
	r.Notes = mod.Notes
	r.Metadata.FromModel(mod.Metadata)
}

type GetLogsResponse struct {
	Logs      []LogResponse `json:"logs"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (g *GetLogsResponse) FromModels(models []model.Log, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Logs = make([]LogResponse, len(models))
	for i, mod := range models {
		g.Logs[i].FromModel(mod)
	}
}
