package model

import (
	"lodge/shared/model"
)

const (
	TableName  = "stock_items"
	EntityName = "stock item"

	FieldID       = "id"
	FieldName     = "name"
	FieldQuantity = "quantity"
	FieldCost     = "cost"
	FieldPrice    = "price"
	FieldActive   = "active"
)

// StockItem is one sellable good. Quantity counts retail units; Cost is the
// weighted-average acquisition cost per retail unit in whole currency units.
type StockItem struct {
	ID               string `db:"id"`
	Name             string `db:"name"`
	Unit             string `db:"unit"`
	Quantity         int64  `db:"quantity"`
	Cost             int64  `db:"cost"`
	Price            int64  `db:"price"`
	ConversionFactor int64  `db:"conversion_factor"`
	MinStock         int64  `db:"min_stock"`
	Active           bool   `db:"active"`
	model.Metadata
}

// LowStock reports whether the item has fallen to or below its minimum level.
func (s StockItem) LowStock() bool {
	return s.MinStock > 0 && s.Quantity <= s.MinStock
}

const (
	LogTableName  = "inventory_logs"
	LogEntityName = "inventory log"

	LogFieldID          = "id"
	LogFieldStockItemID = "stock_item_id"
	LogFieldType        = "type"
	LogFieldBookingID   = "booking_id"
)

const (
	LogTypeImport      = "import"
	LogTypeAdjustment  = "adjustment"
	LogTypeConsumption = "consumption"
	LogTypeRestock     = "restock"
)

// Log records one stock movement. Change is signed in retail units;
// QuantityAfter snapshots the level right after the movement.
type Log struct {
	ID            string  `db:"id"`
	StockItemID   string  `db:"stock_item_id"`
	Type          string  `db:"type"`
	Change        int64   `db:"change"`
	QuantityAfter int64   `db:"quantity_after"`
	UnitCost      int64   `db:"unit_cost"`
	Paid          int64   `db:"paid"`
	BookingID     *string `db:"booking_id"`
	Notes         string  `db:"notes"`
	model.Metadata
}
