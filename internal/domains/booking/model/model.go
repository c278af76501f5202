package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldRoomID     = "room_id"
	FieldCustomerID = "customer_id"
	FieldStatus     = "status"
	FieldMode       = "mode"
	FieldCheckIn    = "check_in"
)

const (
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

// Booking is one stay from check-in to settlement. Monetary fields are whole
// currency units. RecognizedAmount tracks how much of the stay has already
// been booked as revenue by earlier ledger events, so settlement only
// recognizes the remainder.
type Booking struct {
	ID                    string     `db:"id"`
	RoomID                string     `db:"room_id"`
	CustomerID            *string    `db:"customer_id"`
	GuestName             string     `db:"guest_name"`
	Mode                  string     `db:"mode"`
	Status                string     `db:"status"`
	CheckIn               time.Time  `db:"check_in"`
	ExpectedCheckOut      *time.Time `db:"expected_check_out"`
	CheckedOutAt          *time.Time `db:"checked_out_at"`
	CustomPrice           *int64     `db:"custom_price"`
	CustomPriceReason     string     `db:"custom_price_reason"`
	CustomSurcharge       int64      `db:"custom_surcharge"`
	CustomSurchargeReason string     `db:"custom_surcharge_reason"`
	ExtraAdults           int        `db:"extra_adults"`
	ExtraChildren         int        `db:"extra_children"`
	Deposit               int64      `db:"deposit"`
	Discount              int64      `db:"discount"`
	PaymentMethod         string     `db:"payment_method"`
	PaidAmount            int64      `db:"paid_amount"`
	ChangeDue             int64      `db:"change_due"`
	DebtRecorded          int64      `db:"debt_recorded"`
	RecognizedAmount      int64      `db:"recognized_amount"`
	Notes                 string     `db:"notes"`
	model.Metadata
}

const (
	ServiceTableName  = "booking_services"
	ServiceEntityName = "booking service"

	ServiceFieldID          = "id"
	ServiceFieldBookingID   = "booking_id"
	ServiceFieldStockItemID = "stock_item_id"
)

// Service is one consumed stock item on a booking. Name, UnitPrice and
// UnitCost are snapshots taken at consumption time; later catalog edits do
// not reprice past sales.
type Service struct {
	ID          string `db:"id"`
	BookingID   string `db:"booking_id"`
	StockItemID string `db:"stock_item_id"`
	Name        string `db:"name"`
	Quantity    int64  `db:"quantity"`
	UnitPrice   int64  `db:"unit_price"`
	UnitCost    int64  `db:"unit_cost"`
	model.Metadata
}

func (s Service) Total() int64 {
	return s.Quantity * s.UnitPrice
}
