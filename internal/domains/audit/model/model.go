package model

import (
	"lodge/shared/model"
)

const (
	TableName  = "audit_records"
	EntityName = "audit record"

	FieldID        = "id"
	FieldAction    = "action"
	FieldBookingID = "booking_id"
)

const (
	ActionCheckIn        = "check_in"
	ActionAddService     = "add_service"
	ActionRemoveService  = "remove_service"
	ActionAddDeposit     = "add_deposit"
	ActionCheckout       = "checkout"
	ActionCancel         = "cancel"
	ActionRepayDebt      = "repay_debt"
	ActionUpdateSettings = "update_settings"
)

// Record is one append-only audit fact. Details carries the action-specific
// payload as JSON; records are never updated or deleted.
type Record struct {
	ID        string  `db:"id"`
	Action    string  `db:"action"`
	Actor     string  `db:"actor"`
	BookingID *string `db:"booking_id"`
	Details   string  `db:"details"`
	model.Metadata
}
