package model

import (
	"lodge/shared/model"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID    = "id"
	FieldName  = "name"
	FieldPhone = "phone"
	FieldDebt  = "debt"
)

// Customer is a returning guest. Debt is the running total of unpaid
// settlements, kept in sync with the receivable wallet by the booking flow.
type Customer struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Phone    string `db:"phone"`
	IDNumber string `db:"id_number"`
	Notes    string `db:"notes"`
	Debt     int64  `db:"debt"`
	model.Metadata
}
