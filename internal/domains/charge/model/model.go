package model

import (
	"reception/shared/model"
)

const (
	TableName  = "charge_items"
	EntityName = "charge"

	FieldID         = "id"
	FieldBookingID  = "booking_id"
	FieldName       = "name"
	FieldUnitAmount = "unit_amount"
	FieldQuantity   = "quantity"
)

type ChargeItem struct {
	ID         string `db:"id"`
	BookingID  string `db:"booking_id"`
	Name       string `db:"name"`
	UnitAmount int64  `db:"unit_amount"`
	Quantity   int    `db:"quantity"`
	model.Metadata
}

// Amount is the line total.
func (c *ChargeItem) Amount() int64 {
	return c.UnitAmount * int64(c.Quantity)
}
