package dto

import (
	"github.com/google/uuid"

	"reception/internal/domains/charge/model"
	gDto "reception/shared/dto"
	gModel "reception/shared/model"
	"reception/shared/timezone"
)

// AddChargeRequest carries a new line item. Amount and quantity bounds are
// checked by the ledger itself so violations surface as InvalidCharge rather
// than a generic validation error.
type AddChargeRequest struct {
	Name       string `json:"name"        validate:"required,max=100"`
	UnitAmount int64  `json:"unit_amount" validate:"required"`
	Quantity   int    `json:"quantity"    validate:"required"`
}

func (c *AddChargeRequest) ToModel(bookingID, user string) model.ChargeItem {
	return model.ChargeItem{
		ID:         uuid.NewString(),
		BookingID:  bookingID,
		Name:       c.Name,
		UnitAmount: c.UnitAmount,
		Quantity:   c.Quantity,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ChargeResponse struct {
	ID         string `json:"id"`
	BookingID  string `json:"booking_id"`
	Name       string `json:"name"`
	UnitAmount int64  `json:"unit_amount"`
	Quantity   int    `json:"quantity"`
	Amount     int64  `json:"amount"`
	gDto.Metadata
}

func (r *ChargeResponse) FromModel(model model.ChargeItem) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Name = model.Name
	r.UnitAmount = model.UnitAmount
	r.Quantity = model.Quantity
	r.Amount = model.Amount()
	r.Metadata.FromModel(model.Metadata)
}

type GetChargesResponse struct {
	Charges []ChargeResponse `json:"charges"`
	Total   int64            `json:"total"`
}

func (r *GetChargesResponse) FromModels(models []model.ChargeItem) {
	r.Charges = make([]ChargeResponse, len(models))

	for i, mod := range models {
		r.Charges[i].FromModel(mod)
		r.Total += mod.Amount()
	}
}
