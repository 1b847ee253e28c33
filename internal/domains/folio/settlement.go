// Package folio settles a booking's bill. Settle is pure; persistence of the
// resulting snapshot belongs to the booking lifecycle.
package folio

import "reception/internal/domains/folio/latefee"

// Folio is the settled bill for one stay. BalanceDue may be negative when the
// deposit exceeds the total; issuing the refund is the caller's concern.
type Folio struct {
	RoomRateTotal int64 `json:"room_rate_total"`
	ChargesTotal  int64 `json:"charges_total"`
	PenaltyAmount int64 `json:"penalty_amount"`
	DepositAmount int64 `json:"deposit_amount"`
	BalanceDue    int64 `json:"balance_due"`
}

// Settle combines the room rate, accumulated charges, late-checkout penalty
// and deposit into the final balance.
func Settle(roomRateTotal, chargesTotal, depositAmount int64, late latefee.Result) Folio {
	return Folio{
		RoomRateTotal: roomRateTotal,
		ChargesTotal:  chargesTotal,
		PenaltyAmount: late.PenaltyAmount,
		DepositAmount: depositAmount,
		BalanceDue:    roomRateTotal + chargesTotal + late.PenaltyAmount - depositAmount,
	}
}
