package folio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reception/internal/domains/folio"
	"reception/internal/domains/folio/latefee"
)

func TestSettle(t *testing.T) {
	testCases := []struct {
		name          string
		roomRateTotal int64
		chargesTotal  int64
		deposit       int64
		late          latefee.Result
		expectBalance int64
	}{
		{
			name:          "two nights with laundry and deposit",
			roomRateTotal: 2_000_000,
			chargesTotal:  100_000,
			deposit:       500_000,
			expectBalance: 1_600_000,
		},
		{
			name:          "empty ledger contributes zero",
			roomRateTotal: 1_000_000,
			expectBalance: 1_000_000,
		},
		{
			name:          "penalty is added on top",
			roomRateTotal: 1_000_000,
			chargesTotal:  250_000,
			late:          latefee.Result{HoursLate: 4, PenaltyPercent: 50, PenaltyAmount: 500_000},
			expectBalance: 1_750_000,
		},
		{
			name:          "deposit above total yields a negative balance",
			roomRateTotal: 800_000,
			deposit:       1_000_000,
			expectBalance: -200_000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := folio.Settle(tc.roomRateTotal, tc.chargesTotal, tc.deposit, tc.late)

			assert.Equal(t, tc.roomRateTotal, result.RoomRateTotal)
			assert.Equal(t, tc.chargesTotal, result.ChargesTotal)
			assert.Equal(t, tc.late.PenaltyAmount, result.PenaltyAmount)
			assert.Equal(t, tc.deposit, result.DepositAmount)
			assert.Equal(t, tc.expectBalance, result.BalanceDue)
		})
	}
}

func TestSettle_Deterministic(t *testing.T) {
	late := latefee.Result{HoursLate: 1, PenaltyPercent: 20, PenaltyAmount: 200_000}

	first := folio.Settle(2_000_000, 100_000, 500_000, late)
	second := folio.Settle(2_000_000, 100_000, 500_000, late)

	assert.Equal(t, first, second)
}
