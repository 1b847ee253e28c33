package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"reception/internal/domains/booking/model"
	"reception/internal/domains/booking/model/dto"
	"reception/internal/domains/folio/latefee"
	"reception/shared/timezone"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		GuestRef:      "guest-7",
		RoomType:      "deluxe",
		CheckInDate:   "2026-03-10",
		CheckOutDate:  "2026-03-12",
		DepositAmount: 500_000,
	}

	booking, err := req.ToModel(1_000_000, "BK2N4QXZ", "reception-1", 15, 12)

	assert.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "BK2N4QXZ", booking.Code)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, model.PaymentUnpaid, booking.PaymentStatus)
	assert.Equal(t, 2, booking.Nights())
	assert.Equal(t, int64(2_000_000), booking.RoomRateTotal)
	assert.Nil(t, booking.RoomID)
	assert.Equal(t, "reception-1", booking.CreatedBy)

	// Bare dates land on the hotel-day hours.
	assert.Equal(t, 15, booking.CheckInDate.Hour())
	assert.Equal(t, 12, booking.CheckOutDate.Hour())
}

func TestCreateBookingRequest_ToModel_WithTimeOfDay(t *testing.T) {
	req := dto.CreateBookingRequest{
		GuestRef:     "guest-7",
		RoomType:     "deluxe",
		CheckInDate:  "2026-03-10 18:30",
		CheckOutDate: "2026-03-12 09:00",
	}

	booking, err := req.ToModel(1_000_000, "BK2N4QXZ", "reception-1", 15, 12)

	assert.NoError(t, err)
	assert.Equal(t, 18, booking.CheckInDate.Hour())
	assert.Equal(t, 30, booking.CheckInDate.Minute())
	assert.Equal(t, 9, booking.CheckOutDate.Hour())
	assert.Equal(t, 2, booking.Nights())
}

func TestCreateBookingRequest_ToModel_BadDate(t *testing.T) {
	req := dto.CreateBookingRequest{
		GuestRef:     "guest-7",
		RoomType:     "deluxe",
		CheckInDate:  "10-03-2026",
		CheckOutDate: "2026-03-12",
	}

	_, err := req.ToModel(1_000_000, "BK2N4QXZ", "reception-1", 15, 12)

	assert.Error(t, err)
}

// A guest leaving on the morning of the check-out day owes no penalty. The
// scheduled instant built from a bare date must sit at the check-out hour,
// not at midnight, or every routine departure would read as hours late.
func TestCreateBookingRequest_MorningCheckOutIsNotLate(t *testing.T) {
	req := dto.CreateBookingRequest{
		GuestRef:     "guest-7",
		RoomType:     "deluxe",
		CheckInDate:  "2026-03-10",
		CheckOutDate: "2026-03-12",
	}

	booking, err := req.ToModel(1_000_000, "BK2N4QXZ", "reception-1", 15, 12)
	assert.NoError(t, err)

	policy := latefee.Policy{
		Tiers:      []latefee.Tier{{UpToHours: 3, Percent: 20}, {UpToHours: 6, Percent: 50}},
		MaxPercent: 100,
	}

	departure := time.Date(2026, 3, 12, 10, 0, 0, 0, timezone.GetLocation())
	res := latefee.Calculate(policy, booking.CheckOutDate, departure, booking.NightlyRate)

	assert.Zero(t, res.HoursLate)
	assert.Zero(t, res.PenaltyPercent)
	assert.Zero(t, res.PenaltyAmount)

	// An hour past the check-out hour lands in the first tier.
	lateDeparture := time.Date(2026, 3, 12, 13, 0, 0, 0, timezone.GetLocation())
	late := latefee.Calculate(policy, booking.CheckOutDate, lateDeparture, booking.NightlyRate)

	assert.Equal(t, 1, late.HoursLate)
	assert.Equal(t, int64(20), late.PenaltyPercent)
	assert.Equal(t, int64(200_000), late.PenaltyAmount)
}

func TestBookingResponse_FromModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		GuestRef:     "guest-7",
		RoomType:     "deluxe",
		CheckInDate:  "2026-03-10",
		CheckOutDate: "2026-03-12",
	}

	booking, err := req.ToModel(1_000_000, "BK2N4QXZ", "reception-1", 15, 12)
	assert.NoError(t, err)

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, booking.ID, res.ID)
	assert.Equal(t, "2026-03-10", res.CheckInDate)
	assert.Equal(t, "2026-03-12", res.CheckOutDate)
	assert.Equal(t, "pending", res.Status)
	assert.Nil(t, res.ActualCheckInAt)
	assert.Nil(t, res.ActualCheckOutAt)
}
