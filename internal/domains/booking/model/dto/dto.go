package dto

import (
	"time"

	"github.com/google/uuid"

	"reception/internal/domains/booking/model"
	"reception/internal/domains/folio"
	"reception/internal/domains/folio/latefee"
	"reception/shared"
	"reception/shared/constant"
	gDto "reception/shared/dto"
	gModel "reception/shared/model"
	"reception/shared/timezone"
)

const (
	dateFormat     = "2006-01-02"
	dateTimeFormat = "2006-01-02 15:04"
)

type CreateBookingRequest struct {
	GuestRef      string `json:"guest_ref"      validate:"required,max=100"`
	RoomType      string `json:"room_type"      validate:"required,max=50"`
	CheckInDate   string `json:"check_in_date"  validate:"required"`
	CheckOutDate  string `json:"check_out_date" validate:"required"`
	DepositAmount int64  `json:"deposit_amount" validate:"omitempty,gte=0"`
	WalkIn        bool   `json:"walk_in"`
}

// parseStayDate reads a stay boundary that may arrive as a bare date or as a
// date with a time of day. Bare dates land on the given hotel-day hour so the
// scheduled check-out instant is meaningful when the late fee is computed.
func parseStayDate(value string, hour int) (time.Time, error) {
	if t, err := timezone.Parse(dateTimeFormat, value); err == nil {
		return t, nil
	}

	t, err := timezone.Parse(dateFormat, value)
	if err != nil {
		return time.Time{}, err
	}

	return t.Add(time.Duration(hour) * time.Hour), nil
}

// ToModel builds a pending booking priced at the given nightly rate. The
// room itself is assigned at check-in, not here.
func (c *CreateBookingRequest) ToModel(nightlyRate int64, code, user string, checkInHour, checkOutHour int) (model.Booking, error) {
	checkInDate, err := parseStayDate(c.CheckInDate, checkInHour)
	if err != nil {
		return model.Booking{}, err
	}

	checkOutDate, err := parseStayDate(c.CheckOutDate, checkOutHour)
	if err != nil {
		return model.Booking{}, err
	}

	booking := model.Booking{
		ID:            uuid.NewString(),
		Code:          code,
		GuestRef:      c.GuestRef,
		RoomType:      c.RoomType,
		CheckInDate:   checkInDate,
		CheckOutDate:  checkOutDate,
		Status:        model.StatusPending,
		NightlyRate:   nightlyRate,
		DepositAmount: c.DepositAmount,
		PaymentStatus: model.PaymentUnpaid,
		WalkIn:        c.WalkIn,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	booking.RoomRateTotal = nightlyRate * int64(booking.Nights())

	return booking, nil
}

type CheckInRequest struct {
	RoomID string `json:"room_id" validate:"required"`
}

type ChangeRoomRequest struct {
	RoomID string `json:"room_id" validate:"required"`
}

type BookingResponse struct {
	ID               string  `json:"id"`
	Code             string  `json:"code"`
	GuestRef         string  `json:"guest_ref"`
	RoomID           *string `json:"room_id,omitempty"`
	RoomType         string  `json:"room_type"`
	CheckInDate      string  `json:"check_in_date"`
	CheckOutDate     string  `json:"check_out_date"`
	ActualCheckInAt  *string `json:"actual_check_in_at,omitempty"`
	ActualCheckOutAt *string `json:"actual_check_out_at,omitempty"`
	Status           string  `json:"status"`
	NightlyRate      int64   `json:"nightly_rate"`
	RoomRateTotal    int64   `json:"room_rate_total"`
	DepositAmount    int64   `json:"deposit_amount"`
	PaymentStatus    string  `json:"payment_status"`
	WalkIn           bool    `json:"walk_in"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Code = model.Code
	r.GuestRef = model.GuestRef
	r.RoomID = model.RoomID
	r.RoomType = model.RoomType
	r.CheckInDate = model.CheckInDate.Format(dateFormat)
	r.CheckOutDate = model.CheckOutDate.Format(dateFormat)
	r.Status = model.Status.String()
	r.NightlyRate = model.NightlyRate
	r.RoomRateTotal = model.RoomRateTotal
	r.DepositAmount = model.DepositAmount
	r.PaymentStatus = string(model.PaymentStatus)
	r.WalkIn = model.WalkIn

	if model.ActualCheckInAt != nil {
		formatted := timezone.Format(*model.ActualCheckInAt, constant.DateFormat)
		r.ActualCheckInAt = &formatted
	}

	if model.ActualCheckOutAt != nil {
		formatted := timezone.Format(*model.ActualCheckOutAt, constant.DateFormat)
		r.ActualCheckOutAt = &formatted
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// FolioResponse is the settled bill after check-out, or a live preview while
// the guest is still in house (Settled reports which).
type FolioResponse struct {
	BookingID      string `json:"booking_id"`
	Code           string `json:"code"`
	Status         string `json:"status"`
	RoomRateTotal  int64  `json:"room_rate_total"`
	ChargesTotal   int64  `json:"charges_total"`
	HoursLate      int    `json:"hours_late"`
	PenaltyPercent int64  `json:"penalty_percent"`
	PenaltyAmount  int64  `json:"penalty_amount"`
	DepositAmount  int64  `json:"deposit_amount"`
	BalanceDue     int64  `json:"balance_due"`
	Settled        bool   `json:"settled"`
}

func (r *FolioResponse) FromFolio(booking model.Booking, f folio.Folio, late latefee.Result, settled bool) {
	r.BookingID = booking.ID
	r.Code = booking.Code
	r.Status = booking.Status.String()
	r.RoomRateTotal = f.RoomRateTotal
	r.ChargesTotal = f.ChargesTotal
	r.HoursLate = late.HoursLate
	r.PenaltyPercent = late.PenaltyPercent
	r.PenaltyAmount = f.PenaltyAmount
	r.DepositAmount = f.DepositAmount
	r.BalanceDue = f.BalanceDue
	r.Settled = settled
}
