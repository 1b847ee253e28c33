package model

import (
	"time"

	"reception/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldCode             = "code"
	FieldGuestRef         = "guest_ref"
	FieldRoomID           = "room_id"
	FieldRoomType         = "room_type"
	FieldCheckInDate      = "check_in_date"
	FieldCheckOutDate     = "check_out_date"
	FieldActualCheckInAt  = "actual_check_in_at"
	FieldActualCheckOutAt = "actual_check_out_at"
	FieldStatus           = "status"
	FieldNightlyRate      = "nightly_rate"
	FieldRoomRateTotal    = "room_rate_total"
	FieldDepositAmount    = "deposit_amount"
	FieldPaymentStatus    = "payment_status"
	FieldWalkIn           = "walk_in"
	FieldChargesTotal     = "charges_total"
	FieldPenaltyAmount    = "penalty_amount"
	FieldBalanceDue       = "balance_due"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
	StatusRefunded   Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

// Terminal statuses accept no further lifecycle events. Refunded is entered
// by the payment collaborator, never by a lifecycle event here.
func (s Status) Terminal() bool {
	switch s {
	case StatusCheckedOut, StatusCancelled, StatusNoShow, StatusRefunded:
		return true
	}

	return false
}

type Event string

const (
	EventConfirm    Event = "confirm"
	EventCancel     Event = "cancel"
	EventCheckIn    Event = "check_in"
	EventChangeRoom Event = "change_room"
	EventCheckOut   Event = "check_out"
	EventNoShow     Event = "no_show"
)

// transitions is the lifecycle edge table. Guards that need outside state
// (room availability, dates) live in the service; legality of the edge itself
// is decided here and nowhere else.
var transitions = map[Status]map[Event]Status{
	StatusPending: {
		EventConfirm: StatusConfirmed,
		EventCancel:  StatusCancelled,
		EventNoShow:  StatusNoShow,
	},
	StatusConfirmed: {
		EventCancel:  StatusCancelled,
		EventCheckIn: StatusCheckedIn,
		EventNoShow:  StatusNoShow,
	},
	StatusCheckedIn: {
		EventChangeRoom: StatusCheckedIn,
		EventCheckOut:   StatusCheckedOut,
	},
}

// NextStatus resolves the status an event leads to from the current one. The
// bool result is false when the edge does not exist.
func NextStatus(current Status, event Event) (Status, bool) {
	next, ok := transitions[current][event]

	return next, ok
}

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

type Booking struct {
	ID               string        `db:"id"`
	Code             string        `db:"code"`
	GuestRef         string        `db:"guest_ref"`
	RoomID           *string       `db:"room_id"`
	RoomType         string        `db:"room_type"`
	CheckInDate      time.Time     `db:"check_in_date"`
	CheckOutDate     time.Time     `db:"check_out_date"`
	ActualCheckInAt  *time.Time    `db:"actual_check_in_at"`
	ActualCheckOutAt *time.Time    `db:"actual_check_out_at"`
	Status           Status        `db:"status"`
	NightlyRate      int64         `db:"nightly_rate"`
	RoomRateTotal    int64         `db:"room_rate_total"`
	DepositAmount    int64         `db:"deposit_amount"`
	PaymentStatus    PaymentStatus `db:"payment_status"`
	WalkIn           bool          `db:"walk_in"`
	ChargesTotal     *int64        `db:"charges_total"`
	PenaltyAmount    *int64        `db:"penalty_amount"`
	BalanceDue       *int64        `db:"balance_due"`
	model.Metadata
}

// Nights is the booked length of stay, counted in calendar nights. Stay
// boundaries carry times of day (and DST can shorten a day), so dividing the
// duration by 24h would undercount; the calendar dates are what is sold.
func (b *Booking) Nights() int {
	in := b.CheckInDate
	out := b.CheckOutDate

	inDay := time.Date(in.Year(), in.Month(), in.Day(), 0, 0, 0, 0, time.UTC)
	outDay := time.Date(out.Year(), out.Month(), out.Day(), 0, 0, 0, 0, time.UTC)

	return int(outDay.Sub(inDay).Hours() / 24)
}

// CheckedIn reports whether the guest has a room right now.
func (b *Booking) CheckedIn() bool {
	return b.Status == StatusCheckedIn
}
