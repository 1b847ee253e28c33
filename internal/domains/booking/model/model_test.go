package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"reception/internal/domains/booking/model"
)

func TestNextStatus(t *testing.T) {
	testCases := []struct {
		name    string
		current model.Status
		event   model.Event
		next    model.Status
		allow   bool
	}{
		{name: "pending confirm", current: model.StatusPending, event: model.EventConfirm, next: model.StatusConfirmed, allow: true},
		{name: "pending cancel", current: model.StatusPending, event: model.EventCancel, next: model.StatusCancelled, allow: true},
		{name: "pending no-show", current: model.StatusPending, event: model.EventNoShow, next: model.StatusNoShow, allow: true},
		{name: "pending check-in is rejected", current: model.StatusPending, event: model.EventCheckIn, allow: false},
		{name: "confirmed check-in", current: model.StatusConfirmed, event: model.EventCheckIn, next: model.StatusCheckedIn, allow: true},
		{name: "confirmed cancel", current: model.StatusConfirmed, event: model.EventCancel, next: model.StatusCancelled, allow: true},
		{name: "confirmed confirm again is rejected", current: model.StatusConfirmed, event: model.EventConfirm, allow: false},
		{name: "checked-in change room", current: model.StatusCheckedIn, event: model.EventChangeRoom, next: model.StatusCheckedIn, allow: true},
		{name: "checked-in check-out", current: model.StatusCheckedIn, event: model.EventCheckOut, next: model.StatusCheckedOut, allow: true},
		{name: "checked-in cancel is rejected", current: model.StatusCheckedIn, event: model.EventCancel, allow: false},
		{name: "checked-in no-show is rejected", current: model.StatusCheckedIn, event: model.EventNoShow, allow: false},
		{name: "checked-out accepts nothing", current: model.StatusCheckedOut, event: model.EventCheckOut, allow: false},
		{name: "cancelled accepts nothing", current: model.StatusCancelled, event: model.EventConfirm, allow: false},
		{name: "no-show accepts nothing", current: model.StatusNoShow, event: model.EventCheckIn, allow: false},
		{name: "refunded accepts nothing", current: model.StatusRefunded, event: model.EventCancel, allow: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, ok := model.NextStatus(tc.current, tc.event)

			assert.Equal(t, tc.allow, ok)

			if tc.allow {
				assert.Equal(t, tc.next, next)
			}
		})
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, model.StatusPending.Terminal())
	assert.False(t, model.StatusConfirmed.Terminal())
	assert.False(t, model.StatusCheckedIn.Terminal())
	assert.True(t, model.StatusCheckedOut.Terminal())
	assert.True(t, model.StatusCancelled.Terminal())
	assert.True(t, model.StatusNoShow.Terminal())
	assert.True(t, model.StatusRefunded.Terminal())
}

func TestBooking_Nights(t *testing.T) {
	booking := model.Booking{
		CheckInDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, 2, booking.Nights())
}

func TestBooking_Nights_TimesOfDayDoNotShortenTheStay(t *testing.T) {
	// Check-in at 15:00 and check-out at 12:00 is 45 elapsed hours but
	// still two calendar nights.
	booking := model.Booking{
		CheckInDate:  time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, 2, booking.Nights())
}

func TestBooking_Nights_AcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	// The night of 2026-03-08 loses an hour, so midnight to midnight is
	// only 47 elapsed hours. The guest still slept two nights.
	booking := model.Booking{
		CheckInDate:  time.Date(2026, 3, 7, 0, 0, 0, 0, loc),
		CheckOutDate: time.Date(2026, 3, 9, 0, 0, 0, 0, loc),
	}

	assert.Equal(t, 2, booking.Nights())
}
