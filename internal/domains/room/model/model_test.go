package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reception/internal/domains/room/model"
)

func TestCanStaffTransition(t *testing.T) {
	testCases := []struct {
		name  string
		from  model.Status
		to    model.Status
		allow bool
	}{
		{name: "dirty to cleaning", from: model.StatusDirty, to: model.StatusCleaning, allow: true},
		{name: "cleaning to available", from: model.StatusCleaning, to: model.StatusAvailable, allow: true},
		{name: "dirty straight to available is not allowed", from: model.StatusDirty, to: model.StatusAvailable, allow: false},
		{name: "available to maintenance", from: model.StatusAvailable, to: model.StatusMaintenance, allow: true},
		{name: "dirty to out of order", from: model.StatusDirty, to: model.StatusOutOfOrder, allow: true},
		{name: "maintenance back to available", from: model.StatusMaintenance, to: model.StatusAvailable, allow: true},
		{name: "occupied is never staff writable", from: model.StatusOccupied, to: model.StatusDirty, allow: false},
		{name: "occupied to maintenance is rejected", from: model.StatusOccupied, to: model.StatusMaintenance, allow: false},
		{name: "no staff transition to occupied", from: model.StatusAvailable, to: model.StatusOccupied, allow: false},
		{name: "same status is not a transition", from: model.StatusDirty, to: model.StatusDirty, allow: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allow, model.CanStaffTransition(tc.from, tc.to))
		})
	}
}

func TestStatus_Bookable(t *testing.T) {
	assert.True(t, model.StatusAvailable.Bookable())
	assert.True(t, model.StatusDirty.Bookable())
	assert.True(t, model.StatusOccupied.Bookable())
	assert.False(t, model.StatusMaintenance.Bookable())
	assert.False(t, model.StatusOutOfOrder.Bookable())

	assert.ElementsMatch(t,
		[]string{"maintenance", "out_of_order"},
		model.OutOfServiceStatuses(),
	)
}
