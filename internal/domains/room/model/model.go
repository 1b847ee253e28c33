package model

import (
	"reception/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldRoomNumber  = "room_number"
	FieldRoomType    = "room_type"
	FieldNightlyRate = "nightly_rate"
	FieldStatus      = "status"
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusCleaning    Status = "cleaning"
	StatusDirty       Status = "dirty"
	StatusMaintenance Status = "maintenance"
	StatusOutOfOrder  Status = "out_of_order"
)

func (s Status) String() string {
	return string(s)
}

// staffTransitions is the housekeeping surface: dirty rooms get cleaned and
// promoted back to available, and any unoccupied room can be pulled into
// maintenance or out_of_order. Occupied is owned by the booking lifecycle and
// never staff-writable.
var staffTransitions = map[Status][]Status{
	StatusDirty:       {StatusCleaning, StatusMaintenance, StatusOutOfOrder},
	StatusCleaning:    {StatusAvailable, StatusMaintenance, StatusOutOfOrder},
	StatusAvailable:   {StatusMaintenance, StatusOutOfOrder},
	StatusMaintenance: {StatusAvailable, StatusOutOfOrder},
	StatusOutOfOrder:  {StatusAvailable, StatusMaintenance},
	StatusOccupied:    {},
}

// CanStaffTransition reports whether a staff status update from one status to
// another is allowed.
func CanStaffTransition(from, to Status) bool {
	for _, allowed := range staffTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// Bookable reports whether the room participates in availability at all.
// Maintenance and out_of_order rooms never do, regardless of booking activity.
func (s Status) Bookable() bool {
	return s != StatusMaintenance && s != StatusOutOfOrder
}

// OutOfServiceStatuses lists the statuses Bookable rules out, for queries
// that do the same filtering in SQL. Derived so the two cannot drift.
func OutOfServiceStatuses() []string {
	statuses := []Status{
		StatusAvailable,
		StatusOccupied,
		StatusCleaning,
		StatusDirty,
		StatusMaintenance,
		StatusOutOfOrder,
	}

	excluded := make([]string, 0, len(statuses))

	for _, s := range statuses {
		if !s.Bookable() {
			excluded = append(excluded, s.String())
		}
	}

	return excluded
}

type Room struct {
	ID          string `db:"id"`
	RoomNumber  string `db:"room_number"`
	RoomType    string `db:"room_type"`
	NightlyRate int64  `db:"nightly_rate"`
	Status      Status `db:"status"`
	model.Metadata
}
