package dto

import (
	"reception/internal/domains/room/model"
	"reception/shared"
	gDto "reception/shared/dto"
)

// UpdateRoomStatusRequest is the housekeeping/staff surface. Occupied is not
// accepted here; only the booking lifecycle moves rooms in and out of it.
type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available cleaning dirty maintenance out_of_order"`
}

type RoomResponse struct {
	ID          string `json:"id"`
	RoomNumber  string `json:"room_number"`
	RoomType    string `json:"room_type"`
	NightlyRate int64  `json:"nightly_rate"`
	Status      string `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.NightlyRate = model.NightlyRate
	r.Status = model.Status.String()
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
