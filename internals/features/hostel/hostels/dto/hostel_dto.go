package dto

import (
	"github.com/google/uuid"

	"hostelku_backend/internals/features/hostel/hostels/model"
)

// ================== REQUEST ==================
type CreateHostelRequest struct {
	HostelName     string     `json:"hostel_name" validate:"required,min=3,max=100"`
	HostelAddress  string     `json:"hostel_address" validate:"required"`
	HostelCapacity int        `json:"hostel_capacity" validate:"required,min=1"`
	HostelWardenID *uuid.UUID `json:"hostel_warden_id,omitempty"`
}

type UpdateHostelRequest struct {
	HostelName     *string    `json:"hostel_name,omitempty" validate:"omitempty,min=3,max=100"`
	HostelAddress  *string    `json:"hostel_address,omitempty"`
	HostelCapacity *int       `json:"hostel_capacity,omitempty" validate:"omitempty,min=1"`
	HostelWardenID *uuid.UUID `json:"hostel_warden_id,omitempty"`
}

type CreateRoomRequest struct {
	RoomNumber   string `json:"room_number" validate:"required,max=20"`
	RoomCapacity int    `json:"room_capacity" validate:"required,min=1"`
}

// ================ CONVERSION =================
func (r *CreateHostelRequest) ToModel() *model.HostelModel {
	return &model.HostelModel{
		HostelName:     r.HostelName,
		HostelAddress:  r.HostelAddress,
		HostelCapacity: r.HostelCapacity,
		HostelWardenID: r.HostelWardenID,
	}
}
