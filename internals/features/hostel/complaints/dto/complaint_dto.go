package dto

import (
	"github.com/google/uuid"

	"hostelku_backend/internals/features/hostel/complaints/model"
)

type CreateComplaintRequest struct {
	HostelID    *uuid.UUID `json:"hostel_id"`
	Category    string     `json:"category" validate:"required,max=50"`
	Description string     `json:"description" validate:"required,min=10"`
}

type UpdateComplaintStatusRequest struct {
	Status     string  `json:"status" validate:"required,oneof=open in_progress resolved"`
	Resolution *string `json:"resolution"`
}

func (r *CreateComplaintRequest) ToModel(userID uuid.UUID) *model.ComplaintModel {
	return &model.ComplaintModel{
		ComplaintUserID:      userID,
		ComplaintHostelID:    r.HostelID,
		ComplaintCategory:    r.Category,
		ComplaintDescription: r.Description,
		ComplaintStatus:      model.ComplaintStatusOpen,
	}
}
