package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"hostelku_backend/internals/features/hostel/notifications/model"
)

type CreateNotificationRequest struct {
	Title    string   `json:"title" validate:"required,max=150"`
	Body     string   `json:"body" validate:"required"`
	Audience []string `json:"audience" validate:"omitempty,dive,oneof=student parent staff warden admin"`
}

type NotificationResponse struct {
	model.NotificationModel
	IsRead bool `json:"is_read"`
}

func (r *CreateNotificationRequest) ToModel(authorID uuid.UUID) *model.NotificationModel {
	return &model.NotificationModel{
		NotificationTitle:    r.Title,
		NotificationBody:     r.Body,
		NotificationAudience: pq.StringArray(r.Audience),
		NotificationAuthorID: authorID,
	}
}
