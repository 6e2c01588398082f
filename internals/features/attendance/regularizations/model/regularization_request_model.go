package model

import (
	"time"

	"github.com/google/uuid"
)

// Status permintaan regularisasi. pending → approved|rejected, terminal.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type RegularizationRequestModel struct {
	RegularizationRequestID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:regularization_request_id" json:"regularization_request_id"`

	RegularizationRequestUserID uuid.UUID `gorm:"type:uuid;not null;column:regularization_request_user_id;index" json:"regularization_request_user_id"`
	RegularizationRequestDate   time.Time `gorm:"type:date;not null;column:regularization_request_date" json:"regularization_request_date"`
	RegularizationRequestReason string    `gorm:"type:text;not null;column:regularization_request_reason" json:"regularization_request_reason"`

	// jam yang diminta, format "HH:MM"; minimal satu harus terisi
	RegularizationRequestInTime  *string `gorm:"type:varchar(5);column:regularization_request_in_time" json:"regularization_request_in_time,omitempty"`
	RegularizationRequestOutTime *string `gorm:"type:varchar(5);column:regularization_request_out_time" json:"regularization_request_out_time,omitempty"`

	RegularizationRequestStatus     string     `gorm:"type:varchar(10);not null;default:'pending';column:regularization_request_status;index" json:"regularization_request_status"`
	RegularizationRequestReviewerID *uuid.UUID `gorm:"type:uuid;column:regularization_request_reviewer_id" json:"regularization_request_reviewer_id,omitempty"`

	RegularizationRequestCreatedAt   time.Time  `gorm:"column:regularization_request_created_at;autoCreateTime" json:"regularization_request_created_at"`
	RegularizationRequestProcessedAt *time.Time `gorm:"column:regularization_request_processed_at" json:"regularization_request_processed_at,omitempty"`
}

func (RegularizationRequestModel) TableName() string { return "regularization_requests" }

func (m *RegularizationRequestModel) IsPending() bool {
	return m.RegularizationRequestStatus == StatusPending
}
