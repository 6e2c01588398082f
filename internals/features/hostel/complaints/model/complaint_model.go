package model

import (
	"time"

	"github.com/google/uuid"
)

// Status keluhan. open → in_progress → resolved (boleh langsung open → resolved).
const (
	ComplaintStatusOpen       = "open"
	ComplaintStatusInProgress = "in_progress"
	ComplaintStatusResolved   = "resolved"
)

type ComplaintModel struct {
	ComplaintID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:complaint_id" json:"complaint_id"`

	ComplaintUserID   uuid.UUID  `gorm:"type:uuid;not null;column:complaint_user_id;index" json:"complaint_user_id"`
	ComplaintHostelID *uuid.UUID `gorm:"type:uuid;column:complaint_hostel_id" json:"complaint_hostel_id,omitempty"`

	ComplaintCategory    string `gorm:"size:50;not null;column:complaint_category" json:"complaint_category"`
	ComplaintDescription string `gorm:"type:text;not null;column:complaint_description" json:"complaint_description"`

	ComplaintStatus     string     `gorm:"type:varchar(15);not null;default:'open';column:complaint_status;index" json:"complaint_status"`
	ComplaintHandlerID  *uuid.UUID `gorm:"type:uuid;column:complaint_handler_id" json:"complaint_handler_id,omitempty"`
	ComplaintResolution *string    `gorm:"type:text;column:complaint_resolution" json:"complaint_resolution,omitempty"`

	ComplaintCreatedAt  time.Time  `gorm:"column:complaint_created_at;autoCreateTime" json:"complaint_created_at"`
	ComplaintUpdatedAt  *time.Time `gorm:"column:complaint_updated_at;autoUpdateTime" json:"complaint_updated_at,omitempty"`
	ComplaintResolvedAt *time.Time `gorm:"column:complaint_resolved_at" json:"complaint_resolved_at,omitempty"`
}

func (ComplaintModel) TableName() string { return "complaints" }

func ValidComplaintStatus(s string) bool {
	switch s {
	case ComplaintStatusOpen, ComplaintStatusInProgress, ComplaintStatusResolved:
		return true
	}
	return false
}
