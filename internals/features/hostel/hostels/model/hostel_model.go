package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HostelModel struct {
	HostelID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:hostel_id" json:"hostel_id"`

	HostelName     string  `gorm:"size:100;not null;column:hostel_name" json:"hostel_name"`
	HostelAddress  string  `gorm:"type:text;not null;column:hostel_address" json:"hostel_address"`
	HostelCapacity int     `gorm:"not null;default:0;column:hostel_capacity" json:"hostel_capacity"`
	HostelWardenID *uuid.UUID `gorm:"type:uuid;column:hostel_warden_id" json:"hostel_warden_id,omitempty"`

	HostelCreatedAt time.Time      `gorm:"column:hostel_created_at;autoCreateTime" json:"hostel_created_at"`
	HostelUpdatedAt *time.Time     `gorm:"column:hostel_updated_at;autoUpdateTime" json:"hostel_updated_at,omitempty"`
	HostelDeletedAt gorm.DeletedAt `gorm:"column:hostel_deleted_at;index" json:"hostel_deleted_at,omitempty"`
}

func (HostelModel) TableName() string { return "hostels" }
