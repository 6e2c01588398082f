package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomModel struct {
	RoomID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:room_id" json:"room_id"`

	RoomHostelID uuid.UUID `gorm:"type:uuid;not null;column:room_hostel_id;index" json:"room_hostel_id"`
	RoomNumber   string    `gorm:"size:20;not null;column:room_number" json:"room_number"`
	RoomCapacity int       `gorm:"not null;default:1;column:room_capacity" json:"room_capacity"`
	RoomOccupied int       `gorm:"not null;default:0;column:room_occupied" json:"room_occupied"`

	RoomCreatedAt time.Time      `gorm:"column:room_created_at;autoCreateTime" json:"room_created_at"`
	RoomUpdatedAt *time.Time     `gorm:"column:room_updated_at;autoUpdateTime" json:"room_updated_at,omitempty"`
	RoomDeletedAt gorm.DeletedAt `gorm:"column:room_deleted_at;index" json:"room_deleted_at,omitempty"`
}

func (RoomModel) TableName() string { return "rooms" }

func (m *RoomModel) HasSpace() bool { return m.RoomOccupied < m.RoomCapacity }
