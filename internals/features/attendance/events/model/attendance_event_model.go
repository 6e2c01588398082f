package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Arah punch
const (
	DirectionPunchIn  = "punch_in"
	DirectionPunchOut = "punch_out"
)

// AttendanceEventModel: log punch append-only.
// Event tidak pernah di-update/di-delete; status harian diturunkan dari log.
type AttendanceEventModel struct {
	AttendanceEventID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_event_id" json:"attendance_event_id"`

	AttendanceEventUserID    uuid.UUID `gorm:"type:uuid;not null;column:attendance_event_user_id;index:idx_attendance_events_user_ts,priority:1" json:"attendance_event_user_id"`
	AttendanceEventTimestamp time.Time `gorm:"type:timestamptz;not null;column:attendance_event_timestamp;index:idx_attendance_events_user_ts,priority:2" json:"attendance_event_timestamp"`

	AttendanceEventDirection   string `gorm:"type:varchar(10);not null;column:attendance_event_direction" json:"attendance_event_direction"`
	AttendanceEventIsLate      bool   `gorm:"not null;default:false;column:attendance_event_is_late" json:"attendance_event_is_late"`
	AttendanceEventRegularized bool   `gorm:"not null;default:false;column:attendance_event_regularized" json:"attendance_event_regularized"`

	// {"lat": .., "lng": ..} - kosong untuk event hasil regularisasi
	AttendanceEventLocation datatypes.JSON `gorm:"type:jsonb;column:attendance_event_location" json:"attendance_event_location,omitempty"`

	// diisi hanya untuk event hasil regularisasi
	AttendanceEventReason           *string    `gorm:"column:attendance_event_reason" json:"attendance_event_reason,omitempty"`
	AttendanceEventRegularizationID *uuid.UUID `gorm:"type:uuid;column:attendance_event_regularization_id;index" json:"attendance_event_regularization_id,omitempty"`

	AttendanceEventCreatedAt time.Time `gorm:"column:attendance_event_created_at;autoCreateTime" json:"attendance_event_created_at"`
}

func (AttendanceEventModel) TableName() string { return "attendance_events" }

func (m *AttendanceEventModel) IsPunchIn() bool  { return m.AttendanceEventDirection == DirectionPunchIn }
func (m *AttendanceEventModel) IsPunchOut() bool { return m.AttendanceEventDirection == DirectionPunchOut }
