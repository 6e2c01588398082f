package dto

import (
	"time"

	"github.com/google/uuid"

	"hostelku_backend/internals/features/attendance/events/model"
)

// ================== REQUEST ==================
type PunchRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// ================== RESPONSE ==================
type AttendanceEventResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Timestamp   string    `json:"timestamp"`
	Direction   string    `json:"direction"`
	IsLate      bool      `json:"is_late"`
	Regularized bool      `json:"regularized"`
	Reason      *string   `json:"reason,omitempty"`
}

// ================ CONVERSION =================
func ToAttendanceEventResponse(m *model.AttendanceEventModel) *AttendanceEventResponse {
	return &AttendanceEventResponse{
		ID:          m.AttendanceEventID,
		UserID:      m.AttendanceEventUserID,
		Timestamp:   m.AttendanceEventTimestamp.Format(time.RFC3339),
		Direction:   m.AttendanceEventDirection,
		IsLate:      m.AttendanceEventIsLate,
		Regularized: m.AttendanceEventRegularized,
		Reason:      m.AttendanceEventReason,
	}
}

func ToAttendanceEventResponseList(models []model.AttendanceEventModel) []AttendanceEventResponse {
	var result []AttendanceEventResponse
	for _, m := range models {
		result = append(result, *ToAttendanceEventResponse(&m))
	}
	return result
}
