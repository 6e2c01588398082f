package dto

import (
	"time"

	"github.com/google/uuid"

	"hostelku_backend/internals/features/attendance/regularizations/model"
)

// ================== REQUEST ==================
type SubmitRegularizationRequest struct {
	Date    string  `json:"date" validate:"required"` // YYYY-MM-DD
	Reason  string  `json:"reason" validate:"required,min=3"`
	InTime  *string `json:"in_time,omitempty"`  // "HH:MM"
	OutTime *string `json:"out_time,omitempty"` // "HH:MM"
}

type ReviewRegularizationRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
}

// ================== RESPONSE ==================
type RegularizationResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Date        string     `json:"date"`
	Reason      string     `json:"reason"`
	InTime      *string    `json:"in_time,omitempty"`
	OutTime     *string    `json:"out_time,omitempty"`
	Status      string     `json:"status"`
	ReviewerID  *uuid.UUID `json:"reviewer_id,omitempty"`
	CreatedAt   string     `json:"created_at"`
	ProcessedAt *string    `json:"processed_at,omitempty"`
}

// ================ CONVERSION =================
func ToRegularizationResponse(m *model.RegularizationRequestModel) *RegularizationResponse {
	resp := &RegularizationResponse{
		ID:         m.RegularizationRequestID,
		UserID:     m.RegularizationRequestUserID,
		Date:       m.RegularizationRequestDate.Format("2006-01-02"),
		Reason:     m.RegularizationRequestReason,
		InTime:     m.RegularizationRequestInTime,
		OutTime:    m.RegularizationRequestOutTime,
		Status:     m.RegularizationRequestStatus,
		ReviewerID: m.RegularizationRequestReviewerID,
		CreatedAt:  m.RegularizationRequestCreatedAt.Format(time.RFC3339),
	}
	if m.RegularizationRequestProcessedAt != nil {
		s := m.RegularizationRequestProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &s
	}
	return resp
}

func ToRegularizationResponseList(models []model.RegularizationRequestModel) []RegularizationResponse {
	var result []RegularizationResponse
	for _, m := range models {
		result = append(result, *ToRegularizationResponse(&m))
	}
	return result
}
