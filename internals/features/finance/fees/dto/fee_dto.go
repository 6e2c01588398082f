package dto

import (
	"github.com/google/uuid"

	"hostelku_backend/internals/features/finance/fees/model"
)

// ================== REQUEST ==================
type CreateFeeBillRequest struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	Title    string    `json:"title" validate:"required,min=3,max=100"`
	Amount   int64     `json:"amount" validate:"required,min=1"` // satuan terkecil
	Currency string    `json:"currency" validate:"omitempty,len=3"`
	DueDate  string    `json:"due_date" validate:"required"` // YYYY-MM-DD
}

// ================== RESPONSE ==================
type FeeBillResponse struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Title    string    `json:"title"`
	Amount   int64     `json:"amount"`
	Currency string    `json:"currency"`
	DueDate  string    `json:"due_date"`
	Status   string    `json:"status"`
	PaidAt   *string   `json:"paid_at,omitempty"`
}

// ================ CONVERSION =================
func ToFeeBillResponse(m *model.FeeBillModel) *FeeBillResponse {
	resp := &FeeBillResponse{
		ID:       m.FeeBillID,
		UserID:   m.FeeBillUserID,
		Title:    m.FeeBillTitle,
		Amount:   m.FeeBillAmount,
		Currency: m.FeeBillCurrency,
		DueDate:  m.FeeBillDueDate.Format("2006-01-02"),
		Status:   m.FeeBillStatus,
	}
	if m.FeeBillPaidAt != nil {
		s := m.FeeBillPaidAt.Format("2006-01-02 15:04:05")
		resp.PaidAt = &s
	}
	return resp
}

func ToFeeBillResponseList(models []model.FeeBillModel) []FeeBillResponse {
	var result []FeeBillResponse
	for _, m := range models {
		result = append(result, *ToFeeBillResponse(&m))
	}
	return result
}
