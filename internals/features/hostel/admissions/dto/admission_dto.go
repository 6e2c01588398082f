package dto

import (
	"github.com/google/uuid"

	"hostelku_backend/internals/features/hostel/admissions/model"
)

// ================== REQUEST ==================
type SubmitAdmissionRequest struct {
	HostelID      uuid.UUID `json:"hostel_id" validate:"required"`
	FullName      string    `json:"full_name" validate:"required,min=3,max=100"`
	GuardianName  string    `json:"guardian_name" validate:"required,min=3,max=100"`
	GuardianPhone string    `json:"guardian_phone" validate:"required,max=20"`
	Course        *string   `json:"course,omitempty" validate:"omitempty,max=100"`
}

type ReviewAdmissionRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
}

type RecordAdmissionPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

// ================ CONVERSION =================
func (r *SubmitAdmissionRequest) ToModel(userID uuid.UUID) *model.AdmissionModel {
	return &model.AdmissionModel{
		AdmissionUserID:        userID,
		AdmissionHostelID:      r.HostelID,
		AdmissionFullName:      r.FullName,
		AdmissionGuardianName:  r.GuardianName,
		AdmissionGuardianPhone: r.GuardianPhone,
		AdmissionCourse:        r.Course,
		AdmissionStatus:        model.StatusPending,
	}
}
