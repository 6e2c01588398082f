package model

import (
	"time"

	"github.com/google/uuid"
)

// Status pendaftaran. pending → approved|rejected, terminal.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type AdmissionModel struct {
	AdmissionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:admission_id" json:"admission_id"`

	AdmissionUserID   uuid.UUID `gorm:"type:uuid;not null;column:admission_user_id;index" json:"admission_user_id"`
	AdmissionHostelID uuid.UUID `gorm:"type:uuid;not null;column:admission_hostel_id" json:"admission_hostel_id"`

	AdmissionFullName      string  `gorm:"size:100;not null;column:admission_full_name" json:"admission_full_name"`
	AdmissionGuardianName  string  `gorm:"size:100;not null;column:admission_guardian_name" json:"admission_guardian_name"`
	AdmissionGuardianPhone string  `gorm:"size:20;not null;column:admission_guardian_phone" json:"admission_guardian_phone"`
	AdmissionCourse        *string `gorm:"size:100;column:admission_course" json:"admission_course,omitempty"`

	AdmissionStatus     string     `gorm:"type:varchar(10);not null;default:'pending';column:admission_status;index" json:"admission_status"`
	AdmissionReviewerID *uuid.UUID `gorm:"type:uuid;column:admission_reviewer_id" json:"admission_reviewer_id,omitempty"`
	AdmissionRoomID     *uuid.UUID `gorm:"type:uuid;column:admission_room_id" json:"admission_room_id,omitempty"`

	// jejak pembayaran biaya admisi via payment relay
	AdmissionPaymentOrderID  *string    `gorm:"size:64;column:admission_payment_order_id" json:"admission_payment_order_id,omitempty"`
	AdmissionPaymentID       *string    `gorm:"size:64;column:admission_payment_id" json:"admission_payment_id,omitempty"`
	AdmissionPaymentVerified bool       `gorm:"not null;default:false;column:admission_payment_verified" json:"admission_payment_verified"`
	AdmissionPaymentAt       *time.Time `gorm:"column:admission_payment_at" json:"admission_payment_at,omitempty"`

	AdmissionCreatedAt   time.Time  `gorm:"column:admission_created_at;autoCreateTime" json:"admission_created_at"`
	AdmissionProcessedAt *time.Time `gorm:"column:admission_processed_at" json:"admission_processed_at,omitempty"`
}

func (AdmissionModel) TableName() string { return "admissions" }

func (m *AdmissionModel) IsPending() bool { return m.AdmissionStatus == StatusPending }
