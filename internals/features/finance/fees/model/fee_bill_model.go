package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusUnpaid  = "unpaid"
	StatusPaid    = "paid"
	StatusExpired = "expired"
)

// FeeBillModel: tagihan biaya hostel per user. Amount dalam satuan terkecil
// (paise untuk INR) supaya tidak ada pecahan mengambang.
type FeeBillModel struct {
	FeeBillID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:fee_bill_id" json:"fee_bill_id"`

	FeeBillUserID   uuid.UUID `gorm:"type:uuid;not null;column:fee_bill_user_id;index" json:"fee_bill_user_id"`
	FeeBillTitle    string    `gorm:"size:100;not null;column:fee_bill_title" json:"fee_bill_title"`
	FeeBillAmount   int64     `gorm:"not null;column:fee_bill_amount" json:"fee_bill_amount"`
	FeeBillCurrency string    `gorm:"size:3;not null;default:'INR';column:fee_bill_currency" json:"fee_bill_currency"`
	FeeBillDueDate  time.Time `gorm:"type:date;not null;column:fee_bill_due_date" json:"fee_bill_due_date"`

	FeeBillStatus  string     `gorm:"type:varchar(10);not null;default:'unpaid';column:fee_bill_status;index" json:"fee_bill_status"`
	FeeBillOrderID *string    `gorm:"size:64;column:fee_bill_order_id;index" json:"fee_bill_order_id,omitempty"`
	FeeBillPaidAt  *time.Time `gorm:"column:fee_bill_paid_at" json:"fee_bill_paid_at,omitempty"`

	FeeBillCreatedAt time.Time  `gorm:"column:fee_bill_created_at;autoCreateTime" json:"fee_bill_created_at"`
	FeeBillUpdatedAt *time.Time `gorm:"column:fee_bill_updated_at;autoUpdateTime" json:"fee_bill_updated_at,omitempty"`
}

func (FeeBillModel) TableName() string { return "fee_bills" }
