package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	feeModel "hostelku_backend/internals/features/finance/fees/model"
)

var (
	// ErrInvalidSignature: signature_key notifikasi tidak cocok dengan server key
	ErrInvalidSignature = errors.New("signature notifikasi tidak valid")
	// ErrBillNotFound: order_id tidak menunjuk tagihan manapun
	ErrBillNotFound = errors.New("tagihan untuk order_id tidak ditemukan")
)

// MidtransNotification: payload webhook Midtrans. Field lain di payload aman diabaikan.
type MidtransNotification struct {
	TransactionStatus string `json:"transaction_status"` // capture, settlement, pending, deny, cancel, expire, ...
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"` // string dari Midtrans
	FraudStatus       string `json:"fraud_status"`
}

// ValidSignature: SHA512(order_id + status_code + gross_amount + serverKey)
// harus sama dengan signature_key yang dikirim Midtrans.
func (n *MidtransNotification) ValidSignature(serverKey string) bool {
	want := strings.ToLower(strings.TrimSpace(n.SignatureKey))
	if want == "" {
		return false
	}
	return sha512sum(n.OrderID+n.StatusCode+n.GrossAmount+serverKey) == want
}

func sha512sum(s string) string {
	h := sha512.Sum512([]byte(s))
	return hex.EncodeToString(h[:])
}

// HandleFeeStatusWebhook memproses notifikasi Midtrans yang SUDAH lolos
// verifikasi signature di controller.
func HandleFeeStatusWebhook(db *gorm.DB, notif MidtransNotification) error {
	var bill feeModel.FeeBillModel
	if err := db.Where("fee_bill_order_id = ?", notif.OrderID).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBillNotFound
		}
		return err
	}

	switch notif.TransactionStatus {
	case "capture", "settlement":
		now := time.Now()
		bill.FeeBillStatus = feeModel.StatusPaid
		bill.FeeBillPaidAt = &now
	case "expire":
		bill.FeeBillStatus = feeModel.StatusExpired
	case "cancel", "deny":
		bill.FeeBillStatus = feeModel.StatusUnpaid
	default:
		log.Println("[INFO] Status tidak diproses:", notif.TransactionStatus)
		return nil
	}

	if err := db.Save(&bill).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status tagihan:", err)
		return err
	}

	return nil
}
