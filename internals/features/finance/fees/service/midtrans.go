package service

import (
	"hostelku_backend/internals/features/finance/fees/model"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var (
	SnapClient        snap.Client
	midtransServerKey string
)

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
// Server key juga dipakai untuk verifikasi signature webhook.
func InitMidtrans(serverKey string) {
	midtransServerKey = serverKey
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// MidtransServerKey dipakai controller webhook untuk verifikasi signature.
func MidtransServerKey() string { return midtransServerKey }

// GenerateSnapToken membuat token Snap Midtrans untuk satu tagihan.
func GenerateSnapToken(bill model.FeeBillModel, orderID string, name string, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: bill.FeeBillAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}

	return resp.Token, nil
}
