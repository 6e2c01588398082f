package service

import (
	"fmt"
	"log"

	razorpay "github.com/razorpay/razorpay-go"
)

var (
	gatewayClient *razorpay.Client
	gatewaySecret string
)

// InitGateway menginisialisasi client Razorpay untuk payment relay.
func InitGateway(keyID, keySecret string) {
	if keyID == "" || keySecret == "" {
		log.Println("⚠️ Razorpay key belum diset, payment relay tidak akan berfungsi")
	}
	gatewayClient = razorpay.NewClient(keyID, keySecret)
	gatewaySecret = keySecret
}

// GatewaySecret dipakai untuk verifikasi signature callback.
func GatewaySecret() string { return gatewaySecret }

// CreateOrder membuat order di gateway. Amount dalam satuan terkecil (paise).
func CreateOrder(amount int64, currency, receipt string, notes map[string]interface{}) (map[string]interface{}, error) {
	if gatewayClient == nil {
		return nil, fmt.Errorf("gateway belum diinisialisasi")
	}

	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
	}
	if receipt != "" {
		data["receipt"] = receipt
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	return gatewayClient.Order.Create(data, nil)
}

// FetchPayment mengambil status pembayaran dari gateway.
func FetchPayment(paymentID string) (map[string]interface{}, error) {
	if gatewayClient == nil {
		return nil, fmt.Errorf("gateway belum diinisialisasi")
	}
	return gatewayClient.Payment.Fetch(paymentID, nil, nil)
}
