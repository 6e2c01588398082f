package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"
)

func midtransSign(orderID, statusCode, grossAmount, serverKey string) string {
	h := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(h[:])
}

func TestValidSignature_Valid(t *testing.T) {
	serverKey := "SB-Mid-server-abc123"
	notif := MidtransNotification{
		OrderID:           "FEE-1a2b3c4d-1700000000",
		StatusCode:        "200",
		GrossAmount:       "500000.00",
		TransactionStatus: "settlement",
	}
	notif.SignatureKey = midtransSign(notif.OrderID, notif.StatusCode, notif.GrossAmount, serverKey)

	if !notif.ValidSignature(serverKey) {
		t.Fatal("signature sah harus lolos verifikasi")
	}
}

func TestValidSignature_Rejected(t *testing.T) {
	serverKey := "SB-Mid-server-abc123"
	notif := MidtransNotification{
		OrderID:           "FEE-1a2b3c4d-1700000000",
		StatusCode:        "200",
		GrossAmount:       "500000.00",
		TransactionStatus: "settlement",
	}
	good := midtransSign(notif.OrderID, notif.StatusCode, notif.GrossAmount, serverKey)

	// tanpa signature
	notif.SignatureKey = ""
	if notif.ValidSignature(serverKey) {
		t.Error("signature kosong harus ditolak")
	}

	// gross_amount diubah setelah ditandatangani
	notif.SignatureKey = good
	notif.GrossAmount = "1.00"
	if notif.ValidSignature(serverKey) {
		t.Error("gross_amount yang diubah harus ditolak")
	}
	notif.GrossAmount = "500000.00"

	// server key lain
	if notif.ValidSignature("server-key-lain") {
		t.Error("server key berbeda harus ditolak")
	}

	// payload order lain dengan signature lama
	notif.OrderID = "FEE-lain-1700000001"
	if notif.ValidSignature(serverKey) {
		t.Error("signature untuk order lain harus ditolak")
	}
}
