package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func signPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature_Valid(t *testing.T) {
	secret := "rahasia-gateway"
	orderID := "order_N5qGmvXjP2"
	paymentID := "pay_N5qHf1aRw8"

	sig := signPayload(orderID, paymentID, secret)
	if !VerifySignature(orderID, paymentID, sig, secret) {
		t.Fatal("signature sah harus lolos verifikasi")
	}
}

func TestVerifySignature_Tampered(t *testing.T) {
	secret := "rahasia-gateway"
	orderID := "order_N5qGmvXjP2"
	paymentID := "pay_N5qHf1aRw8"
	sig := signPayload(orderID, paymentID, secret)

	// satu karakter hex diganti
	tampered := []byte(sig)
	if tampered[0] == 'a' {
		tampered[0] = 'b'
	} else {
		tampered[0] = 'a'
	}
	if VerifySignature(orderID, paymentID, string(tampered), secret) {
		t.Error("signature yang diubah satu karakter harus ditolak")
	}

	// payload diganti: order ID lain dengan signature lama
	if VerifySignature("order_lain", paymentID, sig, secret) {
		t.Error("signature untuk order lain harus ditolak")
	}

	// secret beda
	if VerifySignature(orderID, paymentID, sig, "secret-salah") {
		t.Error("secret berbeda harus ditolak")
	}
}

func TestVerifySignature_Empty(t *testing.T) {
	if VerifySignature("order", "pay", "", "secret") {
		t.Error("signature kosong harus ditolak")
	}
	if VerifySignature("order", "pay", "deadbeef", "") {
		t.Error("secret kosong dengan signature asal harus ditolak")
	}
}
