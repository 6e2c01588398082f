package controller

import (
	"crypto/sha512"
	"encoding/hex"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"hostelku_backend/internals/features/finance/fees/service"
)

const testServerKey = "SB-Mid-server-test"

func newWebhookApp(apply func(service.MidtransNotification) error) *fiber.App {
	service.InitMidtrans(testServerKey)

	app := fiber.New()
	ctrl := &FeeController{applyWebhook: apply}
	app.Post("/api/fees/notification", ctrl.Notification)
	return app
}

func signNotif(orderID, statusCode, grossAmount string) string {
	h := sha512.Sum512([]byte(orderID + statusCode + grossAmount + testServerKey))
	return hex.EncodeToString(h[:])
}

func postNotif(t *testing.T, app *fiber.App, notif service.MidtransNotification) (int, map[string]interface{}) {
	t.Helper()
	payload, err := sonic.Marshal(notif)
	if err != nil {
		t.Fatalf("marshal gagal: %v", err)
	}
	req := httptest.NewRequest("POST", "/api/fees/notification", strings.NewReader(string(payload)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request gagal: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	if err := sonic.Unmarshal(raw, &out); err != nil {
		t.Fatalf("body bukan JSON: %v", err)
	}
	return resp.StatusCode, out
}

func TestNotification_RejectsInvalidSignature(t *testing.T) {
	app := newWebhookApp(func(service.MidtransNotification) error {
		t.Fatal("notifikasi bersignature salah tidak boleh menyentuh tagihan")
		return nil
	})

	notif := service.MidtransNotification{
		OrderID:           "FEE-1a2b3c4d-1700000000",
		StatusCode:        "200",
		GrossAmount:       "500000.00",
		TransactionStatus: "settlement",
		SignatureKey:      "bukan-signature",
	}
	status, out := postNotif(t, app, notif)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("status %d, mau 401", status)
	}
	if out["status"] != "error" {
		t.Fatalf("response %v", out)
	}

	// tanpa signature sama sekali
	notif.SignatureKey = ""
	if status, _ := postNotif(t, app, notif); status != fiber.StatusUnauthorized {
		t.Fatalf("signature kosong: status %d, mau 401", status)
	}
}

func TestNotification_UnknownOrderIsIgnoredWith200(t *testing.T) {
	app := newWebhookApp(func(service.MidtransNotification) error {
		return service.ErrBillNotFound
	})

	notif := service.MidtransNotification{
		OrderID:           "FEE-asing-1700000000",
		StatusCode:        "200",
		GrossAmount:       "500000.00",
		TransactionStatus: "settlement",
	}
	notif.SignatureKey = signNotif(notif.OrderID, notif.StatusCode, notif.GrossAmount)

	status, out := postNotif(t, app, notif)
	if status != fiber.StatusOK {
		t.Fatalf("order asing harus dibalas 200 (anti retry), dapat %d", status)
	}
	if out["status"] != "ignored" {
		t.Fatalf("response %v", out)
	}
}

func TestNotification_ValidSignatureApplied(t *testing.T) {
	var applied *service.MidtransNotification
	app := newWebhookApp(func(n service.MidtransNotification) error {
		applied = &n
		return nil
	})

	notif := service.MidtransNotification{
		OrderID:           "FEE-1a2b3c4d-1700000000",
		StatusCode:        "200",
		GrossAmount:       "500000.00",
		TransactionStatus: "settlement",
	}
	notif.SignatureKey = signNotif(notif.OrderID, notif.StatusCode, notif.GrossAmount)

	status, out := postNotif(t, app, notif)
	if status != fiber.StatusOK {
		t.Fatalf("status %d, mau 200", status)
	}
	if out["status"] != "success" {
		t.Fatalf("response %v", out)
	}
	if applied == nil || applied.OrderID != notif.OrderID || applied.TransactionStatus != "settlement" {
		t.Fatalf("notifikasi sah harus diteruskan utuh, dapat %+v", applied)
	}
}
