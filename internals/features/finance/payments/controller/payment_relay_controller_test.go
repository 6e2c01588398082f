package controller

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	feeModel "hostelku_backend/internals/features/finance/fees/model"
	"hostelku_backend/internals/features/finance/payments/service"
)

const testSecret = "test-gateway-secret"

func newRelayApp() *fiber.App {
	service.InitGateway("rzp_test_key", testSecret)

	app := fiber.New()
	ctrl := NewPaymentRelayController(nil)
	app.Post("/api/verify-payment", ctrl.VerifyPayment)
	app.Get("/api/health", ctrl.Health)
	return app
}

func sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func postJSON(app *fiber.App, path, body string) (int, map[string]interface{}, error) {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	var out map[string]interface{}
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, out, nil
}

func TestVerifyPayment_MissingParameters(t *testing.T) {
	app := newRelayApp()

	for _, body := range []string{
		`{}`,
		`{"razorpay_order_id":"order_1"}`,
		`{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1"}`,
	} {
		status, out, err := postJSON(app, "/api/verify-payment", body)
		if err != nil {
			t.Fatalf("request gagal: %v", err)
		}
		if status != fiber.StatusBadRequest {
			t.Errorf("body %s: status %d, mau 400", body, status)
		}
		if out["success"] != false || out["error"] != "Missing required parameters" {
			t.Errorf("body %s: response %v", body, out)
		}
	}
}

func TestVerifyPayment_InvalidSignature(t *testing.T) {
	app := newRelayApp()

	status, out, err := postJSON(app, "/api/verify-payment",
		`{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"deadbeef"}`)
	if err != nil {
		t.Fatalf("request gagal: %v", err)
	}
	if status != fiber.StatusBadRequest {
		t.Fatalf("status %d, mau 400", status)
	}
	if out["success"] != false || out["error"] != "Invalid signature" {
		t.Fatalf("response %v", out)
	}
}

func TestVerifyPayment_ValidSignature(t *testing.T) {
	app := newRelayApp()

	payload, _ := sonic.Marshal(map[string]string{
		"razorpay_order_id":   "order_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  sign("order_1", "pay_1"),
	})
	status, out, err := postJSON(app, "/api/verify-payment", string(payload))
	if err != nil {
		t.Fatalf("request gagal: %v", err)
	}
	if status != fiber.StatusOK {
		t.Fatalf("status %d, mau 200", status)
	}
	if out["success"] != true || out["message"] != "Payment verified successfully" {
		t.Fatalf("response %v", out)
	}
}

func newCreateOrderApp(findBill func(uuid.UUID) (*feeModel.FeeBillModel, error)) *fiber.App {
	service.InitGateway("rzp_test_key", testSecret)

	app := fiber.New()
	ctrl := &PaymentRelayController{findBill: findBill}
	app.Post("/api/create-order", ctrl.CreateOrder)
	return app
}

func TestCreateOrder_AmountRequired(t *testing.T) {
	app := newCreateOrderApp(func(id uuid.UUID) (*feeModel.FeeBillModel, error) {
		t.Fatal("lookup tagihan tidak boleh terpanggil saat amount invalid")
		return nil, nil
	})

	for _, body := range []string{
		`{}`,
		`{"amount":0}`,
		`{"amount":-100}`,
	} {
		status, out, err := postJSON(app, "/api/create-order", body)
		if err != nil {
			t.Fatalf("request gagal: %v", err)
		}
		if status != fiber.StatusBadRequest {
			t.Errorf("body %s: status %d, mau 400", body, status)
		}
		if out["error"] != "Amount is required" {
			t.Errorf("body %s: response %v", body, out)
		}
	}
}

func TestCreateOrder_AmountMustMatchBill(t *testing.T) {
	billID := uuid.New()
	app := newCreateOrderApp(func(id uuid.UUID) (*feeModel.FeeBillModel, error) {
		if id != billID {
			t.Fatalf("lookup id %s, mau %s", id, billID)
		}
		return &feeModel.FeeBillModel{
			FeeBillID:       billID,
			FeeBillAmount:   50000,
			FeeBillCurrency: "INR",
		}, nil
	})

	body := fmt.Sprintf(`{"amount":60000,"currency":"INR","receipt":"%s"}`, billID)
	status, out, err := postJSON(app, "/api/create-order", body)
	if err != nil {
		t.Fatalf("request gagal: %v", err)
	}
	if status != fiber.StatusBadRequest {
		t.Fatalf("status %d, mau 400", status)
	}
	if out["error"] != "Amount does not match the referenced bill" {
		t.Fatalf("response %v", out)
	}
}

func TestCreateOrder_CurrencyDefaultsToINR(t *testing.T) {
	// tagihan USD + request tanpa currency: default INR harus ikut dibandingkan
	billID := uuid.New()
	app := newCreateOrderApp(func(id uuid.UUID) (*feeModel.FeeBillModel, error) {
		return &feeModel.FeeBillModel{
			FeeBillID:       billID,
			FeeBillAmount:   50000,
			FeeBillCurrency: "USD",
		}, nil
	})

	body := fmt.Sprintf(`{"amount":50000,"receipt":"%s"}`, billID)
	status, out, err := postJSON(app, "/api/create-order", body)
	if err != nil {
		t.Fatalf("request gagal: %v", err)
	}
	if status != fiber.StatusBadRequest {
		t.Fatalf("status %d, mau 400", status)
	}
	if out["error"] != "Amount does not match the referenced bill" {
		t.Fatalf("response %v", out)
	}
}

func TestCreateOrder_BillLookupFailure(t *testing.T) {
	// error DB selain not-found tidak boleh melewatkan guard harga
	billID := uuid.New()
	app := newCreateOrderApp(func(id uuid.UUID) (*feeModel.FeeBillModel, error) {
		return nil, errors.New("connection refused")
	})

	body := fmt.Sprintf(`{"amount":50000,"currency":"INR","receipt":"%s"}`, billID)
	status, out, err := postJSON(app, "/api/create-order", body)
	if err != nil {
		t.Fatalf("request gagal: %v", err)
	}
	if status != fiber.StatusInternalServerError {
		t.Fatalf("status %d, mau 500", status)
	}
	if out["error"] != "Failed to validate order" {
		t.Fatalf("response %v", out)
	}
}

func TestHealth(t *testing.T) {
	app := newRelayApp()

	req := httptest.NewRequest("GET", "/api/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request gagal: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d, mau 200", resp.StatusCode)
	}
	raw, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	if err := sonic.Unmarshal(raw, &out); err != nil {
		t.Fatalf("body bukan JSON: %v", err)
	}
	if out["status"] != "ok" || out["timestamp"] == nil {
		t.Fatalf("response %v", out)
	}
}
