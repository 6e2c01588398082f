package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	feeModel "hostelku_backend/internals/features/finance/fees/model"
	"hostelku_backend/internals/features/finance/payments/service"
)

// PaymentRelayController: proxy tipis ke gateway pembayaran.
// Format response di sini mengikuti kontrak klien yang sudah jalan,
// bukan envelope JSON standar internal.
type PaymentRelayController struct {
	DB       *gorm.DB
	findBill func(id uuid.UUID) (*feeModel.FeeBillModel, error)
}

func NewPaymentRelayController(db *gorm.DB) *PaymentRelayController {
	ctrl := &PaymentRelayController{DB: db}
	ctrl.findBill = func(id uuid.UUID) (*feeModel.FeeBillModel, error) {
		var bill feeModel.FeeBillModel
		if err := db.First(&bill, "fee_bill_id = ?", id).Error; err != nil {
			return nil, err
		}
		return &bill, nil
	}
	return ctrl
}

type createOrderRequest struct {
	Amount   *int64                 `json:"amount"` // satuan terkecil (paise)
	Currency string                 `json:"currency"`
	Receipt  string                 `json:"receipt"`
	Notes    map[string]interface{} `json:"notes"`
}

/* ===================== CREATE ORDER ===================== */
// POST /api/create-order
func (ctrl *PaymentRelayController) CreateOrder(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Amount == nil || *req.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Amount is required",
		})
	}
	if req.Currency == "" {
		req.Currency = "INR"
	}

	// Guard server-side: kalau receipt menunjuk tagihan, amount harus sama
	// dengan tagihan - klien tidak boleh menentukan harga sendiri.
	if billID, err := uuid.Parse(strings.TrimSpace(req.Receipt)); err == nil {
		bill, err := ctrl.findBill(billID)
		switch {
		case err == nil:
			if bill.FeeBillAmount != *req.Amount || !strings.EqualFold(bill.FeeBillCurrency, req.Currency) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Amount does not match the referenced bill",
				})
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// receipt hanya kebetulan berbentuk UUID, perlakukan sebagai opaque
		default:
			log.Printf("[ERROR] validasi amount tagihan gagal: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to validate order",
				"details": err.Error(),
			})
		}
	}

	order, err := service.CreateOrder(*req.Amount, req.Currency, req.Receipt, req.Notes)
	if err != nil {
		log.Printf("[ERROR] create-order gagal: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to create order",
			"details": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(order)
}

type verifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

/* ===================== VERIFY PAYMENT ===================== */
// POST /api/verify-payment
func (ctrl *PaymentRelayController) VerifyPayment(c *fiber.Ctx) error {
	var req verifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Missing required parameters",
		})
	}

	// fail-fast sebelum hitung HMAC
	if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Missing required parameters",
		})
	}

	if !service.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, service.GatewaySecret()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid signature",
		})
	}

	// Relay tidak menyimpan hasil verifikasi; pencatatan ada di alur admisi/fee.
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Payment verified successfully",
	})
}

/* ===================== PAYMENT STATUS ===================== */
// GET /api/payment/:paymentId
func (ctrl *PaymentRelayController) GetPayment(c *fiber.Ctx) error {
	paymentID := strings.TrimSpace(c.Params("paymentId"))
	if paymentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Payment id is required",
		})
	}

	payment, err := service.FetchPayment(paymentID)
	if err != nil {
		log.Printf("[ERROR] fetch payment gagal: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch payment",
			"details": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(payment)
}

/* ===================== HEALTH ===================== */
// GET /api/health
func (ctrl *PaymentRelayController) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
