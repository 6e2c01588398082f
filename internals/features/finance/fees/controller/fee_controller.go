package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/finance/fees/dto"
	"hostelku_backend/internals/features/finance/fees/model"
	"hostelku_backend/internals/features/finance/fees/service"
	userModel "hostelku_backend/internals/features/users/user/model"
	helper "hostelku_backend/internals/helpers"
	authMw "hostelku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type FeeController struct {
	DB           *gorm.DB
	applyWebhook func(notif service.MidtransNotification) error
}

func NewFeeController(db *gorm.DB) *FeeController {
	ctrl := &FeeController{DB: db}
	ctrl.applyWebhook = func(notif service.MidtransNotification) error {
		return service.HandleFeeStatusWebhook(db, notif)
	}
	return ctrl
}

/* ===================== CREATE BILL (admin) ===================== */
// POST /api/a/fees
func (ctrl *FeeController) Create(c *fiber.Ctx) error {
	var req dto.CreateFeeBillRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format due_date harus YYYY-MM-DD")
	}

	bill := model.FeeBillModel{
		FeeBillUserID:  req.UserID,
		FeeBillTitle:   req.Title,
		FeeBillAmount:  req.Amount,
		FeeBillDueDate: dueDate,
	}
	if req.Currency != "" {
		bill.FeeBillCurrency = req.Currency
	}

	if err := ctrl.DB.Create(&bill).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat tagihan")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tagihan dibuat", dto.ToFeeBillResponse(&bill))
}

/* ===================== MY BILLS ===================== */
// GET /api/u/fees
func (ctrl *FeeController) ListMine(c *fiber.Ctx) error {
	userID, err := authMw.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var bills []model.FeeBillModel
	if err := ctrl.DB.
		Where("fee_bill_user_id = ?", userID).
		Order("fee_bill_due_date ASC").
		Find(&bills).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}
	return helper.Success(c, "OK", dto.ToFeeBillResponseList(bills))
}

/* ===================== PAY VIA SNAP ===================== */
// POST /api/u/fees/:id/pay - bikin Snap token Midtrans untuk tagihan
func (ctrl *FeeController) Pay(c *fiber.Ctx) error {
	userID, err := authMw.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	billID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var bill model.FeeBillModel
	if err := ctrl.DB.First(&bill, "fee_bill_id = ? AND fee_bill_user_id = ?", billID, userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Tagihan tidak ditemukan")
	}
	if bill.FeeBillStatus == model.StatusPaid {
		return helper.Error(c, fiber.StatusConflict, "Tagihan sudah dibayar")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "User tidak ditemukan")
	}

	orderID := fmt.Sprintf("FEE-%s-%d", bill.FeeBillID.String()[:8], time.Now().Unix())
	token, err := service.GenerateSnapToken(bill, orderID, user.UserName, user.Email)
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
	}

	if err := ctrl.DB.Model(&bill).Update("fee_bill_order_id", orderID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan order")
	}

	return helper.Success(c, "Snap token dibuat", fiber.Map{
		"order_id":   orderID,
		"snap_token": token,
	})
}

/* ===================== MIDTRANS WEBHOOK ===================== */
// POST /api/fees/notification - dipanggil Midtrans, tanpa JWT.
// Autentikasi lewat signature_key: SHA512(order_id+status_code+gross_amount+serverKey).
func (ctrl *FeeController) Notification(c *fiber.Ctx) error {
	var notif service.MidtransNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if !notif.ValidSignature(service.MidtransServerKey()) {
		return helper.Error(c, fiber.StatusUnauthorized, "Signature tidak valid")
	}

	if err := ctrl.applyWebhook(notif); err != nil {
		if errors.Is(err, service.ErrBillNotFound) {
			// balas 200 supaya Midtrans tidak retry terus untuk order asing
			return c.JSON(fiber.Map{"status": "ignored", "reason": "bill not found"})
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", nil)
}
