package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	relayService "hostelku_backend/internals/features/finance/payments/service"
	"hostelku_backend/internals/features/hostel/admissions/dto"
	"hostelku_backend/internals/features/hostel/admissions/model"
	hostelModel "hostelku_backend/internals/features/hostel/hostels/model"
	helper "hostelku_backend/internals/helpers"
	authMw "hostelku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type AdmissionController struct {
	DB *gorm.DB
}

func NewAdmissionController(db *gorm.DB) *AdmissionController {
	return &AdmissionController{DB: db}
}

/* ===================== SUBMIT (student) ===================== */
// POST /api/u/admissions
func (ctrl *AdmissionController) Submit(c *fiber.Ctx) error {
	userID, err := authMw.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SubmitAdmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var hostel hostelModel.HostelModel
	if err := ctrl.DB.First(&hostel, "hostel_id = ?", req.HostelID).Error; err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Hostel tidak ditemukan")
	}

	// satu user = satu pendaftaran aktif
	var existing model.AdmissionModel
	if err := ctrl.DB.
		Where("admission_user_id = ? AND admission_status = ?", userID, model.StatusPending).
		First(&existing).Error; err == nil {
		return helper.Error(c, fiber.StatusConflict, "Masih ada pendaftaran yang menunggu diproses")
	}

	m := req.ToModel(userID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat pendaftaran")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pendaftaran terkirim", m)
}

/* ===================== LIST MINE (student) ===================== */
// GET /api/u/admissions
func (ctrl *AdmissionController) ListMine(c *fiber.Ctx) error {
	userID, err := authMw.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var admissions []model.AdmissionModel
	if err := ctrl.DB.
		Where("admission_user_id = ?", userID).
		Order("admission_created_at DESC").
		Find(&admissions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pendaftaran")
	}
	return helper.Success(c, "OK", admissions)
}

/* ===================== RECORD PAYMENT (student) ===================== */
// POST /api/u/admissions/:id/payment - catat hasil bayar relay ke pendaftaran.
// Verifikasi signature diulang di server; relay sendiri tidak menyimpan apa-apa.
func (ctrl *AdmissionController) RecordPayment(c *fiber.Ctx) error {
	userID, err := authMw.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	admissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.RecordAdmissionPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if !relayService.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, relayService.GatewaySecret()) {
		return helper.Error(c, fiber.StatusBadRequest, "Signature pembayaran tidak valid")
	}

	var admission model.AdmissionModel
	if err := ctrl.DB.First(&admission, "admission_id = ? AND admission_user_id = ?", admissionID, userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
	}

	now := time.Now()
	updates := map[string]interface{}{
		"admission_payment_order_id": req.RazorpayOrderID,
		"admission_payment_id":       req.RazorpayPaymentID,
		"admission_payment_verified": true,
		"admission_payment_at":       &now,
	}
	if err := ctrl.DB.Model(&admission).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mencatat pembayaran")
	}

	return helper.Success(c, "Pembayaran tercatat", nil)
}

/* ===================== LIST (warden) ===================== */
// GET /api/a/admissions?status=pending
func (ctrl *AdmissionController) ListForReview(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	status := c.Query("status", model.StatusPending)

	var total int64
	q := ctrl.DB.Model(&model.AdmissionModel{}).Where("admission_status = ?", status)
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung pendaftaran")
	}

	var admissions []model.AdmissionModel
	if err := q.Order("admission_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&admissions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pendaftaran")
	}

	return helper.Success(c, "OK", fiber.Map{
		"admissions": admissions,
		"pagination": helper.BuildPagination(paging, total, len(admissions)),
	})
}

/* ===================== REVIEW (warden) ===================== */
// POST /api/a/admissions/:id/review
// Approve: wajib pembayaran terverifikasi, lalu alokasikan kamar dalam satu
// transaksi (lock kamar yang masih ada slot, naikkan occupied).
func (ctrl *AdmissionController) Review(c *fiber.Ctx) error {
	reviewerID, err := authMw.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	admissionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.ReviewAdmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	now := time.Now()
	var reviewed model.AdmissionModel

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var admission model.AdmissionModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&admission, "admission_id = ?", admissionID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
		}
		if !admission.IsPending() {
			return fiber.NewError(fiber.StatusConflict, "Pendaftaran sudah diproses sebelumnya")
		}

		admission.AdmissionReviewerID = &reviewerID
		admission.AdmissionProcessedAt = &now

		if req.Decision == "reject" {
			admission.AdmissionStatus = model.StatusRejected
			if err := tx.Save(&admission).Error; err != nil {
				return err
			}
			reviewed = admission
			return nil
		}

		if !admission.AdmissionPaymentVerified {
			return fiber.NewError(fiber.StatusBadRequest, "Pembayaran admisi belum terverifikasi")
		}

		// cari kamar dengan slot kosong di hostel yang diminta
		var room hostelModel.RoomModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("room_hostel_id = ? AND room_occupied < room_capacity", admission.AdmissionHostelID).
			Order("room_number ASC").
			First(&room).Error; err != nil {
			return fiber.NewError(fiber.StatusConflict, "Tidak ada kamar kosong di hostel ini")
		}

		if err := tx.Model(&room).Update("room_occupied", gorm.Expr("room_occupied + 1")).Error; err != nil {
			return err
		}

		admission.AdmissionStatus = model.StatusApproved
		admission.AdmissionRoomID = &room.RoomID
		if err := tx.Save(&admission).Error; err != nil {
			return err
		}
		reviewed = admission
		return nil
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses pendaftaran")
	}

	msg := "Pendaftaran disetujui"
	if reviewed.AdmissionStatus == model.StatusRejected {
		msg = "Pendaftaran ditolak"
	}
	return helper.Success(c, msg, reviewed)
}
