package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/hostel/complaints/dto"
	"hostelku_backend/internals/features/hostel/complaints/model"
	helper "hostelku_backend/internals/helpers"
	authMw "hostelku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type ComplaintController struct {
	DB *gorm.DB
}

func NewComplaintController(db *gorm.DB) *ComplaintController {
	return &ComplaintController{DB: db}
}

/* ===================== CREATE (student) ===================== */
// POST /api/u/complaints
func (ctrl *ComplaintController) Create(c *fiber.Ctx) error {
	userID, err := authMw.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(userID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat keluhan")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Keluhan terkirim", m)
}

/* ===================== LIST MINE (student) ===================== */
// GET /api/u/complaints
func (ctrl *ComplaintController) ListMine(c *fiber.Ctx) error {
	userID, err := authMw.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var complaints []model.ComplaintModel
	if err := ctrl.DB.
		Where("complaint_user_id = ?", userID).
		Order("complaint_created_at DESC").
		Find(&complaints).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil keluhan")
	}
	return helper.Success(c, "OK", complaints)
}

/* ===================== LIST ALL (staff/warden) ===================== */
// GET /api/a/complaints?status=open
func (ctrl *ComplaintController) ListAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ComplaintModel{})
	if status := c.Query("status"); status != "" {
		if !model.ValidComplaintStatus(status) {
			return helper.Error(c, fiber.StatusBadRequest, "Status tidak dikenal")
		}
		q = q.Where("complaint_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung keluhan")
	}

	var complaints []model.ComplaintModel
	if err := q.Order("complaint_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&complaints).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil keluhan")
	}

	return helper.Success(c, "OK", fiber.Map{
		"complaints": complaints,
		"pagination": helper.BuildPagination(paging, total, len(complaints)),
	})
}

/* ===================== UPDATE STATUS (staff/warden) ===================== */
// PATCH /api/a/complaints/:id/status
func (ctrl *ComplaintController) UpdateStatus(c *fiber.Ctx) error {
	handlerID, err := authMw.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	complaintID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateComplaintStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var complaint model.ComplaintModel
	if err := ctrl.DB.First(&complaint, "complaint_id = ?", complaintID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Keluhan tidak ditemukan")
	}
	if complaint.ComplaintStatus == model.ComplaintStatusResolved {
		return helper.Error(c, fiber.StatusConflict, "Keluhan sudah selesai")
	}

	updates := map[string]interface{}{
		"complaint_status":     req.Status,
		"complaint_handler_id": handlerID,
	}
	if req.Resolution != nil {
		updates["complaint_resolution"] = *req.Resolution
	}
	if req.Status == model.ComplaintStatusResolved {
		now := time.Now()
		updates["complaint_resolved_at"] = &now
	}
	if err := ctrl.DB.Model(&complaint).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui keluhan")
	}

	return helper.Success(c, "Status keluhan diperbarui", complaint)
}
