package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/hostel/hostels/dto"
	"hostelku_backend/internals/features/hostel/hostels/model"
	helper "hostelku_backend/internals/helpers"
)

var validate = validator.New()

type HostelController struct {
	DB *gorm.DB
}

func NewHostelController(db *gorm.DB) *HostelController {
	return &HostelController{DB: db}
}

/* ===================== LIST (public untuk calon penghuni) ===================== */
// GET /api/public/hostels
func (ctrl *HostelController) List(c *fiber.Ctx) error {
	var hostels []model.HostelModel
	if err := ctrl.DB.Order("hostel_name ASC").Find(&hostels).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil hostel")
	}
	return helper.Success(c, "OK", hostels)
}

// GET /api/public/hostels/:id
func (ctrl *HostelController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var hostel model.HostelModel
	if err := ctrl.DB.First(&hostel, "hostel_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Hostel tidak ditemukan")
	}

	var rooms []model.RoomModel
	if err := ctrl.DB.Where("room_hostel_id = ?", id).Order("room_number ASC").Find(&rooms).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kamar")
	}

	return helper.Success(c, "OK", fiber.Map{
		"hostel": hostel,
		"rooms":  rooms,
	})
}

/* ===================== CREATE / UPDATE / DELETE (admin) ===================== */
// POST /api/a/hostels
func (ctrl *HostelController) Create(c *fiber.Ctx) error {
	var req dto.CreateHostelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat hostel")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Hostel dibuat", m)
}

// PATCH /api/a/hostels/:id
func (ctrl *HostelController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateHostelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.HostelName != nil {
		updates["hostel_name"] = *req.HostelName
	}
	if req.HostelAddress != nil {
		updates["hostel_address"] = *req.HostelAddress
	}
	if req.HostelCapacity != nil {
		updates["hostel_capacity"] = *req.HostelCapacity
	}
	if req.HostelWardenID != nil {
		updates["hostel_warden_id"] = req.HostelWardenID
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctrl.DB.Model(&model.HostelModel{}).Where("hostel_id = ?", id).Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update hostel")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Hostel tidak ditemukan")
	}
	return helper.Success(c, "Hostel diperbarui", nil)
}

// DELETE /api/a/hostels/:id (soft delete)
func (ctrl *HostelController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Delete(&model.HostelModel{}, "hostel_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus hostel")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Hostel tidak ditemukan")
	}
	return helper.Success(c, "Hostel dihapus", nil)
}

/* ===================== ROOMS (admin) ===================== */
// POST /api/a/hostels/:id/rooms
func (ctrl *HostelController) CreateRoom(c *fiber.Ctx) error {
	hostelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var hostel model.HostelModel
	if err := ctrl.DB.First(&hostel, "hostel_id = ?", hostelID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Hostel tidak ditemukan")
	}

	room := model.RoomModel{
		RoomHostelID: hostelID,
		RoomNumber:   req.RoomNumber,
		RoomCapacity: req.RoomCapacity,
	}
	if err := ctrl.DB.Create(&room).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat kamar")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kamar dibuat", room)
}
