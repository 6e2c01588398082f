package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authDTO "hostelku_backend/internals/features/users/auth/dto"
	"hostelku_backend/internals/features/users/user/model"
	helper "hostelku_backend/internals/helpers"
)

type UserAdminController struct {
	DB *gorm.DB
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{DB: db}
}

/* ===================== LIST ===================== */
// GET /api/a/users?role=&q=&page=&per_page=
func (ctrl *UserAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.UserModel{})
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("role = ?", role)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(user_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var users []model.UserModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	return helper.Success(c, "OK", fiber.Map{
		"users":      authDTO.ToUserResponseList(users),
		"pagination": helper.BuildPagination(paging, total, len(users)),
	})
}

/* ===================== DETAIL ===================== */
// GET /api/a/users/:id
func (ctrl *UserAdminController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.Success(c, "OK", authDTO.ToUserResponse(&user))
}

/* ===================== UPDATE ===================== */
// PATCH /api/a/users/:id - admin boleh ganti role / data dasar
func (ctrl *UserAdminController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req struct {
		UserName *string `json:"user_name"`
		Phone    *string `json:"phone"`
		Role     *string `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := map[string]interface{}{}
	if req.UserName != nil {
		updates["user_name"] = strings.TrimSpace(*req.UserName)
	}
	if req.Phone != nil {
		updates["phone"] = req.Phone
	}
	if req.Role != nil {
		switch *req.Role {
		case model.RoleStudent, model.RoleParent, model.RoleStaff, model.RoleWarden, model.RoleAdmin:
			updates["role"] = *req.Role
		default:
			return helper.Error(c, fiber.StatusBadRequest, "Role tidak dikenal")
		}
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctrl.DB.Model(&model.UserModel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update user")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.Success(c, "User diperbarui", nil)
}

/* ===================== DEACTIVATE / REACTIVATE ===================== */
// POST /api/a/users/:id/deactivate
func (ctrl *UserAdminController) Deactivate(c *fiber.Ctx) error {
	return ctrl.setActive(c, false)
}

// POST /api/a/users/:id/activate
func (ctrl *UserAdminController) Activate(c *fiber.Ctx) error {
	return ctrl.setActive(c, true)
}

func (ctrl *UserAdminController) setActive(c *fiber.Ctx, active bool) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	updates := map[string]interface{}{"is_active": active}
	if active {
		updates["deactivated_at"] = nil
	} else {
		now := time.Now()
		updates["deactivated_at"] = &now
	}

	res := ctrl.DB.Model(&model.UserModel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal update status user")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	msg := "User dinonaktifkan"
	if active {
		msg = "User diaktifkan kembali"
	}
	return helper.Success(c, msg, nil)
}
