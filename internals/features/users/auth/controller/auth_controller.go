package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "hostelku_backend/internals/features/users/auth/dto"
	authService "hostelku_backend/internals/features/users/auth/service"
	userModel "hostelku_backend/internals/features/users/user/model"
	helper "hostelku_backend/internals/helpers"
	authMw "hostelku_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	return authService.Register(ctrl.DB, c)
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(ctrl.DB, c)
}

// POST /api/auth/login-google
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return authService.LoginGoogle(ctrl.DB, c)
}

// POST /api/auth/refresh-token
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	return authService.RefreshToken(ctrl.DB, c)
}

// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(ctrl.DB, c)
}

// POST /api/u/auth/change-password
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	return authService.ChangePassword(ctrl.DB, c)
}

// GET /api/u/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := authMw.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.Success(c, "OK", authDTO.ToUserResponse(&user))
}
