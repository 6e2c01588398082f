package service

import (
	"errors"
	"log"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/configs"
	authDTO "hostelku_backend/internals/features/users/auth/dto"
	userModel "hostelku_backend/internals/features/users/user/model"
	helper "hostelku_backend/internals/helpers"
)

var validate = validator.New()

/* ==========================
   REGISTER
========================== */
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	// Email harus unik
	var existing userModel.UserModel
	if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return helper.Error(c, fiber.StatusConflict, "Email sudah terdaftar")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, "DB error")
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := userModel.UserModel{
		UserName: req.UserName,
		Email:    req.Email,
		Password: hashed,
		Phone:    req.Phone,
		Role:     req.Role,
	}
	user.SetDefaultValues()

	// Pendaftaran publik tidak boleh langsung jadi reviewer/admin
	if user.Role != userModel.RoleStudent && user.Role != userModel.RoleParent {
		user.Role = userModel.RoleStudent
	}

	if err := db.Create(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", authDTO.ToUserResponse(&user))
}

/* ==========================
   LOGIN (email + password)
========================== */
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := CheckPasswordHash(user.Password, req.Password); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	access, _, err := IssueTokenPair(db, c, user)
	if err != nil {
		return err
	}

	return helper.Success(c, "Login berhasil", fiber.Map{
		"access_token": access,
		"user":         authDTO.ToUserResponse(&user),
	})
}

/* ==========================
   LOGIN GOOGLE (id_token)
========================== */
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var req struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.IDToken) == "" {
		return helper.Error(c, fiber.StatusBadRequest, "id_token wajib diisi")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		log.Println("[ERROR] Verifikasi id_token gagal:", err)
		return helper.Error(c, fiber.StatusUnauthorized, "id_token tidak valid")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "id_token tidak bisa dibaca")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	if email == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "id_token tanpa email")
	}

	var user userModel.UserModel
	err = db.Where("email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// auto-provision akun student baru
		user = userModel.UserModel{
			UserName:        claimSet.Name,
			Email:           email,
			Password:        "-", // tidak dipakai untuk akun Google
			GoogleID:        &claimSet.Sub,
			Role:            userModel.RoleStudent,
			IsEmailVerified: claimSet.EmailVerified,
		}
		if user.UserName == "" {
			user.UserName = email
		}
		if err := db.Create(&user).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat user")
		}
	case err != nil:
		return helper.Error(c, fiber.StatusInternalServerError, "DB error")
	default:
		if !user.IsActive {
			return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
		}
		if user.GoogleID == nil {
			_ = db.Model(&user).Updates(map[string]interface{}{
				"google_id":         claimSet.Sub,
				"is_email_verified": claimSet.EmailVerified,
			}).Error
		}
	}

	access, _, err := IssueTokenPair(db, c, user)
	if err != nil {
		return err
	}

	return helper.Success(c, "Login berhasil", fiber.Map{
		"access_token": access,
		"user":         authDTO.ToUserResponse(&user),
	})
}
