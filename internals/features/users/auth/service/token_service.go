// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelku_backend/internals/configs"
	authModel "hostelku_backend/internals/features/users/auth/model"
	userModel "hostelku_backend/internals/features/users/user/model"
	helper "hostelku_backend/internals/helpers"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_REFRESH_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

// simpan HASH refresh token di DB, bukan plaintext
func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

func buildAccessClaims(u userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"id":             u.ID.String(),
		"user_name":      u.UserName,
		"role":           u.Role,
		"email_verified": u.IsEmailVerified,
		"iat":            now.Unix(),
		"exp":            now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

// IssueTokenPair membuat access+refresh token, menyimpan hash refresh, dan set cookies.
func IssueTokenPair(db *gorm.DB, c *fiber.Ctx, user userModel.UserModel) (string, string, error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return "", "", err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", "", err
	}

	now := nowUTC()
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now)).SignedString([]byte(jwtSecret))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.ID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	ua := c.Get("User-Agent")
	ip := c.IP()
	rec := authModel.RefreshTokenModel{
		UserID:    user.ID,
		TokenHash: computeRefreshHash(refresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: &ua,
		IP:        &ip,
	}
	if err := db.Create(&rec).Error; err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}

	setAuthCookies(c, access, refresh, now)
	return access, refresh, nil
}

func setAuthCookies(c *fiber.Ctx, access, refresh string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		Expires:  now.Add(accessTTLDefault),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  now.Add(refreshTTLDefault),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
}

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return err
	}

	// Parse & validate refresh JWT
	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// Pastikan hash refresh ada di DB & belum direvoke
	h := computeRefreshHash(refreshCookie, refreshSecret)
	var rec authModel.RefreshTokenModel
	if err := db.Where("token_hash = ? AND revoked_at IS NULL AND expires_at > NOW()", h).
		First(&rec).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "User not found")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: revoke token lama lalu terbitkan pasangan baru
	now := nowUTC()
	if err := db.Model(&rec).Update("revoked_at", &now).Error; err != nil {
		log.Printf("[refresh] revoke old token failed: %v", err)
	}

	access, _, err := IssueTokenPair(db, c, user)
	if err != nil {
		return err
	}

	return helper.Success(c, "Token refreshed", fiber.Map{
		"access_token": access,
	})
}

// ========================== LOGOUT ==========================
// POST /api/auth/logout - blacklist access token + revoke refresh
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw != "" {
		bl := authModel.TokenBlacklistModel{
			Token:     raw,
			ExpiredAt: time.Now().Add(accessTTLDefault),
		}
		if err := db.Create(&bl).Error; err != nil {
			log.Printf("[logout] blacklist insert failed: %v", err)
		}
	}

	if refreshCookie := helper.GetRefreshTokenFromCookie(c); refreshCookie != "" {
		if secret, err := getRefreshSecret(); err == nil {
			now := nowUTC()
			h := computeRefreshHash(refreshCookie, secret)
			_ = db.Model(&authModel.RefreshTokenModel{}).
				Where("token_hash = ? AND revoked_at IS NULL", h).
				Update("revoked_at", &now).Error
		}
	}

	// hapus cookies
	c.ClearCookie("access_token", "refresh_token")
	return helper.Success(c, "Logout berhasil", nil)
}
