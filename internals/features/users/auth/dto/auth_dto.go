package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "hostelku_backend/internals/features/users/user/model"
)

// ================== REQUEST ==================
type RegisterRequest struct {
	UserName string  `json:"user_name" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Role     string  `json:"role" validate:"omitempty,oneof=student parent"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ================== RESPONSE ==================
type UserResponse struct {
	ID              uuid.UUID `json:"id"`
	UserName        string    `json:"user_name"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone,omitempty"`
	Role            string    `json:"role"`
	IsEmailVerified bool      `json:"is_email_verified"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       string    `json:"created_at"`
}

// ================ CONVERSION =================
func ToUserResponse(u *userModel.UserModel) *UserResponse {
	return &UserResponse{
		ID:              u.ID,
		UserName:        u.UserName,
		Email:           u.Email,
		Phone:           u.Phone,
		Role:            u.Role,
		IsEmailVerified: u.IsEmailVerified,
		IsActive:        u.IsActive,
		CreatedAt:       u.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponseList(models []userModel.UserModel) []UserResponse {
	var result []UserResponse
	for _, m := range models {
		result = append(result, *ToUserResponse(&m))
	}
	return result
}
