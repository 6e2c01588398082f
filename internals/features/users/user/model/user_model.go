package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName        string     `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email           string     `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password        string     `gorm:"not null" json:"-" validate:"required,min=8"`
	GoogleID        *string    `gorm:"size:255;unique" json:"google_id,omitempty"`
	Phone           *string    `gorm:"size:20" json:"phone,omitempty"`
	Role            string     `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	IsEmailVerified bool       `gorm:"not null;default:false" json:"is_email_verified"`
	IsActive        bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeactivatedAt   *time.Time `json:"deactivated_at,omitempty"`
}

// Role yang dikenal sistem
const (
	RoleStudent = "student"
	RoleParent  = "parent"
	RoleStaff   = "staff"
	RoleWarden  = "warden"
	RoleAdmin   = "admin"
)

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum simpan
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = RoleStudent
	}
}

// IsReviewer true bila user boleh memproses regularisasi & complaint
func (u *UserModel) IsReviewer() bool {
	return u.Role == RoleWarden || u.Role == RoleStaff || u.Role == RoleAdmin
}
