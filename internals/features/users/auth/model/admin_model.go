package model

import (
	"strings"
	"time"

	base "jewelry_backend/internals/features/resource/model"

	"gorm.io/gorm"
)

type AdminModel struct {
	base.Base
	Username    string     `gorm:"column:username;type:varchar(50);not null;uniqueIndex" json:"username"`
	Email       string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Password    string     `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Role        string     `gorm:"column:role;type:varchar(20);not null" json:"role"`
	IsActive    bool       `gorm:"column:is_active;not null" json:"isActive"`
	LastLoginAt *time.Time `gorm:"column:last_login_at" json:"lastLoginAt"`
}

func (AdminModel) TableName() string {
	return "admins"
}

func (a *AdminModel) BeforeCreate(tx *gorm.DB) error {
	a.Email = NormalizeEmail(a.Email)
	return a.Base.BeforeCreate(tx)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
