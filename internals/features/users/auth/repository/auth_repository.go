package repository

import (
	"time"

	authModel "jewelry_backend/internals/features/users/auth/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ====================== ADMIN ====================== */

func FindAdminByEmail(db *gorm.DB, email string) (*authModel.AdminModel, error) {
	var admin authModel.AdminModel
	if err := db.Where("email = ?", authModel.NormalizeEmail(email)).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func FindAdminByID(db *gorm.DB, id uuid.UUID) (*authModel.AdminModel, error) {
	var admin authModel.AdminModel
	if err := db.First(&admin, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func ListAdmins(db *gorm.DB) ([]authModel.AdminModel, error) {
	admins := make([]authModel.AdminModel, 0)
	if err := db.Order("created_at ASC").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func CountAdmins(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&authModel.AdminModel{}).Count(&n).Error
	return n, err
}

// IsUsernameOrEmailTaken checks both unique columns in one query.
func IsUsernameOrEmailTaken(db *gorm.DB, username, email string) (bool, error) {
	var n int64
	err := db.Model(&authModel.AdminModel{}).
		Where("username = ? OR email = ?", username, authModel.NormalizeEmail(email)).
		Count(&n).Error
	return n > 0, err
}

func CreateAdmin(db *gorm.DB, admin *authModel.AdminModel) error {
	return db.Create(admin).Error
}

func UpdateAdminPassword(db *gorm.DB, id uuid.UUID, hash string) error {
	return db.Model(&authModel.AdminModel{}).Where("id = ?", id).Update("password", hash).Error
}

func TouchLastLogin(db *gorm.DB, id uuid.UUID, at time.Time) error {
	return db.Model(&authModel.AdminModel{}).Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}

func SetAdminActive(db *gorm.DB, id uuid.UUID, active bool) error {
	return db.Model(&authModel.AdminModel{}).Where("id = ?", id).Update("is_active", active).Error
}

func DeleteAdmin(db *gorm.DB, id uuid.UUID) (int64, error) {
	res := db.Where("id = ?", id).Delete(&authModel.AdminModel{})
	return res.RowsAffected, res.Error
}
