package admins

import (
	"errors"
	"fmt"

	"jewelry_backend/internals/constants"
	authModel "jewelry_backend/internals/features/users/auth/model"
	authRepo "jewelry_backend/internals/features/users/auth/repository"
	authService "jewelry_backend/internals/features/users/auth/service"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AdminSeed struct {
	Email    string
	Username string
	Password string
}

// SeedAdmin creates the super_admin from ADMIN_* settings. An empty email or
// password skips the step; an existing email is left untouched.
func SeedAdmin(db *gorm.DB, seed AdminSeed, log *zap.Logger) error {
	if seed.Email == "" || seed.Password == "" {
		log.Info("ℹ️ ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}
	if len(seed.Password) < 8 {
		return fmt.Errorf("ADMIN_PASSWORD must be at least 8 characters")
	}

	_, err := authRepo.FindAdminByEmail(db, seed.Email)
	if err == nil {
		log.Info("ℹ️ admin already exists, skipped", zap.String("email", seed.Email))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := authService.HashPassword(seed.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := &authModel.AdminModel{
		Username: seed.Username,
		Email:    seed.Email,
		Password: hash,
		Role:     constants.RoleSuperAdmin,
		IsActive: true,
	}
	if err := authRepo.CreateAdmin(db, admin); err != nil {
		return fmt.Errorf("insert admin %s: %w", seed.Email, err)
	}
	log.Info("✅ admin seeded", zap.String("email", admin.Email))
	return nil
}
