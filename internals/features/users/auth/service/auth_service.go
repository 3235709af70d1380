package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"jewelry_backend/internals/constants"
	"jewelry_backend/internals/features/users/auth/dto"
	authModel "jewelry_backend/internals/features/users/auth/model"
	authRepo "jewelry_backend/internals/features/users/auth/repository"
	helper "jewelry_backend/internals/helpers"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgAccountDeactivated = "Account is deactivated"
)

type AuthService struct {
	DB     *gorm.DB
	Tokens *TokenService
}

func NewAuthService(db *gorm.DB, tokens *TokenService) *AuthService {
	return &AuthService{DB: db, Tokens: tokens}
}

func (s *AuthService) respond(admin *authModel.AdminModel) (*dto.AuthResponse, error) {
	token, exp, err := s.Tokens.Issue(admin)
	if err != nil {
		return nil, helper.ServerError("Failed to issue token", err)
	}
	return &dto.AuthResponse{Admin: admin, Token: token, ExpiresAt: exp.Unix()}, nil
}

// Login checks credentials. Failed attempts are not counted; throttling is
// left to the route's rate limiter.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	db := s.DB.WithContext(ctx)
	admin, err := authRepo.FindAdminByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Unauthorized(MsgInvalidCredentials)
		}
		return nil, helper.ServerError("Failed to log in", err)
	}
	if err := CheckPasswordHash(admin.Password, req.Password); err != nil {
		return nil, helper.Unauthorized(MsgInvalidCredentials)
	}
	if !admin.IsActive {
		return nil, helper.Unauthorized(MsgAccountDeactivated)
	}

	now := time.Now().UTC()
	if err := authRepo.TouchLastLogin(db, admin.ID, now); err != nil {
		return nil, helper.ServerError("Failed to log in", err)
	}
	admin.LastLoginAt = &now
	return s.respond(admin)
}

// Register creates an admin. While the table is empty anyone may register
// and becomes super_admin; afterwards actor must be super_admin or admin,
// and only a super_admin may create another super_admin.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest, actor *authModel.AdminModel) (*dto.AuthResponse, error) {
	db := s.DB.WithContext(ctx)
	count, err := authRepo.CountAdmins(db)
	if err != nil {
		return nil, helper.ServerError("Failed to register admin", err)
	}

	role := req.Role
	if role == "" {
		role = constants.RoleEditor
	}
	if count == 0 {
		role = constants.RoleSuperAdmin
	} else {
		if actor == nil {
			return nil, helper.Unauthorized("No token provided")
		}
		if !contains(constants.AdminAndAbove, actor.Role) {
			return nil, helper.Forbidden(constants.RoleError("admin registration", constants.AdminAndAbove))
		}
		if role == constants.RoleSuperAdmin && actor.Role != constants.RoleSuperAdmin {
			return nil, helper.Forbidden(constants.RoleError("super_admin creation", constants.SuperAdminOnly))
		}
	}

	username := strings.TrimSpace(req.Username)
	taken, err := authRepo.IsUsernameOrEmailTaken(db, username, req.Email)
	if err != nil {
		return nil, helper.ServerError("Failed to register admin", err)
	}
	if taken {
		return nil, helper.Conflict("Email or username already in use")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, helper.ServerError("Failed to hash password", err)
	}
	admin := &authModel.AdminModel{
		Username: username,
		Email:    req.Email,
		Password: hash,
		Role:     role,
		IsActive: true,
	}
	if err := authRepo.CreateAdmin(db, admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, helper.Conflict("Email or username already in use")
		}
		return nil, helper.ServerError("Failed to register admin", err)
	}
	return s.respond(admin)
}

func (s *AuthService) ChangePassword(ctx context.Context, admin *authModel.AdminModel, req dto.ChangePasswordRequest) error {
	db := s.DB.WithContext(ctx)
	stored, err := authRepo.FindAdminByID(db, admin.ID)
	if err != nil {
		return helper.ServerError("Failed to change password", err)
	}
	if err := CheckPasswordHash(stored.Password, req.CurrentPassword); err != nil {
		msg := "Current password is incorrect"
		return helper.ValidationFailed(msg, []helper.FieldError{{Field: "currentPassword", Message: msg}})
	}
	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		return helper.ServerError("Failed to hash password", err)
	}
	if err := authRepo.UpdateAdminPassword(db, admin.ID, hash); err != nil {
		return helper.ServerError("Failed to change password", err)
	}
	return nil
}

/* ====================== ADMIN MANAGEMENT ====================== */

func (s *AuthService) ListAdmins(ctx context.Context) ([]authModel.AdminModel, error) {
	admins, err := authRepo.ListAdmins(s.DB.WithContext(ctx))
	if err != nil {
		return nil, helper.ServerError("Failed to fetch admins", err)
	}
	return admins, nil
}

// target loads the admin actor wants to manage. Nobody manages their own
// account here, and only a super_admin manages another super_admin.
func (s *AuthService) target(db *gorm.DB, actor *authModel.AdminModel, id uuid.UUID, action string) (*authModel.AdminModel, error) {
	if actor.ID == id {
		return nil, helper.BadRequest("You cannot " + action + " your own account")
	}
	admin, err := authRepo.FindAdminByID(db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound("Admin not found")
		}
		return nil, helper.ServerError("Failed to "+action+" admin", err)
	}
	if admin.Role == constants.RoleSuperAdmin && actor.Role != constants.RoleSuperAdmin {
		return nil, helper.Forbidden(constants.RoleError("super_admin management", constants.SuperAdminOnly))
	}
	return admin, nil
}

func (s *AuthService) ToggleAdmin(ctx context.Context, actor *authModel.AdminModel, id uuid.UUID) (*authModel.AdminModel, error) {
	var out *authModel.AdminModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		admin, err := s.target(tx, actor, id, "toggle")
		if err != nil {
			return err
		}
		admin.IsActive = !admin.IsActive
		if err := authRepo.SetAdminActive(tx, admin.ID, admin.IsActive); err != nil {
			return helper.ServerError("Failed to toggle admin", err)
		}
		out = admin
		return nil
	})
	return out, err
}

func (s *AuthService) DeleteAdmin(ctx context.Context, actor *authModel.AdminModel, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.target(tx, actor, id, "delete"); err != nil {
			return err
		}
		n, err := authRepo.DeleteAdmin(tx, id)
		if err != nil {
			return helper.ServerError("Failed to delete admin", err)
		}
		if n == 0 {
			return helper.NotFound("Admin not found")
		}
		return nil
	})
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
