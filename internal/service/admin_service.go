package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "kacameta/internal/errors"
	"kacameta/internal/model"
	"kacameta/internal/repository"
)

// CreateAdminInput carries the fields for a new back-office account.
type CreateAdminInput struct {
	Name     string
	Username string
	Email    string
	Password string
	Role     model.Role
}

// UpdateAdminInput carries the mutable fields of an existing account.
// The password is not updated through this path.
type UpdateAdminInput struct {
	Name     string
	Username string
	Email    string
	Role     model.Role
}

// AdminService manages back-office accounts. All operations are
// SUPER_ADMIN-only; the handler enforces that and the service trusts the
// caller-supplied actor id only for the self-deletion check.
type AdminService interface {
	List(ctx context.Context) ([]model.Admin, error)
	Create(ctx context.Context, input CreateAdminInput) (*model.Admin, error)
	Update(ctx context.Context, id uint, input UpdateAdminInput) (*model.Admin, error)
	Delete(ctx context.Context, id, actorID uint) error
}

type adminService struct {
	adminRepo repository.AdminRepository
}

// NewAdminService creates a new admin management service.
func NewAdminService(adminRepo repository.AdminRepository) AdminService {
	return &adminService{adminRepo: adminRepo}
}

func (s *adminService) List(ctx context.Context) ([]model.Admin, error) {
	return s.adminRepo.List(ctx)
}

// Create adds an admin account. Username and email must both be free; a
// collision on either yields the same "already exists" error.
func (s *adminService) Create(ctx context.Context, input CreateAdminInput) (*model.Admin, error) {
	existing, err := s.adminRepo.FindByUsernameOrEmail(ctx, input.Username, input.Email, 0)
	if err == nil && existing != nil {
		return nil, apperrors.ErrAdminExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check admin existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := input.Role
	if !role.Valid() {
		role = model.RoleAdmin
	}

	admin := &model.Admin{
		Name:         input.Name,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Role:         role,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}

	return admin, nil
}

func (s *adminService) Update(ctx context.Context, id uint, input UpdateAdminInput) (*model.Admin, error) {
	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}

	duplicate, err := s.adminRepo.FindByUsernameOrEmail(ctx, input.Username, input.Email, id)
	if err == nil && duplicate != nil {
		return nil, apperrors.ErrAdminExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check admin existence: %w", err)
	}

	admin.Name = input.Name
	admin.Username = input.Username
	admin.Email = input.Email
	if input.Role.Valid() {
		admin.Role = input.Role
	}

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return nil, fmt.Errorf("update admin: %w", err)
	}

	return admin, nil
}

// Delete removes an admin account. An admin can never delete itself; whether
// the deletion leaves zero SUPER_ADMIN accounts is left to operators.
func (s *adminService) Delete(ctx context.Context, id, actorID uint) error {
	if id == actorID {
		return apperrors.ErrCannotDeleteSelf
	}

	if _, err := s.adminRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAdminNotFound
		}
		return fmt.Errorf("find admin: %w", err)
	}

	if err := s.adminRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}
	return nil
}
