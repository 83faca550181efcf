package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kacameta/internal/auth"
	"kacameta/internal/model"
	"kacameta/internal/repository"
)

const bcryptCost = 12

// ErrInvalidCredentials is returned when email or password is incorrect.
// Unknown email and wrong password produce this same value so callers cannot
// enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid email or password")

// enumerationGuardHash is compared against when the email is unknown, so
// both failure paths pay for one bcrypt comparison.
var enumerationGuardHash, _ = bcrypt.GenerateFromPassword([]byte("kacameta-enumeration-guard"), bcryptCost)

// AuthService handles credential verification and session issuance.
type AuthService interface {
	Verify(ctx context.Context, email, password string) (*model.Identity, error)
	Login(ctx context.Context, email, password string) (token string, identity *model.Identity, err error)
}

type authService struct {
	adminRepo  repository.AdminRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(adminRepo repository.AdminRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Verify validates an email/password pair against the admin store and
// returns the authenticated identity. Read-only: no lockout, no counters.
func (s *authService) Verify(ctx context.Context, email, password string) (*model.Identity, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Burn a hash comparison anyway to keep the unknown-email path
			// close in cost to the wrong-password path.
			_ = bcrypt.CompareHashAndPassword(enumerationGuardHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return admin.Identity(), nil
}

// Login verifies credentials and mints a session token for the identity.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.Identity, error) {
	identity, err := s.Verify(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.jwtService.Issue(identity)
	if err != nil {
		return "", nil, fmt.Errorf("issue session token: %w", err)
	}

	return token, identity, nil
}
