package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kacameta/internal/auth"
	"kacameta/internal/model"
)

func storedAdmin(t *testing.T, password string, role model.Role) *model.Admin {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.Admin{
		ID:           3,
		Name:         "Store Admin",
		Username:     "admin",
		Email:        "admin@kacameta.com",
		PasswordHash: string(hashed),
		Role:         role,
	}
}

func TestAuthService_Verify(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockAdminRepository)
		expectedError error
		expectedRole  model.Role
	}{
		{
			name:     "valid credentials return identity with stored role",
			email:    "admin@kacameta.com",
			password: "correct-horse",
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByEmail", mock.Anything, "admin@kacameta.com").
					Return(storedAdmin(t, "correct-horse", model.RoleSuperAdmin), nil)
			},
			expectedRole: model.RoleSuperAdmin,
		},
		{
			name:     "unknown email fails with invalid credentials",
			email:    "ghost@kacameta.com",
			password: "whatever",
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByEmail", mock.Anything, "ghost@kacameta.com").
					Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password fails with invalid credentials",
			email:    "admin@kacameta.com",
			password: "wrong-password",
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByEmail", mock.Anything, "admin@kacameta.com").
					Return(storedAdmin(t, "correct-horse", model.RoleAdmin), nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAdminRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret", time.Hour)
			svc := NewAuthService(mockRepo, jwtService)

			identity, err := svc.Verify(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, identity)
			} else {
				require.NoError(t, err)
				require.NotNil(t, identity)
				assert.Equal(t, tt.email, identity.Email)
				assert.Equal(t, tt.expectedRole, identity.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_VerifyFailuresAreUniform(t *testing.T) {
	mockRepo := new(MockAdminRepository)
	mockRepo.On("FindByEmail", mock.Anything, "ghost@kacameta.com").
		Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("FindByEmail", mock.Anything, "admin@kacameta.com").
		Return(storedAdmin(t, "correct-horse", model.RoleAdmin), nil)

	svc := NewAuthService(mockRepo, auth.NewJWTService("test-secret", time.Hour))

	_, unknownEmailErr := svc.Verify(context.Background(), "ghost@kacameta.com", "whatever")
	_, wrongPasswordErr := svc.Verify(context.Background(), "admin@kacameta.com", "nope")

	assert.Equal(t, unknownEmailErr, wrongPasswordErr)
	assert.Same(t, ErrInvalidCredentials, unknownEmailErr)
}

// Login followed by token verification must reproduce id, username and role.
func TestAuthService_LoginRoundTrip(t *testing.T) {
	mockRepo := new(MockAdminRepository)
	mockRepo.On("FindByEmail", mock.Anything, "admin@kacameta.com").
		Return(storedAdmin(t, "correct-horse", model.RoleSuperAdmin), nil)

	jwtService := auth.NewJWTService("test-secret", time.Hour)
	svc := NewAuthService(mockRepo, jwtService)

	token, identity, err := svc.Login(context.Background(), "admin@kacameta.com", "correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotNil(t, identity)

	claims, err := jwtService.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, claims.AdminID)
	assert.Equal(t, identity.Username, claims.Username)
	assert.Equal(t, identity.Role, claims.Role)
}
