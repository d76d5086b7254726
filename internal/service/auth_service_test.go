package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pcosrisk/internal/auth"
	"pcosrisk/internal/cache"
	apperrors "pcosrisk/internal/errors"
	"pcosrisk/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
		user.CreatedAt = time.Now()
	}
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_Register(t *testing.T) {
	name := "Test User"
	tests := []struct {
		name          string
		email         string
		password      string
		fullName      *string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			email:    "test@example.com",
			password: "password123",
			fullName: &name,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:     "email is normalised",
			email:    "  Test@Example.COM ",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:     "user already exists",
			email:    "existing@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: apperrors.ErrDuplicateIdentity,
		},
		{
			name:     "concurrent duplicate insert",
			email:    "race@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "race@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrDuplicateIdentity,
		},
		{
			name:     "password longer than bcrypt accepts",
			email:    "long@example.com",
			password: strings.Repeat("é", 40),
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "long@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo, auth.NewJWTService("test-secret", 0), nil)
			user, err := service.Register(context.Background(), tt.email, tt.password, tt.fullName)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, NormalizeEmail(tt.email), user.Email)
				assert.Equal(t, tt.fullName, user.FullName)
				assert.True(t, user.Active)
				assert.NotEqual(t, tt.password, user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*testing.T, *MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           7,
					Email:        "test@example.com",
					PasswordHash: hashed(t, "password123"),
					Active:       true,
				}, nil)
			},
		},
		{
			name:     "invalid credentials - user not found",
			email:    "notfound@example.com",
			password: "password123",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrAuthFailure,
		},
		{
			name:     "invalid credentials - wrong password",
			email:    "test@example.com",
			password: "wrong-password",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           7,
					Email:        "test@example.com",
					PasswordHash: hashed(t, "password123"),
				}, nil)
			},
			expectedError: apperrors.ErrAuthFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(t, mockRepo)

			jwtService := auth.NewJWTService("test-secret", 0)
			service := NewAuthService(mockRepo, jwtService, nil)

			accessToken, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, accessToken)
			} else {
				require.NoError(t, err)
				subject, err := jwtService.Verify(accessToken)
				require.NoError(t, err)
				assert.Equal(t, tt.email, subject)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginFailuresAreUniform(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(&model.User{
		ID: 1, Email: "jane@example.com", PasswordHash: hashed(t, "right"),
	}, nil)

	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret", 0), nil)

	_, missing := service.Login(context.Background(), "ghost@example.com", "right")
	_, wrong := service.Login(context.Background(), "jane@example.com", "wrong")

	assert.Equal(t, missing, wrong)
	assert.Equal(t, missing.Error(), wrong.Error())
}

func TestAuthService_StoreErrorsPropagate(t *testing.T) {
	storeErr := errors.New("connection reset")
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, storeErr)

	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret", 0), nil)

	_, err := service.Login(context.Background(), "jane@example.com", "pw")
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, apperrors.ErrAuthFailure)

	_, err = service.Register(context.Background(), "jane@example.com", "pw", nil)
	assert.ErrorIs(t, err, storeErr)
}

func TestAuthService_CurrentUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(&model.User{ID: 3, Email: "jane@example.com", Active: true}, nil)
	mockRepo.On("FindByEmail", mock.Anything, "gone@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("FindByEmail", mock.Anything, "off@example.com").Return(&model.User{ID: 4, Email: "off@example.com", Active: false}, nil)

	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret", 0), nil)
	ctx := context.Background()

	user, err := service.CurrentUser(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, uint(3), user.ID)

	_, err = service.CurrentUser(ctx, "gone@example.com")
	assert.ErrorIs(t, err, apperrors.ErrAuthFailure)

	_, err = service.CurrentUser(ctx, "off@example.com")
	assert.ErrorIs(t, err, apperrors.ErrAuthFailure)
}

func TestAuthService_UnreachableCacheFailsSafe(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, gorm.ErrRecordNotFound).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
	mockRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(&model.User{ID: 1, Email: "jane@example.com", Active: true}, nil)

	// nothing listens on port 1, so every eviction and lookup misses
	c := cache.New("127.0.0.1:1", "", 0)
	defer c.Close()
	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret", 0), c)
	ctx := context.Background()

	user, err := service.Register(ctx, "jane@example.com", "password123", nil)
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	current, err := service.CurrentUser(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, uint(1), current.ID)

	mockRepo.AssertExpectations(t)
}
