package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pcosrisk/internal/auth"
	"pcosrisk/internal/cache"
	apperrors "pcosrisk/internal/errors"
	"pcosrisk/internal/model"
	"pcosrisk/internal/repository"
)

const (
	bcryptCost   = 10
	userCacheTTL = 5 * time.Minute
)

// dummyHash is compared against when the email is unknown so that a missing
// account costs the same bcrypt work as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("pcos-dummy-password"), bcryptCost)

// AuthService handles registration, credential checks and token issuance.
type AuthService interface {
	Register(ctx context.Context, email, password string, fullName *string) (*model.User, error)
	Verify(ctx context.Context, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (accessToken string, err error)
	CurrentUser(ctx context.Context, subject string) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	cache      *cache.Client
}

// NewAuthService creates a new authentication service. cache may be nil.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, cache *cache.Client) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		cache:      cache,
	}
}

// NormalizeEmail trims and lower-cases an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) cacheKey(email string) string {
	return "user:" + email
}

// Register creates a new user with a hashed password.
func (s *authService) Register(ctx context.Context, email, password string, fullName *string) (*model.User, error) {
	email = NormalizeEmail(email)

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateIdentity
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, apperrors.ErrPasswordTooLong
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		FullName:     fullName,
		Active:       true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// a cached user with this email predates the row just written (RESET_DB)
	_ = s.cache.Delete(ctx, s.cacheKey(email))

	return user, nil
}

// Verify checks email and password. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *authService) Verify(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find user: %w", err)
		}
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, apperrors.ErrAuthFailure
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrAuthFailure
	}

	return user, nil
}

// Login verifies credentials and issues an access token bound to the email.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.Verify(ctx, email, password)
	if err != nil {
		return "", err
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.Email)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// CurrentUser resolves a verified token subject to its user. Users are
// immutable, so lookups may be served from the cache.
func (s *authService) CurrentUser(ctx context.Context, subject string) (*model.User, error) {
	key := s.cacheKey(subject)

	var cached model.User
	if s.cache.GetJSON(ctx, key, &cached) && cached.ID != 0 {
		return activeUser(&cached)
	}

	user, err := s.userRepo.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAuthFailure
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	_ = s.cache.SetJSON(ctx, key, user, userCacheTTL)
	return activeUser(user)
}

func activeUser(user *model.User) (*model.User, error) {
	if !user.Active {
		return nil, apperrors.ErrAuthFailure
	}
	return user, nil
}
