package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"nexocarreira/career-coach/internal/models"
	"nexocarreira/career-coach/internal/repositories"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// TokenSigner issues a signed bearer token for a user.
type TokenSigner func(userID, email string, ttl time.Duration) (string, error)

type AuthService interface {
	Register(name, email, password string) (*models.AuthResponse, error)
	Login(email, password string) (*models.AuthResponse, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	signToken TokenSigner
	tokenTTL  time.Duration
}

func NewAuthService(userRepo repositories.UserRepository, signToken TokenSigner, tokenTTL time.Duration) AuthService {
	return &authService{
		userRepo:  userRepo,
		signToken: signToken,
		tokenTTL:  tokenTTL,
	}
}

// Register implements AuthService.
func (s *authService) Register(name, email, password string) (*models.AuthResponse, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" || len(password) < 6 {
		return nil, ErrInvalidCredentials
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.buildAuthResponse(user)
}

// Login implements AuthService.
func (s *authService) Login(email, password string) (*models.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.buildAuthResponse(user)
}

func (s *authService) buildAuthResponse(user *models.User) (*models.AuthResponse, error) {
	token, err := s.signToken(user.ID.String(), user.Email, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &models.AuthResponse{
		Token: token,
		User: models.UserResponse{
			ID:        user.ID.String(),
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}
