package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/mpawlak/wedrownik/internal/pkg/apperrors"
	jwtpkg "github.com/mpawlak/wedrownik/internal/pkg/jwt"
	"github.com/mpawlak/wedrownik/internal/pkg/logger"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
	"github.com/mpawlak/wedrownik/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// Register creates a new account and signs it in
func (uc *TripUC) Register(ctx context.Context, req *models.AuthRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email address", apperrors.ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrInvalidInput, minPasswordLength)
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := uc.userRepo.CreateUser(ctx, &models.User{
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID.String()),
		logger.String("email", utils.MaskEmail(user.Email)))
	return uc.issueToken(user)
}

// Login verifies credentials and issues a token
func (uc *TripUC) Login(ctx context.Context, req *models.AuthRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, fmt.Errorf("%w: unknown email or wrong password", apperrors.ErrUnauthenticated)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: unknown email or wrong password", apperrors.ErrUnauthenticated)
	}

	return uc.issueToken(user)
}

func (uc *TripUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID.String(),
		Email:     user.Email,
		ExpiresAt: expiresAt,
	}, nil
}
