package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/config"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/auth"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	admin config.AdminConfig
	jwt.Service
}

func NewAuthService(admin config.AdminConfig, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		admin:   admin,
		Service: jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(loginReq.Username), []byte(a.admin.Username)) == 1
	// the hash is checked even for unknown usernames so both paths cost the same
	passwordErr := bcrypt.CompareHashAndPassword([]byte(a.admin.PasswordHash), []byte(loginReq.Password))
	if !usernameMatch || passwordErr != nil {
		slog.Info("Dashboard login rejected", "username", loginReq.Username)
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, _, expiresAt, err := a.Service.GenerateAccessToken(a.admin.Username)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Username:    a.admin.Username,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, tokenID string, expiresAt int64) error {
	if tokenID == "" {
		return auth.ErrInvalidToken
	}
	a.Service.RevokeToken(tokenID, expiresAt)
	return nil
}
