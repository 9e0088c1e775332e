package service

import (
	"crypto/subtle"
	"time"

	"timeslotfinder/core/config"
	"timeslotfinder/core/errors"
	"timeslotfinder/core/logger"
	"timeslotfinder/core/utils"
	"timeslotfinder/modules/auth/dto"
)

type AuthService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// ExchangeAPIKey trades the configured API key for a short-lived JWT
func (s *AuthService) ExchangeAPIKey(apiKey string) (*dto.TokenResponse, error) {
	if subtle.ConstantTimeCompare([]byte(apiKey), []byte(s.cfg.Auth.APIKey)) != 1 {
		logger.Warn("AuthService:ExchangeAPIKey:InvalidKey")
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid API key", nil)
	}

	ttl := time.Duration(s.cfg.Auth.TokenTTLMinutes) * time.Minute
	token, expiresAt, err := utils.GenerateToken("api", s.cfg.Auth.JWTSecret, ttl)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue token", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
