package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mansoorceksport/ironlog/internal/config"
	"github.com/mansoorceksport/ironlog/internal/domain"
)

// TokenService handles JWT access/refresh token generation and validation
// for profile-scoped device sessions. The app is local-first: there is no
// external identity provider, a profile simply claims a token for its
// device and refreshes it with rotation.
type TokenService struct {
	jwtConfig        config.JWTConfig
	refreshTokenRepo domain.RefreshTokenRepository
	profileRepo      domain.ProfileRepository
}

// NewTokenService creates a new token service
func NewTokenService(
	jwtConfig config.JWTConfig,
	refreshTokenRepo domain.RefreshTokenRepository,
	profileRepo domain.ProfileRepository,
) *TokenService {
	return &TokenService{
		jwtConfig:        jwtConfig,
		refreshTokenRepo: refreshTokenRepo,
		profileRepo:      profileRepo,
	}
}

// TokenPair contains both access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // Seconds until access token expires
}

// GenerateTokenPair creates both access and refresh tokens for a profile
func (s *TokenService) GenerateTokenPair(ctx context.Context, profile *domain.Profile, device string) (*TokenPair, error) {
	accessToken, err := s.generateAccessToken(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.generateAndStoreRefreshToken(ctx, profile.ID, device)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtConfig.AccessTokenExpiry.Seconds()),
	}, nil
}

// RefreshAccessToken validates a refresh token and returns a new token pair
// (the old refresh token is revoked: rotation).
func (s *TokenService) RefreshAccessToken(ctx context.Context, refreshToken, device string) (*TokenPair, error) {
	tokenHash := hashToken(refreshToken)

	storedToken, err := s.refreshTokenRepo.FindByHash(ctx, tokenHash)
	if err != nil {
		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}
	if storedToken == nil {
		return nil, fmt.Errorf("invalid refresh token")
	}
	if !storedToken.IsValid() {
		return nil, fmt.Errorf("refresh token expired or revoked")
	}

	profile, err := s.profileRepo.GetByID(ctx, storedToken.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if err := s.refreshTokenRepo.RevokeByHash(ctx, tokenHash); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.GenerateTokenPair(ctx, profile, device)
}

// RevokeRefreshToken invalidates a specific refresh token (logout)
func (s *TokenService) RevokeRefreshToken(ctx context.Context, refreshToken string) error {
	return s.refreshTokenRepo.RevokeByHash(ctx, hashToken(refreshToken))
}

// RevokeAllProfileTokens invalidates all refresh tokens for a profile
func (s *TokenService) RevokeAllProfileTokens(ctx context.Context, profileID string) error {
	return s.refreshTokenRepo.RevokeAllByProfileID(ctx, profileID)
}

// generateAccessToken creates a short-lived JWT access token
func (s *TokenService) generateAccessToken(profile *domain.Profile) (string, error) {
	claims := domain.IronLogClaims{
		ProfileID: profile.ID,
		Name:      profile.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.jwtConfig.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtConfig.Secret))
}

// generateAndStoreRefreshToken creates a random refresh token and stores its hash
func (s *TokenService) generateAndStoreRefreshToken(ctx context.Context, profileID, device string) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	rawToken := hex.EncodeToString(tokenBytes)

	// Store hash in database (never store raw token)
	refreshToken := &domain.RefreshToken{
		ProfileID: profileID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.jwtConfig.RefreshTokenExpiry),
		Device:    device,
	}
	if err := s.refreshTokenRepo.Create(ctx, refreshToken); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}
	return rawToken, nil
}

// hashToken creates a SHA256 hash of the token
func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
