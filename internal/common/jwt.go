package common

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"vidtube/internal/config"
)

type TokenType string

const (
	AccessTokenType  TokenType = "access"
	RefreshTokenType TokenType = "refresh"
)

const tokenIssuer = "vidtube"

var ErrInvalidToken = errors.New("invalid token")

// Claims represents the data stored in every token we sign.
// ID (jti) is unique per token so two tokens minted in the same second differ.
type Claims struct {
	UserID    string    `json:"user_id"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenIssuer signs and verifies access and refresh tokens with separate
// HMAC secrets.
type TokenIssuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewTokenIssuer(cfg config.AuthConfig) *TokenIssuer {
	return &TokenIssuer{
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
		now:           time.Now,
	}
}

func (ti *TokenIssuer) AccessTTL() time.Duration  { return ti.accessTTL }
func (ti *TokenIssuer) RefreshTTL() time.Duration { return ti.refreshTTL }

// IssuePair mints a fresh access/refresh pair for userID.
func (ti *TokenIssuer) IssuePair(userID string) (*TokenPair, error) {
	access, err := ti.sign(userID, AccessTokenType, ti.accessSecret, ti.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := ti.sign(userID, RefreshTokenType, ti.refreshSecret, ti.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (ti *TokenIssuer) ValidateAccessToken(tokenString string) (*Claims, error) {
	return ti.validate(tokenString, AccessTokenType, ti.accessSecret)
}

func (ti *TokenIssuer) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return ti.validate(tokenString, RefreshTokenType, ti.refreshSecret)
}

func (ti *TokenIssuer) sign(userID string, tokenType TokenType, secret []byte, ttl time.Duration) (string, error) {
	now := ti.now()
	claims := &Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (ti *TokenIssuer) validate(tokenString string, want TokenType, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	}, jwt.WithTimeFunc(ti.now), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.TokenType != want || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
