// Package auth issues and validates the JWT bearer tokens used by the API.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "spotlight-api"

// Token types carried in the "typ" claim.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var (
	ErrTokenExpired = errors.New("auth: token expired")
	ErrTokenInvalid = errors.New("auth: invalid token")
	ErrWrongType    = errors.New("auth: wrong token type")
)

type claims struct {
	Type string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 access and refresh tokens.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenService creates a TokenService. The secret must be non-trivial.
func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) (*TokenService, error) {
	if len(secret) < 16 {
		return nil, errors.New("auth: JWT secret must be at least 16 characters")
	}
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// GenerateAccessToken issues a short-lived access token for the user.
func (s *TokenService) GenerateAccessToken(userID uint) (string, error) {
	return s.generate(userID, TypeAccess, s.accessTTL)
}

// GenerateRefreshToken issues a long-lived refresh token for the user.
func (s *TokenService) GenerateRefreshToken(userID uint) (string, error) {
	return s.generate(userID, TypeRefresh, s.refreshTTL)
}

func (s *TokenService) generate(userID uint, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()

	c := claims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}

	return signed, nil
}

// Validate parses tokenStr and returns the user ID it identifies. The
// token must be of the expected type ("access" or "refresh").
func (s *TokenService) Validate(tokenStr, expectedType string) (uint, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("auth: unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return 0, ErrTokenInvalid
	}

	if c.Type != expectedType {
		return 0, ErrWrongType
	}

	userID, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || userID == 0 {
		return 0, ErrTokenInvalid
	}

	return uint(userID), nil
}
