package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/careercopilot/backend/config"
	"github.com/careercopilot/backend/models"
)

const tokenIssuer = "careercopilot"

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrBadSigningAlg = errors.New("unexpected signing method")
)

// Claims carried inside an access token.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// JWTService issues and validates HS256 access tokens for account endpoints.
type JWTService struct {
	secret []byte
	expiry time.Duration
}

func NewJWTService(cfg *config.Config) *JWTService {
	return &JWTService{
		secret: []byte(cfg.JWTSecret),
		expiry: time.Duration(cfg.JWTExpiryHours) * time.Hour,
	}
}

func (s *JWTService) newClaims(userID, email, name string) *Claims {
	now := time.Now()
	return &Claims{
		UserID: userID,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}
}

// GenerateToken issues a signed token for the user.
func (s *JWTService) GenerateToken(user *models.User) (string, error) {
	claims := s.newClaims(user.ID, user.Email, user.Name)
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ValidateToken parses and verifies a token, returning its claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadSigningAlg
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// RefreshToken re-issues a still-valid token with a fresh expiry.
func (s *JWTService) RefreshToken(tokenString string) (string, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	fresh := s.newClaims(claims.UserID, claims.Email, claims.Name)
	return jwt.NewWithClaims(jwt.SigningMethodHS256, fresh).SignedString(s.secret)
}
