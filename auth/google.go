package auth

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/careercopilot/backend/config"
)

var ErrGoogleAuthDisabled = errors.New("google sign-in not configured")

// GoogleUserInfo is the identity extracted from a verified Google ID token.
type GoogleUserInfo struct {
	GoogleID string
	Email    string
	Name     string
	Picture  string
}

// GoogleAuthService verifies Google Sign-In ID tokens against our OAuth
// client ID.
type GoogleAuthService struct {
	clientID string
}

func NewGoogleAuthService(cfg *config.Config) *GoogleAuthService {
	return &GoogleAuthService{clientID: cfg.GoogleClientID}
}

// VerifyIDToken validates the token signature and audience and returns the
// user's identity. The email claim is mandatory since it doubles as our user
// key.
func (s *GoogleAuthService) VerifyIDToken(ctx context.Context, idToken string) (*GoogleUserInfo, error) {
	if s.clientID == "" {
		return nil, ErrGoogleAuthDisabled
	}

	payload, err := idtoken.Validate(ctx, idToken, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	info := &GoogleUserInfo{GoogleID: payload.Subject}
	claimString := func(key string) string {
		v, _ := payload.Claims[key].(string)
		return v
	}
	info.Email = claimString("email")
	info.Name = claimString("name")
	info.Picture = claimString("picture")

	if info.Email == "" {
		return nil, errors.New("email claim missing from token")
	}
	return info, nil
}
