package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/careercopilot/backend/models"
)

// AuthClaimsKey is the gin context key the validated claims are stored under.
const AuthClaimsKey = "auth_claims"

// bearerToken extracts the token from an Authorization header, or "" when the
// header is absent or not in Bearer form.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error: "Authorization header required",
				Code:  http.StatusUnauthorized,
			})
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "Invalid or expired token",
				Code:    http.StatusUnauthorized,
				Details: err.Error(),
			})
			return
		}

		c.Set(AuthClaimsKey, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches claims when a valid bearer token is present
// and lets the request through either way. Analyses work anonymously; a
// logged-in user additionally gets their results persisted to their account.
func OptionalAuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := jwtService.ValidateToken(token); err == nil {
				c.Set(AuthClaimsKey, claims)
			}
		}
		c.Next()
	}
}

// GetAuthClaims returns the claims set by the middleware, or nil for an
// anonymous request.
func GetAuthClaims(c *gin.Context) *Claims {
	v, ok := c.Get(AuthClaimsKey)
	if !ok {
		return nil
	}
	return v.(*Claims)
}

// IsAuthenticated reports whether the request carries validated claims.
func IsAuthenticated(c *gin.Context) bool {
	return GetAuthClaims(c) != nil
}
