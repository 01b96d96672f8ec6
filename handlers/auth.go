package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careercopilot/backend/auth"
	"github.com/careercopilot/backend/models"
	"github.com/careercopilot/backend/storage"
)

const historyLimit = 20

// AuthHandler serves account endpoints: registration, login, Google
// sign-in, profile and analysis history.
type AuthHandler struct {
	firestoreClient *storage.FirestoreClient
	jwtService      *auth.JWTService
	googleAuth      *auth.GoogleAuthService
}

func NewAuthHandler(
	firestoreClient *storage.FirestoreClient,
	jwtService *auth.JWTService,
	googleAuth *auth.GoogleAuthService,
) *AuthHandler {
	return &AuthHandler{
		firestoreClient: firestoreClient,
		jwtService:      jwtService,
		googleAuth:      googleAuth,
	}
}

func respondError(c *gin.Context, status int, msg string, details ...string) {
	resp := models.ErrorResponse{Error: msg, Code: status}
	if len(details) > 0 {
		resp.Details = details[0]
	}
	c.JSON(status, resp)
}

// issueToken signs a token for the user and writes the auth response.
func (h *AuthHandler) issueToken(c *gin.Context, status int, user *models.User, message string) {
	token, err := h.jwtService.GenerateToken(user)
	if err != nil {
		log.Printf("[AuthHandler] Failed to generate token for %s: %v", user.Email, err)
		respondError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	c.JSON(status, models.AuthResponse{Token: token, User: user, Message: message})
}

// logAudit records a user action; failures are logged only.
func (h *AuthHandler) logAudit(c *gin.Context, email, action, details string) {
	entry := &models.AuditLog{UID: email, Action: action, Details: details}
	if err := h.firestoreClient.LogAudit(c.Request.Context(), entry); err != nil {
		log.Printf("[AuthHandler] Failed to write audit log: %v", err)
	}
}

// requireClaims returns the authenticated claims or writes a 401.
func requireClaims(c *gin.Context) (*auth.Claims, bool) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return claims, true
}

// Register creates a password account
// @Summary Register a new user
// @Description Register a new user with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 201 {object} models.AuthResponse "Registration successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 409 {object} models.ErrorResponse "User already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("[AuthHandler] Failed to hash password: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to process registration")
		return
	}

	user := &models.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: hashed,
		Provider: "email",
	}
	if err := h.firestoreClient.CreateUser(c.Request.Context(), user); err != nil {
		log.Printf("[AuthHandler] Failed to create user %s: %v", req.Email, err)
		respondError(c, http.StatusConflict, "Registration failed", err.Error())
		return
	}

	log.Printf("[AuthHandler] User registered: %s", user.Email)
	h.issueToken(c, http.StatusCreated, user, "Registration successful")
}

// Login authenticates a password account
// @Summary Login user
// @Description Login with email and password to get JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	user, err := h.firestoreClient.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if user.Provider == "google" {
		respondError(c, http.StatusUnauthorized, "This account uses Google Sign-In. Please login with Google.")
		return
	}
	if !auth.CheckPassword(req.Password, user.Password) {
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	h.logAudit(c, user.Email, models.AuditLogin, "email login")
	log.Printf("[AuthHandler] User logged in: %s", user.Email)
	h.issueToken(c, http.StatusOK, user, "Login successful")
}

// GoogleLogin authenticates via a Google ID token, creating the account on
// first sign-in
// @Summary Login with Google
// @Description Login or register using Google SSO ID token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.GoogleAuthRequest true "Google auth request"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid Google token"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req models.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	ctx := c.Request.Context()
	googleUser, err := h.googleAuth.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		log.Printf("[AuthHandler] Failed to verify Google token: %v", err)
		respondError(c, http.StatusUnauthorized, "Invalid Google token", err.Error())
		return
	}

	// Look up by Google subject first so an email change on the Google side
	// still maps to the same account.
	user, err := h.firestoreClient.GetUserByGoogleID(ctx, googleUser.GoogleID)
	if err != nil {
		user, err = h.firestoreClient.GetUserByEmail(ctx, googleUser.Email)
	}
	switch {
	case err != nil:
		// First sign-in: create the account.
		user = &models.User{
			Email:    googleUser.Email,
			Name:     googleUser.Name,
			Provider: "google",
			GoogleID: googleUser.GoogleID,
			Picture:  googleUser.Picture,
		}
		if err := h.firestoreClient.CreateUser(ctx, user); err != nil {
			log.Printf("[AuthHandler] Failed to create Google user %s: %v", googleUser.Email, err)
			respondError(c, http.StatusInternalServerError, "Failed to create account", err.Error())
			return
		}
		log.Printf("[AuthHandler] New Google user created: %s", user.Email)
	case user.GoogleID == "":
		// Existing password account linking Google for the first time.
		if err := h.firestoreClient.UpdateUser(ctx, user.Email, map[string]interface{}{
			"googleId": googleUser.GoogleID,
			"provider": "google",
		}); err != nil {
			log.Printf("[AuthHandler] Failed to link Google account for %s: %v", user.Email, err)
		}
	}

	h.logAudit(c, user.Email, models.AuditLogin, "google login")
	log.Printf("[AuthHandler] Google user logged in: %s", user.Email)
	h.issueToken(c, http.StatusOK, user, "Login successful")
}

// GetProfile returns the authenticated user's profile
// @Summary Get user profile
// @Description Get the authenticated user's profile information
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProfileResponse "User profile"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	user, err := h.firestoreClient.GetUserByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, models.ProfileResponse{User: user})
}

// UpdateProfile updates the authenticated user's display name
// @Summary Update user profile
// @Description Update the authenticated user's profile (name)
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateProfileRequest true "Update profile request"
// @Success 200 {object} models.ProfileResponse "Profile updated"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	ctx := c.Request.Context()
	if err := h.firestoreClient.UpdateUserProfile(ctx, claims.Email, req.Name); err != nil {
		log.Printf("[AuthHandler] Failed to update profile for %s: %v", claims.Email, err)
		respondError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	h.logAudit(c, claims.Email, models.AuditUpdateProfile, "profile updated")

	user, err := h.firestoreClient.GetUserByEmail(ctx, claims.Email)
	if err != nil {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, models.ProfileResponse{User: user, Message: "Profile updated"})
}

// History lists the authenticated user's saved analyses
// @Summary List saved analyses
// @Description Return the user's most recent analyses, newest first
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.HistoryResponse "Saved analyses"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/analyses [get]
func (h *AuthHandler) History(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	analyses, err := h.firestoreClient.ListAnalysesByUser(c.Request.Context(), claims.Email, historyLimit)
	if err != nil {
		log.Printf("[AuthHandler] Failed to list analyses for %s: %v", claims.Email, err)
		respondError(c, http.StatusInternalServerError, "Failed to load analysis history")
		return
	}
	c.JSON(http.StatusOK, models.HistoryResponse{Count: len(analyses), Analyses: analyses})
}

// DeleteAccount deletes the authenticated user's account
// @Summary Delete account
// @Description Permanently delete the authenticated user's account
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProfileResponse "Account deleted"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/account [delete]
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	claims, ok := requireClaims(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	h.logAudit(c, claims.Email, models.AuditDeleteAccount, "account deleted")
	if err := h.firestoreClient.DeleteUser(ctx, claims.Email); err != nil {
		log.Printf("[AuthHandler] Failed to delete account %s: %v", claims.Email, err)
		respondError(c, http.StatusInternalServerError, "Failed to delete account")
		return
	}

	log.Printf("[AuthHandler] Account deleted: %s", claims.Email)
	c.JSON(http.StatusOK, models.ProfileResponse{Message: "Account deleted"})
}
