package models

import "time"

// User represents a user in Firestore
// @Description User account information
type User struct {
	ID        string    `json:"id" firestore:"-" example:"user@example.com"`
	Email     string    `json:"email" firestore:"email" example:"user@example.com"`
	Name      string    `json:"name" firestore:"name" example:"John Doe"`
	Password  string    `json:"-" firestore:"password"` // Hashed password, never sent to client
	Picture   string    `json:"picture,omitempty" firestore:"picture,omitempty"`
	Provider  string    `json:"provider" firestore:"provider" example:"email"` // "email" or "google"
	GoogleID  string    `json:"-" firestore:"googleId,omitempty"`
	ResumeURL string    `json:"resumeUrl" firestore:"resumeUrl"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// RegisterRequest represents registration request
// @Description User registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
	Name     string `json:"name" binding:"required" example:"John Doe"`
}

// LoginRequest represents login request
// @Description User login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// GoogleAuthRequest represents Google SSO authentication request
// @Description Google SSO authentication request
type GoogleAuthRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// UpdateProfileRequest represents profile update request
// @Description Profile update request
type UpdateProfileRequest struct {
	Name string `json:"name,omitempty" example:"John Smith"`
}

// AuthResponse represents authentication response
// @Description Authentication response with JWT token
type AuthResponse struct {
	Token   string `json:"token"`
	User    *User  `json:"user"`
	Message string `json:"message,omitempty" example:"Login successful"`
}

// ProfileResponse represents user profile response
// @Description User profile response
type ProfileResponse struct {
	User    *User  `json:"user"`
	Message string `json:"message,omitempty"`
}

// FileRecord is metadata for an uploaded resume
// @Description Uploaded resume metadata
type FileRecord struct {
	ID         string    `json:"id" firestore:"-"`
	UID        string    `json:"uid" firestore:"uid"`
	FileName   string    `json:"fileName" firestore:"fileName" example:"resume.pdf"`
	FileURL    string    `json:"fileUrl" firestore:"fileUrl"`
	TargetRole string    `json:"targetRole" firestore:"targetRole"`
	SizeKB     float64   `json:"fileSizeKb" firestore:"fileSizeKb"`
	UploadedAt time.Time `json:"uploadedAt" firestore:"uploadedAt"`
}

// AuditLog is one entry of a user's action history
// @Description Audit log entry
type AuditLog struct {
	ID        string    `json:"id" firestore:"-"`
	UID       string    `json:"uid" firestore:"uid"`
	Action    string    `json:"action" firestore:"action" example:"UPLOAD_RESUME"`
	Details   string    `json:"details" firestore:"details"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}

// Audit actions recorded through storage.LogAudit
const (
	AuditLogin         = "LOGIN"
	AuditUploadResume  = "UPLOAD_RESUME"
	AuditUpdateProfile = "UPDATE_PROFILE"
	AuditDeleteAccount = "DELETE_ACCOUNT"
)
