package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/careercopilot/backend/config"
	"github.com/careercopilot/backend/models"
)

const (
	usersCollection    = "users"
	analysesCollection = "analyses"
	filesCollection    = "files"
	auditCollection    = "audit_logs"
)

// ErrUserNotFound is returned when a user lookup misses.
var ErrUserNotFound = errors.New("user not found")

// FirestoreClient wraps Firestore operations
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{client: client}, nil
}

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

// CreateUser creates a new user in Firestore
func (f *FirestoreClient) CreateUser(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	// Use email as document ID for uniqueness
	docRef := f.client.Collection(usersCollection).Doc(user.Email)

	// Check if user already exists
	_, err := docRef.Get(ctx)
	if err == nil {
		return errors.New("user with this email already exists")
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to check user existence: %w", err)
	}

	// Create user
	_, err = docRef.Set(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = user.Email
	return nil
}

// GetUserByEmail retrieves a user by email
func (f *FirestoreClient) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	docRef := f.client.Collection(usersCollection).Doc(email)
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// GetUserByGoogleID retrieves a user by Google ID
func (f *FirestoreClient) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	iter := f.client.Collection(usersCollection).Where("googleId", "==", googleID).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// UpdateUser updates user data
func (f *FirestoreClient) UpdateUser(ctx context.Context, email string, updates map[string]interface{}) error {
	updates["updatedAt"] = time.Now()

	docRef := f.client.Collection(usersCollection).Doc(email)
	_, err := docRef.Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// UpdateUserResumeURL updates the stored resume location for a user
func (f *FirestoreClient) UpdateUserResumeURL(ctx context.Context, email, resumeURL string) error {
	return f.UpdateUser(ctx, email, map[string]interface{}{
		"resumeUrl": resumeURL,
	})
}

// UpdateUserProfile updates user's display name
func (f *FirestoreClient) UpdateUserProfile(ctx context.Context, email string, name string) error {
	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
	}

	if len(updates) == 0 {
		return nil
	}

	return f.UpdateUser(ctx, email, updates)
}

// DeleteUser deletes a user
func (f *FirestoreClient) DeleteUser(ctx context.Context, email string) error {
	docRef := f.client.Collection(usersCollection).Doc(email)
	_, err := docRef.Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// SaveAnalysis persists an analysis result keyed by session ID
func (f *FirestoreClient) SaveAnalysis(ctx context.Context, sessionID, userEmail string, analysis *models.Analysis) error {
	doc := map[string]interface{}{
		"sessionId":  sessionID,
		"userEmail":  userEmail,
		"analysis":   analysis,
		"targetRole": analysis.TargetRole,
		"demoMode":   analysis.DemoMode,
		"createdAt":  time.Now(),
	}

	_, err := f.client.Collection(analysesCollection).Doc(sessionID).Set(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// ListAnalysesByUser returns the most recent analyses for a user
func (f *FirestoreClient) ListAnalysesByUser(ctx context.Context, userEmail string, limit int) ([]*models.Analysis, error) {
	iter := f.client.Collection(analysesCollection).
		Where("userEmail", "==", userEmail).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var analyses []*models.Analysis
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list analyses: %w", err)
		}

		var record struct {
			Analysis models.Analysis `firestore:"analysis"`
		}
		if err := doc.DataTo(&record); err != nil {
			return nil, fmt.Errorf("failed to parse analysis: %w", err)
		}
		analyses = append(analyses, &record.Analysis)
	}

	return analyses, nil
}

// SaveFileRecord stores metadata about an uploaded resume
func (f *FirestoreClient) SaveFileRecord(ctx context.Context, record *models.FileRecord) error {
	record.UploadedAt = time.Now()

	_, _, err := f.client.Collection(filesCollection).Add(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to save file record: %w", err)
	}
	return nil
}

// LogAudit appends an audit log entry. Failures are reported but callers
// typically treat them as non-fatal.
func (f *FirestoreClient) LogAudit(ctx context.Context, entry *models.AuditLog) error {
	entry.Timestamp = time.Now()

	_, _, err := f.client.Collection(auditCollection).Add(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}
