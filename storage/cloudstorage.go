package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	"github.com/careercopilot/backend/config"
)

// CloudStorageClient stores raw resume files in a GCS bucket. Objects are
// keyed "resumes/<owner>/<unix-timestamp><ext>" where owner is a sanitized
// email or session ID.
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, cfg *config.Config) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}
	return &CloudStorageClient{client: client, bucketName: cfg.ResumeBucketName}, nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

// UploadResumeFromBytes stores a resume and returns its public URL.
func (c *CloudStorageClient) UploadResumeFromBytes(ctx context.Context, owner string, content []byte, filename string) (string, error) {
	ext := filepath.Ext(filename)
	object := fmt.Sprintf("resumes/%s/%d%s", sanitizeOwner(owner), time.Now().Unix(), ext)

	if err := c.writeObject(ctx, object, contentTypeFor(ext), bytes.NewReader(content)); err != nil {
		return "", err
	}
	return c.objectURL(object), nil
}

func (c *CloudStorageClient) writeObject(ctx context.Context, object, contentType string, r io.Reader) error {
	w := c.client.Bucket(c.bucketName).Object(object).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return fmt.Errorf("failed to upload %s: %w", object, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", object, err)
	}
	return nil
}

// DownloadResume fetches the stored resume content by its URL.
func (c *CloudStorageClient) DownloadResume(ctx context.Context, resumeURL string) ([]byte, error) {
	object, err := c.objectFromURL(resumeURL)
	if err != nil {
		return nil, err
	}

	r, err := c.client.Bucket(c.bucketName).Object(object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", object, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", object, err)
	}
	return data, nil
}

// DeleteResume removes the stored resume referenced by its URL.
func (c *CloudStorageClient) DeleteResume(ctx context.Context, resumeURL string) error {
	object, err := c.objectFromURL(resumeURL)
	if err != nil {
		return err
	}
	if err := c.client.Bucket(c.bucketName).Object(object).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete %s: %w", object, err)
	}
	return nil
}

// GetSignedURL grants temporary read access to an object.
func (c *CloudStorageClient) GetSignedURL(ctx context.Context, object string, expiration time.Duration) (string, error) {
	url, err := c.client.Bucket(c.bucketName).SignedURL(object, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(expiration),
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign URL for %s: %w", object, err)
	}
	return url, nil
}

func (c *CloudStorageClient) objectURL(object string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, object)
}

func (c *CloudStorageClient) objectFromURL(resumeURL string) (string, error) {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", c.bucketName)
	if !strings.HasPrefix(resumeURL, prefix) {
		return "", fmt.Errorf("resume URL %q is not in bucket %s", resumeURL, c.bucketName)
	}
	return strings.TrimPrefix(resumeURL, prefix), nil
}

// sanitizeOwner makes an email or session ID safe as a path segment.
func sanitizeOwner(owner string) string {
	r := strings.NewReplacer("@", "_at_", ".", "_", "/", "_")
	return r.Replace(owner)
}

func contentTypeFor(ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}
