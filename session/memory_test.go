package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercopilot/backend/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(4 * time.Hour)
	ctx := context.Background()

	s, err := store.Create(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)

	s.ResumeText = "resume"
	s.TargetRole = "Backend Developer"
	s.Analysis = &models.Analysis{RoleFitScore: 80}
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "resume", got.ResumeText)
	assert.Equal(t, 80, got.Analysis.RoleFitScore)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(4 * time.Hour)
	now := time.Now()
	store.now = func() time.Time { return now }

	s, err := store.Create(context.Background())
	require.NoError(t, err)

	now = now.Add(4*time.Hour + time.Minute)
	_, err = store.Get(context.Background(), s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreSaveRefreshesTTL(t *testing.T) {
	store := NewMemoryStore(4 * time.Hour)
	now := time.Now()
	store.now = func() time.Time { return now }

	s, err := store.Create(context.Background())
	require.NoError(t, err)

	now = now.Add(3 * time.Hour)
	require.NoError(t, store.Save(context.Background(), s))

	now = now.Add(2 * time.Hour)
	_, err = store.Get(context.Background(), s.ID)
	assert.NoError(t, err)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	s, err := store.Create(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, s.ID))

	_, err = store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, store.Delete(ctx, s.ID))
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	s, _ := store.Create(ctx)
	s.TargetRole = "Data Analyst"
	require.NoError(t, store.Save(ctx, s))

	first, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	first.TargetRole = "mutated"

	second, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Data Analyst", second.TargetRole)
}
