package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocabox/internal/domain"
)

func TestSessionStore_CreateAndGet(t *testing.T) {
	store := NewSessionStore()
	now := time.Now()

	session := store.Create(123, domain.ModeGraded, []domain.Candidate{{ProgressID: 1}}, now)

	_, err := uuid.Parse(session.ID)
	assert.NoError(t, err)

	got, err := store.Get(session.ID)
	require.NoError(t, err)
	assert.Same(t, session, got)

	store.Delete(session.ID)
	_, err = store.Get(session.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionStore_Expire(t *testing.T) {
	store := NewSessionStore()
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	candidates := []domain.Candidate{{ProgressID: 1}, {ProgressID: 2}}

	stale := store.Create(1, domain.ModeGraded, candidates, now.Add(-3*time.Hour))
	active := store.Create(2, domain.ModeGraded, candidates, now.Add(-3*time.Hour))
	_, err := active.BeginScoring(now.Add(-10 * time.Minute))
	require.NoError(t, err)
	active.FinishScoring(true, now.Add(-10*time.Minute))

	expired := store.Expire(now, 2*time.Hour)

	assert.Equal(t, 1, expired)
	assert.Equal(t, 1, store.Len())
	_, err = store.Get(stale.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = store.Get(active.ID)
	assert.NoError(t, err)
}

func TestSessionStore_DeleteForUser(t *testing.T) {
	store := NewSessionStore()
	now := time.Now()
	candidates := []domain.Candidate{{ProgressID: 1}}

	store.Create(1, domain.ModeGraded, candidates, now)
	store.Create(1, domain.ModePractice, candidates, now)
	other := store.Create(2, domain.ModeGraded, candidates, now)

	assert.Equal(t, 2, store.DeleteForUser(1))
	assert.Equal(t, 1, store.Len())
	_, err := store.Get(other.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, store.DeleteForUser(1))
}
