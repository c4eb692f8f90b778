package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/domain"
)

func newTestSession() *domain.Session {
	now := time.Now()
	return &domain.Session{
		ID:           uuid.New(),
		Mode:         domain.ModeSimulator,
		CaseContext:  "case text",
		WitnessName:  "Jane Doe",
		ExamType:     domain.ExamDirect,
		CreatedAt:    now,
		LastActiveAt: now,
	}
}

func TestSessionStore_CreateAndGet(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	session := newTestSession()

	err := store.Create(ctx, session)
	assert.NoError(t, err)

	got, err := store.GetByID(ctx, session.ID)
	assert.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, "Jane Doe", got.WitnessName)
}

func TestSessionStore_GetNotFound(t *testing.T) {
	store := NewSessionStore()

	_, err := store.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionStore_Update(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	session := newTestSession()
	assert.NoError(t, store.Create(ctx, session))

	session.Exchanges = append(session.Exchanges, domain.Exchange{
		Question: "Where were you?",
		Answer:   "At home.",
		AskedAt:  time.Now(),
	})
	assert.NoError(t, store.Update(ctx, session))

	got, err := store.GetByID(ctx, session.ID)
	assert.NoError(t, err)
	assert.Len(t, got.Exchanges, 1)
}

func TestSessionStore_UpdateNotFound(t *testing.T) {
	store := NewSessionStore()

	err := store.Update(context.Background(), newTestSession())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	session := newTestSession()
	assert.NoError(t, store.Create(ctx, session))

	assert.NoError(t, store.Delete(ctx, session.ID))

	_, err := store.GetByID(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, store.Delete(ctx, session.ID), domain.ErrSessionNotFound)
}

func TestSessionStore_DeleteExpired(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	stale := newTestSession()
	stale.LastActiveAt = time.Now().Add(-3 * time.Hour)
	fresh := newTestSession()

	assert.NoError(t, store.Create(ctx, stale))
	assert.NoError(t, store.Create(ctx, fresh))

	removed := store.DeleteExpired(ctx, time.Now().Add(-2*time.Hour))
	assert.Equal(t, 1, removed)

	_, err := store.GetByID(ctx, stale.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = store.GetByID(ctx, fresh.ID)
	assert.NoError(t, err)
}

func TestSessionStore_GetReturnsCopy(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	session := newTestSession()
	session.Exchanges = []domain.Exchange{{Question: "Q1", Answer: "A1"}}
	assert.NoError(t, store.Create(ctx, session))

	got, err := store.GetByID(ctx, session.ID)
	assert.NoError(t, err)
	got.Exchanges[0].Answer = "mutated"
	got.WitnessName = "mutated"

	again, err := store.GetByID(ctx, session.ID)
	assert.NoError(t, err)
	assert.Equal(t, "A1", again.Exchanges[0].Answer)
	assert.Equal(t, "Jane Doe", again.WitnessName)
}
