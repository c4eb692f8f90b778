package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/domain"
)

// SessionRepository abstracts session state storage.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Update(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteExpired removes sessions last active before the cutoff and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, cutoff time.Time) int
}
