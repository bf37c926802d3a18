package repository

import (
	"context"
	"time"

	"mediconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingSessionRepository stores in-progress selections. FindByID returns nil, nil when the session expired.
type BookingSessionRepository interface {
	Save(ctx context.Context, session *entity.BookingSession, ttl time.Duration) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
