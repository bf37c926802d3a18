package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mediconnect/internal/domain/entity"
	domainRepo "mediconnect/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const BookingSessionKeyPrefix = "booking:session:"

type bookingSessionRepository struct {
	redisClient *redis.Client
}

func NewBookingSessionRepository(redisClient *redis.Client) domainRepo.BookingSessionRepository {
	return &bookingSessionRepository{redisClient: redisClient}
}

func (r *bookingSessionRepository) Save(ctx context.Context, session *entity.BookingSession, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal booking session %s: %w", session.ID, err)
	}
	return r.redisClient.Set(ctx, bookingSessionKey(session.ID), payload, ttl).Err()
}

func (r *bookingSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingSession, error) {
	payload, err := r.redisClient.Get(ctx, bookingSessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var session entity.BookingSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("unmarshal booking session %s: %w", id, err)
	}
	return &session, nil
}

func (r *bookingSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.redisClient.Del(ctx, bookingSessionKey(id)).Err()
}

func bookingSessionKey(id uuid.UUID) string {
	return BookingSessionKeyPrefix + id.String()
}
