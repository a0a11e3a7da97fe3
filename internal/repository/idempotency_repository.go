package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReservationTTL covers the ledger's transaction validity window with room
// for a client retry.
const ReservationTTL = 3 * time.Minute

// IdempotencyRepository reserves a client-generated transaction ID under an
// idempotency key so a retried transfer reuses the same ID instead of
// producing a second debit.
type IdempotencyRepository struct {
	redis *redis.Client
}

func NewIdempotencyRepository(redis *redis.Client) *IdempotencyRepository {
	return &IdempotencyRepository{redis: redis}
}

// Reserve stores transactionID under key unless a reservation already exists.
// It returns the transaction ID that holds the reservation and whether this
// call created it.
func (r *IdempotencyRepository) Reserve(ctx context.Context, key, transactionID string, ttl time.Duration) (string, bool, error) {
	cacheKey := fmt.Sprintf("transfer:idempotency:%s", key)
	created, err := r.redis.SetNX(ctx, cacheKey, transactionID, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to reserve transaction id: %w", err)
	}
	if created {
		return transactionID, true, nil
	}
	existing, err := r.redis.Get(ctx, cacheKey).Result()
	if err == redis.Nil {
		// Reservation expired between SetNX and Get; treat ours as fresh.
		return transactionID, true, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read reservation: %w", err)
	}
	return existing, false, nil
}
