package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/villa_booking/internal/core/domain"
)

// HistoryCache keeps decoded booking histories in Redis so browsing versions
// does not hit Postgres on every request.
type HistoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewHistoryCache(client *redis.Client, ttl time.Duration) *HistoryCache {
	return &HistoryCache{client: client, ttl: ttl}
}

func historyKey(bookingID int64) string {
	return fmt.Sprintf("booking:%d:history", bookingID)
}

func (c *HistoryCache) Get(ctx context.Context, bookingID int64) ([]domain.Booking, bool, error) {
	raw, err := c.client.Get(ctx, historyKey(bookingID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var history []domain.Booking
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, false, fmt.Errorf("decode cached history %d: %w", bookingID, err)
	}
	return history, true, nil
}

func (c *HistoryCache) Set(ctx context.Context, bookingID int64, history []domain.Booking) error {
	payload, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, historyKey(bookingID), string(payload), c.ttl).Err()
}

func (c *HistoryCache) Invalidate(ctx context.Context, bookingID int64) error {
	return c.client.Del(ctx, historyKey(bookingID)).Err()
}
