package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"touristguide/internal/domain/models"

	"github.com/redis/go-redis/v9"
)

// RedisHistoryRepository stores entries as JSON in a capped Redis list.
type RedisHistoryRepository struct {
	Client *redis.Client
	Key    string
	Limit  int
}

func (r RedisHistoryRepository) Append(ctx context.Context, entry models.HistoryEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode history entry: %w", err)
	}

	_, err = r.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, r.Key, payload)
		if r.Limit > 0 {
			pipe.LTrim(ctx, r.Key, int64(-r.Limit), -1)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis append history: %w", err)
	}
	return nil
}

func (r RedisHistoryRepository) List(ctx context.Context) ([]models.HistoryEntry, error) {
	raw, err := r.Client.LRange(ctx, r.Key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis list history: %w", err)
	}

	out := make([]models.HistoryEntry, 0, len(raw))
	for _, item := range raw {
		var e models.HistoryEntry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return nil, fmt.Errorf("decode history entry: %w", err)
		}
		out = append(out, e)
	}
	return out, nil
}

func (r RedisHistoryRepository) Ping(ctx context.Context) error {
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r RedisHistoryRepository) Name() string { return "redis" }
