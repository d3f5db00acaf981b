package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/whiskerworks/adventure-engine/pkg/actor"
)

const (
	adventureKeyPrefix = "adventure:"
	partyKeyPrefix     = "party:"
)

// RedisStorage implements Storage on Redis.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
}

var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a Redis storage instance.
func NewRedisStorage(redisURL string, logger *slog.Logger) *RedisStorage {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})
	return &RedisStorage{
		client: rdb,
		logger: logger,
	}
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available during startup.
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

func (r *RedisStorage) SaveAdventure(ctx context.Context, partyID uuid.UUID, blob []byte) error {
	key := adventureKeyPrefix + partyID.String()
	if err := r.client.Set(ctx, key, blob, 0).Err(); err != nil {
		r.logger.Error("Failed to save adventure", "party_id", partyID, "error", err)
		return fmt.Errorf("failed to save adventure: %w", err)
	}
	return nil
}

func (r *RedisStorage) LoadAdventure(ctx context.Context, partyID uuid.UUID) ([]byte, error) {
	key := adventureKeyPrefix + partyID.String()
	blob, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to load adventure", "party_id", partyID, "error", err)
		return nil, fmt.Errorf("failed to load adventure: %w", err)
	}
	return blob, nil
}

func (r *RedisStorage) DeleteAdventure(ctx context.Context, partyID uuid.UUID) error {
	key := adventureKeyPrefix + partyID.String()
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Failed to delete adventure", "party_id", partyID, "error", err)
		return fmt.Errorf("failed to delete adventure: %w", err)
	}
	return nil
}

func (r *RedisStorage) SaveParty(ctx context.Context, partyID uuid.UUID, cats []*actor.Cat) error {
	data, err := json.Marshal(cats)
	if err != nil {
		return fmt.Errorf("failed to marshal party: %w", err)
	}
	key := partyKeyPrefix + partyID.String()
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		r.logger.Error("Failed to save party", "party_id", partyID, "error", err)
		return fmt.Errorf("failed to save party: %w", err)
	}
	return nil
}

func (r *RedisStorage) LoadParty(ctx context.Context, partyID uuid.UUID) ([]*actor.Cat, error) {
	key := partyKeyPrefix + partyID.String()
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		r.logger.Error("Failed to load party", "party_id", partyID, "error", err)
		return nil, fmt.Errorf("failed to load party: %w", err)
	}
	var cats []*actor.Cat
	if err := json.Unmarshal(data, &cats); err != nil {
		r.logger.Error("Failed to unmarshal party", "party_id", partyID, "error", err)
		return nil, fmt.Errorf("failed to unmarshal party: %w", err)
	}
	return cats, nil
}

func (r *RedisStorage) ListParties(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	iter := r.client.Scan(ctx, 0, partyKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		raw := iter.Val()[len(partyKeyPrefix):]
		id, err := uuid.Parse(raw)
		if err != nil {
			r.logger.Warn("Skipping malformed party key", "key", iter.Val())
			continue
		}
		ids = append(ids, id)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	return ids, nil
}
