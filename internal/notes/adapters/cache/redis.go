// Package cache содержит реализацию кэширования списков заметок в Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"notekeep/internal/notes/config"
	"notekeep/internal/notes/domain/entities"
	"notekeep/internal/notes/ports/cache"
	"notekeep/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodGet        = "get"
	LogMethodSet        = "set"
	LogMethodInvalidate = "invalidate"

	ErrorFailedToGet        = "failed to get notes from redis"
	ErrorFailedToSet        = "failed to set notes in redis"
	ErrorFailedToInvalidate = "failed to invalidate notes in redis"
	ErrorFailedToClose      = "failed to close redis connection"
	ErrorFailedToMarshal    = "failed to marshal notes"
	ErrorFailedToUnmarshal  = "failed to unmarshal cached notes"
)

const keyPrefix = "notes:owner:"

// RedisNotesCache реализует интерфейс cache.NotesCache поверх Redis.
type RedisNotesCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisNotesCache создает новый экземпляр RedisNotesCache.
func NewRedisNotesCache(ctx context.Context, cfg *config.RedisConfig) (cache.NotesCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.GetAddress(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.ConnectTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisNotesCache{
		client: client,
		ttl:    cfg.DefaultTTL,
	}, nil
}

// GetNotes получает закэшированный список заметок владельца.
func (c *RedisNotesCache) GetNotes(ctx context.Context, ownerID int64) ([]*entities.Note, bool, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodGet), zap.Int64("ownerID", ownerID))

	value, err := c.client.Get(ctx, ownerKey(ownerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		log.Error(ctx, ErrorFailedToGet, zap.Error(err))
		return nil, false, fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}

	var notes []*entities.Note
	if err := json.Unmarshal([]byte(value), &notes); err != nil {
		log.Error(ctx, ErrorFailedToUnmarshal, zap.Error(err))
		return nil, false, fmt.Errorf("%s: %w", ErrorFailedToUnmarshal, err)
	}

	return notes, true, nil
}

// SetNotes сохраняет список заметок владельца с временем жизни по умолчанию.
func (c *RedisNotesCache) SetNotes(ctx context.Context, ownerID int64, notes []*entities.Note) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodSet), zap.Int64("ownerID", ownerID))

	payload, err := json.Marshal(notes)
	if err != nil {
		log.Error(ctx, ErrorFailedToMarshal, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToMarshal, err)
	}

	if err := c.client.Set(ctx, ownerKey(ownerID), payload, c.ttl).Err(); err != nil {
		log.Error(ctx, ErrorFailedToSet, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}

	return nil
}

// Invalidate удаляет закэшированный список заметок владельца.
func (c *RedisNotesCache) Invalidate(ctx context.Context, ownerID int64) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodInvalidate), zap.Int64("ownerID", ownerID))

	if err := c.client.Del(ctx, ownerKey(ownerID)).Err(); err != nil {
		log.Error(ctx, ErrorFailedToInvalidate, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToInvalidate, err)
	}

	return nil
}

// Close закрывает соединение с Redis.
func (c *RedisNotesCache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}

func ownerKey(ownerID int64) string {
	return keyPrefix + strconv.FormatInt(ownerID, 10)
}
