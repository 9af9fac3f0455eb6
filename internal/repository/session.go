package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

// RedisSessionStore хранит сессии агентств в Redis с TTL
type RedisSessionStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisSessionStore(redisClient *redis.Client, ttl time.Duration) service.SessionStore {
	return &RedisSessionStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Create сохраняет новую сессию и возвращает ее идентификатор
func (s *RedisSessionStore) Create(ctx context.Context, session *service.Session) (string, error) {
	id := uuid.NewString()
	if err := s.set(ctx, id, session); err != nil {
		return "", err
	}
	return id, nil
}

// Get возвращает сессию по идентификатору
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*service.Session, error) {
	val, err := s.redisClient.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("session %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}

	session := &service.Session{}
	if err := json.Unmarshal(val, session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return session, nil
}

// Update перезаписывает сессию, продлевая ее TTL
func (s *RedisSessionStore) Update(ctx context.Context, id string, session *service.Session) error {
	return s.set(ctx, id, session)
}

// Delete завершает сессию
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.redisClient.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) set(ctx context.Context, id string, session *service.Session) error {
	val, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.redisClient.Set(ctx, sessionKey(id), val, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session in redis: %w", err)
	}
	return nil
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}
