// File: service/ai/contextStore.go
package ai

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"showphaze/models"
	"showphaze/utils"
)

// RedisSessionStore keeps the outcome of recent booking requests under a TTL
// so a client can re-fetch the result it was handed. This is a transient
// cache, not booking persistence.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.AgentSession, error) {
	key := utils.SessionCachePrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session models.AgentSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, session *models.AgentSession) error {
	key := utils.SessionCachePrefix + session.SessionID
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, utils.SessionCachePrefix+sessionID).Err()
}
