package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Calebyte11/Boqbox-landing/internal/usecase"
	"github.com/redis/go-redis/v9"
)

// RedisSessionStore keeps wizard sessions as JSON blobs with a TTL.
// The TTL is refreshed on every write, so a checkout only expires
// after going idle.
type RedisSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSessionStore(rdb *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, ttl: ttl}
}

func sessionKey(id string) string { return "flow:session:" + id }

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*usecase.FlowSession, error) {
	raw, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return nil, usecase.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess usecase.FlowSession
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &sess, nil
}

func (s *RedisSessionStore) Put(ctx context.Context, sess *usecase.FlowSession) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", sess.ID, err)
	}
	return s.rdb.Set(ctx, sessionKey(sess.ID), raw, s.ttl).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKey(id)).Err()
}

var _ usecase.SessionStore = (*RedisSessionStore)(nil)
