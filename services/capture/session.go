package capture

import (
	"context"
	"sync"
	"time"

	"kympulse/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore holds the per-browser-session "already recorded" flag.
type SessionStore interface {
	// Claim sets the flag and reports whether this call was the one that set it.
	Claim(ctx context.Context, sessionID string) (bool, error)
	// Release clears the flag so a failed capture can be retried on reload.
	Release(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps the flags in Redis with a TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = utils.DefaultSessionTTL
	}
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) Claim(ctx context.Context, sessionID string) (bool, error) {
	return s.Client.SetNX(ctx, utils.SessionCachePrefix+sessionID, "true", s.TTL).Result()
}

func (s *RedisSessionStore) Release(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, utils.SessionCachePrefix+sessionID).Err()
}

// MemorySessionStore keeps the flags in process. Flags never expire.
type MemorySessionStore struct {
	mu      sync.Mutex
	claimed map[string]bool
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{claimed: make(map[string]bool)}
}

func (s *MemorySessionStore) Claim(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.claimed[sessionID] {
		return false, nil
	}
	s.claimed[sessionID] = true
	return true, nil
}

func (s *MemorySessionStore) Release(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.claimed, sessionID)
	return nil
}
