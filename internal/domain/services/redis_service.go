package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"pdrims-http-service/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// InterfaceTokenStore remembers revoked token identifiers until they expire.
type InterfaceTokenStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

const revokedTokenPrefix = "revoked_token:"

// RedisService keeps the token revocation list in Redis so it is shared by
// every instance and survives restarts.
type RedisService struct {
	Client *redis.Client
}

// NewRedisService creates a new Redis backed token store
func NewRedisService(cfg *config.Config) *RedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return &RedisService{Client: client}
}

// NewTokenStore picks Redis when it is configured and a process-local store
// otherwise.
func NewTokenStore(cfg *config.Config) InterfaceTokenStore {
	if cfg.GetRedisAddr() == "" {
		return NewMemoryTokenStore()
	}
	return NewRedisService(cfg)
}

// 1 Revoke marks tokenID revoked for ttl
func (s *RedisService) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.Client.Set(ctx, revokedTokenPrefix+tokenID, "1", ttl).Err()
}

// 2 IsRevoked reports whether tokenID was revoked
func (s *RedisService) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := s.Client.Get(ctx, revokedTokenPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// 3 Ping checks the Redis connection
func (s *RedisService) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

// MemoryTokenStore is the single-instance revocation list.
type MemoryTokenStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewMemoryTokenStore creates an empty in-memory token store
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryTokenStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, exp := range s.revoked {
		if !exp.After(now) {
			delete(s.revoked, id)
		}
	}
	s.revoked[tokenID] = now.Add(ttl)
	return nil
}

func (s *MemoryTokenStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !exp.After(s.now()) {
		delete(s.revoked, tokenID)
		return false, nil
	}
	return true, nil
}
