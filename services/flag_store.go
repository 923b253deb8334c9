// services/flag_store.go
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"
)

// FlagStore holds the per-category "alert already shown" markers. Each flag
// stores the date (YYYY-MM-DD) the alert last fired; a flag matching today
// suppresses a repeat. Flags are independent keys, one round trip each --
// a crash between writes leaves a partially-set group, which is harmless
// because every check is idempotent.
type FlagStore interface {
	GetFlag(ctx context.Context, userID uint, category GoalCategory) (string, error)
	SetFlag(ctx context.Context, userID uint, category GoalCategory, date string) error
	ClearFlags(ctx context.Context, userID uint, categories []GoalCategory) error
}

func flagKey(userID uint, category GoalCategory) string {
	return fmt.Sprintf("alert:%d:%s", userID, category)
}

// RedisFlagStore keeps the flags in Redis.
type RedisFlagStore struct {
	client *redis.Client
}

func NewRedisFlagStore(client *redis.Client) *RedisFlagStore {
	return &RedisFlagStore{client: client}
}

func (s *RedisFlagStore) GetFlag(ctx context.Context, userID uint, category GoalCategory) (string, error) {
	val, err := s.client.Get(ctx, flagKey(userID, category)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisFlagStore) SetFlag(ctx context.Context, userID uint, category GoalCategory, date string) error {
	return s.client.Set(ctx, flagKey(userID, category), date, 0).Err()
}

func (s *RedisFlagStore) ClearFlags(ctx context.Context, userID uint, categories []GoalCategory) error {
	keys := make([]string, 0, len(categories))
	for _, c := range categories {
		keys = append(keys, flagKey(userID, c))
	}
	return s.client.Del(ctx, keys...).Err()
}

// MemoryFlagStore is an in-process FlagStore used in tests and when no
// Redis address is configured.
type MemoryFlagStore struct {
	mu    sync.Mutex
	flags map[string]string
}

func NewMemoryFlagStore() *MemoryFlagStore {
	return &MemoryFlagStore{flags: make(map[string]string)}
}

func (s *MemoryFlagStore) GetFlag(_ context.Context, userID uint, category GoalCategory) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags[flagKey(userID, category)], nil
}

func (s *MemoryFlagStore) SetFlag(_ context.Context, userID uint, category GoalCategory, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[flagKey(userID, category)] = date
	return nil
}

func (s *MemoryFlagStore) ClearFlags(_ context.Context, userID uint, categories []GoalCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range categories {
		delete(s.flags, flagKey(userID, c))
	}
	return nil
}
