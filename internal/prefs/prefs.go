// Package prefs stores the per-user display preference (dark or light mode)
// in a durable key-value slot. It carries no invariants; losing it only
// resets the theme.
package prefs

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Store reads and writes a single boolean preference per user.
type Store interface {
	GetDarkMode(userID string) (bool, error)
	SetDarkMode(userID string, enabled bool) error
}

const keyPrefix = "pref:darkmode:"

// RedisStore keeps the preference in Redis so it survives restarts.
type RedisStore struct {
	Redis *redis.Client
	Ctx   context.Context
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{Redis: rdb, Ctx: context.Background()}
}

// GetDarkMode returns the stored preference, defaulting to light mode when
// the user has never toggled it.
func (s *RedisStore) GetDarkMode(userID string) (bool, error) {
	val, err := s.Redis.Get(s.Ctx, keyPrefix+userID).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strconv.ParseBool(val)
}

func (s *RedisStore) SetDarkMode(userID string, enabled bool) error {
	return s.Redis.Set(s.Ctx, keyPrefix+userID, strconv.FormatBool(enabled), 0).Err()
}

// MemoryStore is the fallback when no Redis is configured, and the
// implementation tests run against.
type MemoryStore struct {
	mu    sync.RWMutex
	flags map[string]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{flags: make(map[string]bool)}
}

func (s *MemoryStore) GetDarkMode(userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags[userID], nil
}

func (s *MemoryStore) SetDarkMode(userID string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[userID] = enabled
	return nil
}
