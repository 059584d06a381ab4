package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dutyhq/roster-api/internal/models"
)

const runKeyPrefix = "roster:run:"

// MemoryRunStore keeps schedule runs in process memory with per-entry
// expiry. The default store when Redis is not configured.
type MemoryRunStore struct {
	mu    sync.RWMutex
	items map[string]memoryRun
}

type memoryRun struct {
	run       *models.ScheduleRun
	expiresAt time.Time
}

// NewMemoryRunStore builds an empty in-memory run store.
func NewMemoryRunStore() *MemoryRunStore {
	return &MemoryRunStore{items: make(map[string]memoryRun)}
}

// Save stores a run until its TTL elapses.
func (s *MemoryRunStore) Save(ctx context.Context, run *models.ScheduleRun, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[run.RunID] = memoryRun{run: run, expiresAt: time.Now().Add(ttl)}
	return nil
}

// Get returns a stored run, or nil when absent or expired.
func (s *MemoryRunStore) Get(ctx context.Context, id string) (*models.ScheduleRun, error) {
	s.mu.RLock()
	item, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if time.Now().After(item.expiresAt) {
		s.mu.Lock()
		delete(s.items, id)
		s.mu.Unlock()
		return nil, nil
	}
	return item.run, nil
}

// RedisRunStore persists schedule runs as JSON in Redis, surviving process
// restarts and shared across replicas.
type RedisRunStore struct {
	client *redis.Client
}

// NewRedisRunStore wraps a Redis client as a run store.
func NewRedisRunStore(client *redis.Client) *RedisRunStore {
	return &RedisRunStore{client: client}
}

// Save serializes the run and stores it with the given TTL.
func (s *RedisRunStore) Save(ctx context.Context, run *models.ScheduleRun, ttl time.Duration) error {
	payload, err := json.Marshal(run)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, runKeyPrefix+run.RunID, payload, ttl).Err()
}

// Get returns a stored run, or nil when the key is gone.
func (s *RedisRunStore) Get(ctx context.Context, id string) (*models.ScheduleRun, error) {
	payload, err := s.client.Get(ctx, runKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var run models.ScheduleRun
	if err := json.Unmarshal(payload, &run); err != nil {
		return nil, err
	}
	return &run, nil
}
