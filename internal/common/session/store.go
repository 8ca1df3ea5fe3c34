// Package session persists per-session client state in Redis, most
// importantly the id of the application currently being displayed so a
// reload lands the user back on the same application.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ethics-workflow/internal/common/config"
)

// CurrentApplicationKey is the fixed storage key for the open application id.
const CurrentApplicationKey = "ethics.currentApplication"

const defaultTTL = 24 * time.Hour

// Store wraps a Redis client scoped to one user session.
type Store struct {
	client    *redis.Client
	sessionID string

	// currentApplication is restored from storage on construction.
	currentApplication string
}

// New connects to Redis and restores any persisted state for sessionID.
func New(ctx context.Context, cfg config.RedisConfig, sessionID string) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return NewWithClient(ctx, rdb, sessionID)
}

// NewWithClient builds a Store over an existing client. Used by tests.
func NewWithClient(ctx context.Context, client *redis.Client, sessionID string) (*Store, error) {
	s := &Store{client: client, sessionID: sessionID}
	val, err := client.Get(ctx, s.key(CurrentApplicationKey)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("restore session state: %w", err)
	}
	s.currentApplication = val
	return s, nil
}

func (s *Store) key(name string) string {
	return fmt.Sprintf("session:%s:%s", s.sessionID, name)
}

// CurrentApplication returns the restored or last-set application id,
// empty when none is open.
func (s *Store) CurrentApplication() string {
	return s.currentApplication
}

// SetCurrentApplication persists the open application id.
func (s *Store) SetCurrentApplication(ctx context.Context, applicationID string) error {
	if err := s.client.Set(ctx, s.key(CurrentApplicationKey), applicationID, defaultTTL).Err(); err != nil {
		return fmt.Errorf("persist current application: %w", err)
	}
	s.currentApplication = applicationID
	return nil
}

// ClearCurrentApplication removes the persisted application id. Called at
// the end of an application-display lifecycle.
func (s *Store) ClearCurrentApplication(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key(CurrentApplicationKey)).Err(); err != nil {
		return fmt.Errorf("clear current application: %w", err)
	}
	s.currentApplication = ""
	return nil
}

// Close closes the underlying Redis connection.
func (s *Store) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
