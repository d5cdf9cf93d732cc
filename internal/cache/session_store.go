// Package cache provides the session store the assessment core deliberately
// does not own: sessions are rehydrated through this explicit collaborator,
// never through ambient storage.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/philippoppel/findmytherapy-sub000/internal/model"
)

// ErrSessionNotFound is returned when no session exists under the given ID,
// typically because it expired or was discarded.
var ErrSessionNotFound = errors.New("session not found")

type SessionStore interface {
	Save(ctx context.Context, session *model.Session) error
	Load(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
}

type sessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &sessionStore{
		client: client,
		ttl:    ttl,
	}
}

func (c *sessionStore) Save(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "assessment:"+session.ID, data, c.ttl).Err()
}

func (c *sessionStore) Load(ctx context.Context, id string) (*model.Session, error) {
	data, err := c.client.Get(ctx, "assessment:"+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
		}
		return nil, err
	}
	var session model.Session
	err = json.Unmarshal([]byte(data), &session)
	return &session, err
}

func (c *sessionStore) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, "assessment:"+id).Err()
}
