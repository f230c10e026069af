package cache

import (
	"context"
	"encoding/json"
	"intakeflow/internal/model"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultSessionTTL bounds how long an idle wizard session is kept
const DefaultSessionTTL = 2 * time.Hour

// SessionCache stores in-progress wizard sessions
type SessionCache interface {
	Set(ctx context.Context, session *model.Session) error
	// Get returns nil, nil when the session does not exist or has expired
	Get(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error

	// AcquireSubmit takes the per-session submit lock. It reports false
	// when another submission already holds it.
	AcquireSubmit(ctx context.Context, id string, ttl time.Duration) (bool, error)
	ReleaseSubmit(ctx context.Context, id string) error
	SubmitInFlight(ctx context.Context, id string) (bool, error)
}

type sessionCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewSessionCache creates a Redis-backed session cache
func NewSessionCache(client redis.Cmdable, ttl time.Duration) SessionCache {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &sessionCache{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(id string) string {
	return "intake:session:" + id
}

func submitLockKey(id string) string {
	return sessionKey(id) + ":submit"
}

func (c *sessionCache) Set(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, sessionKey(session.ID), data, c.ttl).Err()
}

func (c *sessionCache) Get(ctx context.Context, id string) (*model.Session, error) {
	data, err := c.client.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session model.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	if session.Answers == nil {
		session.Answers = model.AnswerSet{}
	}
	return &session, nil
}

func (c *sessionCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, sessionKey(id)).Err()
}

func (c *sessionCache) AcquireSubmit(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, submitLockKey(id), time.Now().UTC().Format(time.RFC3339), ttl).Result()
}

func (c *sessionCache) ReleaseSubmit(ctx context.Context, id string) error {
	return c.client.Del(ctx, submitLockKey(id)).Err()
}

func (c *sessionCache) SubmitInFlight(ctx context.Context, id string) (bool, error) {
	n, err := c.client.Exists(ctx, submitLockKey(id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
