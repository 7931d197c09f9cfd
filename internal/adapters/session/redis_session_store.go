package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"transport-management-service/internal/domain"
	"transport-management-service/internal/ports"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "tms:session:"

// RedisSessionStore keeps sessions in Redis so several server instances share them.
// Expiry is enforced by the key TTL.
type RedisSessionStore struct {
	client redis.UniversalClient
}

var _ ports.SessionStore = (*RedisSessionStore)(nil)

func NewRedisSessionStore(client redis.UniversalClient) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

// NewRedisClient parses a redis:// URL and verifies the connection.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return client, nil
}

func (r *RedisSessionStore) Save(ctx context.Context, s domain.Session, ttl time.Duration) error {
	if s.Token == "" {
		return errors.New("save session: empty token")
	}

	b, err := json.Marshal(toRecord(s))
	if err != nil {
		return fmt.Errorf("save session: marshal: %w", err)
	}
	if err := r.client.Set(ctx, keyPrefix+s.Token, b, ttl).Err(); err != nil {
		return fmt.Errorf("save session: redis set: %w", err)
	}
	return nil
}

func (r *RedisSessionStore) Get(ctx context.Context, token string) (domain.Session, error) {
	b, err := r.client.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("get session: redis get: %w", err)
	}

	var rec record
	if err := json.Unmarshal(b, &rec); err != nil {
		return domain.Session{}, fmt.Errorf("get session: unmarshal: %w", err)
	}
	return rec.session(), nil
}

func (r *RedisSessionStore) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: redis del: %w", err)
	}
	return nil
}
