package redisprovider

import (
	"assetconsole/models"
	"context"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

// RedisCredentialStore shares one session between several console processes.
type RedisCredentialStore struct {
	client *redis.Client
	prefix string
}

func NewRedisCredentialStore(addr, prefix string) *RedisCredentialStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	return NewRedisCredentialStoreWithClient(rdb, prefix)
}

func NewRedisCredentialStoreWithClient(client *redis.Client, prefix string) *RedisCredentialStore {
	return &RedisCredentialStore{client: client, prefix: prefix}
}

func (r *RedisCredentialStore) TokenKey() string {
	return r.prefix + ":token"
}

func (r *RedisCredentialStore) UserKey() string {
	return r.prefix + ":user"
}

func (r *RedisCredentialStore) CurrentToken(ctx context.Context) (string, bool, error) {
	token, err := r.client.Get(ctx, r.TokenKey()).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read token from redis: %w", err)
	}
	return token, token != "", nil
}

func (r *RedisCredentialStore) CurrentUser(ctx context.Context) (*models.User, error) {
	raw, err := r.client.Get(ctx, r.UserKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user from redis: %w", err)
	}
	var user models.User
	if err := jsoniter.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("failed to decode stored user: %w", err)
	}
	return &user, nil
}

func (r *RedisCredentialStore) Save(ctx context.Context, session models.Session) error {
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.TokenKey(), session.Token, 0)
	if session.User != nil {
		raw, err := jsoniter.Marshal(session.User)
		if err != nil {
			return fmt.Errorf("failed to encode user: %w", err)
		}
		pipe.Set(ctx, r.UserKey(), raw, 0)
	} else {
		pipe.Del(ctx, r.UserKey())
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session to redis: %w", err)
	}
	return nil
}

func (r *RedisCredentialStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.TokenKey(), r.UserKey()).Err(); err != nil {
		return fmt.Errorf("failed to clear session in redis: %w", err)
	}
	return nil
}

func (r *RedisCredentialStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisCredentialStore) Close() error {
	return r.client.Close()
}
