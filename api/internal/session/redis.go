package session

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"slider-bot/api/internal/flow"
)

// Sessions are abandoned silently all the time; let Redis reap them.
const sessionTTL = 24 * time.Hour

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string, db int) *RedisStore {
	return &RedisStore{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func key(chatID int64) string { return "session:" + strconv.FormatInt(chatID, 10) }

func (r *RedisStore) Get(ctx context.Context, chatID int64) (*flow.Session, error) {
	raw, err := r.client.Get(ctx, key(chatID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s flow.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		// битая запись равносильна отсутствию сессии
		return nil, nil
	}
	return &s, nil
}

func (r *RedisStore) Put(ctx context.Context, chatID int64, s *flow.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key(chatID), raw, sessionTTL).Err()
}

func (r *RedisStore) Delete(ctx context.Context, chatID int64) error {
	return r.client.Del(ctx, key(chatID)).Err()
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
