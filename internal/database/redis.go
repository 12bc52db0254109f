package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"deal-pipeline-api/internal/persist"
)

// RedisKV is a durable storage medium backed by a redis instance
type RedisKV struct {
	client *redis.Client
}

// OpenRedis connects to redis and verifies the connection with a ping
func OpenRedis(addr, password string, db int, logger *zap.Logger) (*RedisKV, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	logger.Info("redis storage connected", zap.String("addr", addr), zap.Int("db", db))
	return &RedisKV{client: client}, nil
}

func (r *RedisKV) Get(key string) ([]byte, error) {
	value, err := r.client.Get(context.Background(), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, persist.ErrKeyNotFound
	}
	return value, err
}

func (r *RedisKV) Set(key string, value []byte) error {
	return r.client.Set(context.Background(), key, value, 0).Err()
}

func (r *RedisKV) Delete(key string) error {
	return r.client.Del(context.Background(), key).Err()
}

func (r *RedisKV) Close() error {
	return r.client.Close()
}
