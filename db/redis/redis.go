package redis

import (
	"context"
	"errors"
	"sync"
	"time"

	"movie_tracker/configs"
	"movie_tracker/pkg/logger"

	"github.com/redis/go-redis/v9"
)

var (
	clientMux   sync.RWMutex
	redisClient *redis.Client
)

var ErrNotConnected = errors.New("redis: not connected")

// Nil is returned by GetRedis when the key does not exist.
const Nil = redis.Nil

func ConnectRedis() {
	if configs.GetConfigs().RedisUrl == "" {
		logger.Named("redis").Warn("REDIS_URL is empty, cache disabled")
		return
	}
	time.Sleep(time.Duration(configs.GetConfigs().WaitForRedisConnectionSec) * time.Second)
	client := redis.NewClient(&redis.Options{
		Addr:     configs.GetConfigs().RedisUrl,
		Password: configs.GetConfigs().RedisPassword,
		DB:       0,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		logger.Named("redis").Error("could not ping redis", "error", err)
	} else {
		logger.Named("redis").Info("redis client connected", "pong", pong)
	}
	setClient(client)
}

func setClient(client *redis.Client) {
	clientMux.Lock()
	defer clientMux.Unlock()
	redisClient = client
}

func getClient() *redis.Client {
	clientMux.RLock()
	defer clientMux.RUnlock()
	return redisClient
}

func GetRedis(ctx context.Context, key string) (string, error) {
	client := getClient()
	if client == nil {
		return "", ErrNotConnected
	}
	return client.Get(ctx, key).Result()
}

func SetRedis(ctx context.Context, key string, value interface{}, duration time.Duration) error {
	client := getClient()
	if client == nil {
		return ErrNotConnected
	}
	return client.Set(ctx, key, value, duration).Err()
}

func DelRedis(ctx context.Context, keys ...string) error {
	client := getClient()
	if client == nil {
		return ErrNotConnected
	}
	return client.Del(ctx, keys...).Err()
}

// IncrRedis increments key and resets its expiration in one transaction.
func IncrRedis(ctx context.Context, key string, duration time.Duration) (int64, error) {
	client := getClient()
	if client == nil {
		return 0, ErrNotConnected
	}
	var incr *redis.IntCmd
	_, err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, duration)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func ExistsRedis(ctx context.Context, key string) (bool, error) {
	client := getClient()
	if client == nil {
		return false, ErrNotConnected
	}
	n, err := client.Exists(ctx, key).Result()
	return n > 0, err
}

func CloseRedis() error {
	clientMux.Lock()
	defer clientMux.Unlock()
	if redisClient == nil {
		return nil
	}
	err := redisClient.Close()
	redisClient = nil
	return err
}
