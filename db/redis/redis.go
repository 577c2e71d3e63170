package redis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"movie_discovery/configs"
	errorHandler "movie_discovery/pkg/error"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// ConnectRedis dials redis and verifies the connection. On failure the client
// stays nil and every helper reports errNotConnected, so caches degrade to
// misses instead of hanging on a dead connection.
func ConnectRedis() {
	time.Sleep(time.Duration(configs.GetConfigs().WaitForRedisConnectionSec) * time.Second)
	client := redis.NewClient(&redis.Options{
		Addr:     configs.GetConfigs().RedisUrl,
		Password: configs.GetConfigs().RedisPassword,
		DB:       0,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		errorMessage := fmt.Sprintf("Error on connecting to redis: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return
	}
	redisClient = client
	log.Println("redis connection established")
}

var errNotConnected = errors.New("redis client is not connected")

func GetRedis(ctx context.Context, key string) (string, error) {
	if redisClient == nil {
		return "", errNotConnected
	}
	val, err := redisClient.Get(ctx, key).Result()
	return val, err
}

func MGetRedis(ctx context.Context, keys []string) ([]interface{}, error) {
	if redisClient == nil {
		return nil, errNotConnected
	}
	val, err := redisClient.MGet(ctx, keys...).Result()
	return val, err
}

func SetRedis(ctx context.Context, key string, value interface{}, duration time.Duration) error {
	if redisClient == nil {
		return errNotConnected
	}
	err := redisClient.Set(ctx, key, value, duration).Err()
	return err
}
