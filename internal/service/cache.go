package service

import (
	"context"
	"encoding/json"
	"fmt"
	"movie_discovery/db/redis"
	"movie_discovery/model"
	errorHandler "movie_discovery/pkg/error"
	"time"
)

const (
	trendingCachePrefix = "trending:"
	posterCachePrefix   = "poster:"
)

//------------------------------------------
//------------------------------------------

func getTrendingCache(limit int64) ([]model.SearchCounter, error) {
	key := fmt.Sprintf("%s%d", trendingCachePrefix, limit)
	result, err := redis.GetRedis(context.Background(), key)
	if err != nil && err.Error() != "redis: nil" {
		return nil, nil
	}
	if result != "" {
		var jsonData []model.SearchCounter
		err = json.Unmarshal([]byte(result), &jsonData)
		if err != nil {
			return nil, err
		}
		return jsonData, nil
	}
	return nil, err
}

func setTrendingCache(limit int64, movies []model.SearchCounter, duration time.Duration) error {
	jsonData, err := json.Marshal(movies)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving trending: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return err
	}

	key := fmt.Sprintf("%s%d", trendingCachePrefix, limit)
	err = redis.SetRedis(context.Background(), key, jsonData, duration)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving trending: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
	return err
}

//------------------------------------------
//------------------------------------------

func getPosterCache(key string) ([]byte, error) {
	result, err := redis.GetRedis(context.Background(), posterCachePrefix+key)
	if err != nil && err.Error() != "redis: nil" {
		return nil, nil
	}
	if result != "" {
		return []byte(result), nil
	}
	return nil, err
}

func setPosterCache(key string, data []byte, duration time.Duration) error {
	err := redis.SetRedis(context.Background(), posterCachePrefix+key, data, duration)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving poster: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
	return err
}
