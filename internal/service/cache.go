package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"movie_tracker/db/redis"
	"movie_tracker/model"
	errorHandler "movie_tracker/pkg/error"
)

type ICacheService interface {
	GetMovieCountsVersion(ctx context.Context, userId int64) (int64, error)
	GetMovieCountsCache(ctx context.Context, userId int64, version int64) (*model.MovieCountsRes, error)
	SetMovieCountsCache(ctx context.Context, userId int64, version int64, counts *model.MovieCountsRes)
	RemoveMovieCountsCache(ctx context.Context, userId int64)
	IsJwtBlacklisted(ctx context.Context, tokenId string) (bool, error)
	BlacklistJwt(ctx context.Context, tokenId string, duration time.Duration) error
}

const (
	jwtBlacklistCachePrefix  = "jwtBlacklist:"
	movieCountsCachePrefix   = "movieCounts:"
	movieCountsVersionPrefix = "movieCountsVersion:"
	movieCountsCacheTtl      = 5 * time.Minute
	// outlives every counts entry so an expired version can't match a stale one
	movieCountsVersionTtl = 24 * time.Hour
)

type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

//------------------------------------------
//------------------------------------------

// GetMovieCountsVersion returns the number of changes recorded for the user's
// counts, 0 when none are.
func (s *CacheService) GetMovieCountsVersion(ctx context.Context, userId int64) (int64, error) {
	result, err := redis.GetRedis(ctx, movieCountsVersionKey(userId))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return strconv.ParseInt(result, 10, 64)
}

// GetMovieCountsCache returns nil on a miss, on an entry computed for another
// version, or when redis is unavailable.
func (s *CacheService) GetMovieCountsCache(ctx context.Context, userId int64, version int64) (*model.MovieCountsRes, error) {
	result, err := redis.GetRedis(ctx, movieCountsKey(userId))
	if err != nil {
		if errors.Is(err, redis.Nil) || errors.Is(err, redis.ErrNotConnected) {
			return nil, nil
		}
		errorMessage := fmt.Sprintf("Redis Error on reading movie counts: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return nil, nil
	}

	var cached model.CachedMovieCounts
	if err = json.Unmarshal([]byte(result), &cached); err != nil {
		return nil, err
	}
	if cached.UserId != userId || cached.Version != version {
		return nil, nil
	}
	return &cached.Counts, nil
}

// SetMovieCountsCache stores counts read after observing version.
func (s *CacheService) SetMovieCountsCache(ctx context.Context, userId int64, version int64, counts *model.MovieCountsRes) {
	jsonData, err := json.Marshal(model.CachedMovieCounts{UserId: userId, Version: version, Counts: *counts})
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving movie counts: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return
	}
	err = redis.SetRedis(ctx, movieCountsKey(userId), jsonData, movieCountsCacheTtl)
	if err != nil && !errors.Is(err, redis.ErrNotConnected) {
		errorMessage := fmt.Sprintf("Redis Error on saving movie counts: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
}

// RemoveMovieCountsCache bumps the version so counts computed before the
// change are never served, then drops the entry.
func (s *CacheService) RemoveMovieCountsCache(ctx context.Context, userId int64) {
	_, err := redis.IncrRedis(ctx, movieCountsVersionKey(userId), movieCountsVersionTtl)
	if err == nil {
		err = redis.DelRedis(ctx, movieCountsKey(userId))
	}
	if err != nil && !errors.Is(err, redis.ErrNotConnected) {
		errorMessage := fmt.Sprintf("Redis Error on removing movie counts: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
}

//------------------------------------------
//------------------------------------------

func (s *CacheService) IsJwtBlacklisted(ctx context.Context, tokenId string) (bool, error) {
	exist, err := redis.ExistsRedis(ctx, jwtBlacklistCachePrefix+tokenId)
	if err != nil {
		if errors.Is(err, redis.ErrNotConnected) {
			return false, nil
		}
		return false, err
	}
	return exist, nil
}

func (s *CacheService) BlacklistJwt(ctx context.Context, tokenId string, duration time.Duration) error {
	if duration <= 0 {
		return nil
	}
	err := redis.SetRedis(ctx, jwtBlacklistCachePrefix+tokenId, "1", duration)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving jwt: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
	return err
}

//------------------------------------------
//------------------------------------------

func movieCountsKey(userId int64) string {
	return movieCountsCachePrefix + strconv.FormatInt(userId, 10)
}

func movieCountsVersionKey(userId int64) string {
	return movieCountsVersionPrefix + strconv.FormatInt(userId, 10)
}
