package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie_tracker/db/redis"
	"movie_tracker/internal/repository"
	"movie_tracker/model"
	errorHandler "movie_tracker/pkg/error"
)

type IMovieService interface {
	ApplyAction(ctx context.Context, userId int64, action model.Action, payload *model.MoviePayload) (*model.ToggleResult, error)
	GetMovieList(ctx context.Context, userId int64, list model.ListKind) (*model.MoviesListRes, error)
	GetMovieStatus(ctx context.Context, userId int64, tmdbId int64) (*model.MovieStatusRes, error)
	GetMovieCounts(ctx context.Context, userId int64) (*model.MovieCountsRes, error)
	RateMovie(ctx context.Context, userId int64, tmdbId int64, rating *int) (*model.RatingRes, error)
}

type MovieService struct {
	movieRepo repository.IMovieRepository
	catalog   ICatalogService
	cache     ICacheService
	activity  IActivityService
	locks     *keyLock
}

func NewMovieService(movieRepo repository.IMovieRepository, catalog ICatalogService, cache ICacheService, activity IActivityService) *MovieService {
	return &MovieService{
		movieRepo: movieRepo,
		catalog:   catalog,
		cache:     cache,
		activity:  activity,
		locks:     newKeyLock(),
	}
}

//------------------------------------------
//------------------------------------------

// ApplyAction flips the flag named by action for the user and the movie
// described by payload, creating the movie and the relationship on first use.
func (m *MovieService) ApplyAction(ctx context.Context, userId int64, action model.Action, payload *model.MoviePayload) (*model.ToggleResult, error) {
	if _, ok := model.ParseAction(string(action)); !ok {
		return nil, ErrInvalidAction
	}
	if payload == nil {
		return nil, &ValidationError{Err: ErrInvalidMovie, Fields: map[string]string{"id": "must be a positive integer"}}
	}
	if fields := payload.Validate(); fields != nil {
		return nil, &ValidationError{Err: ErrInvalidMovie, Fields: fields}
	}

	unlock := m.locks.Lock(pairKey(userId, payload.TmdbId))
	defer unlock()

	var result model.ToggleResult
	err := m.movieRepo.Transaction(ctx, func(repo repository.IMovieRepository) error {
		movie, err := m.catalog.ResolveMovie(repo, payload)
		if err != nil {
			return err
		}

		userMovie, err := GetOrCreateUserMovie(repo, userId, movie.Id)
		if err != nil {
			return err
		}

		value := userMovie.Apply(action)
		if err = saveUserMovie(repo, userMovie); err != nil {
			return err
		}

		result = model.ToggleResult{
			MovieId: movie.Id,
			TmdbId:  movie.TmdbId,
			Action:  action,
			Value:   value,
		}
		return nil
	})
	if err != nil {
		return nil, translateStoreError(err)
	}

	m.afterChange(ctx, model.ActivityEvent{
		UserId:  userId,
		MovieId: result.MovieId,
		TmdbId:  result.TmdbId,
		Action:  string(action),
		Value:   result.Value,
	})
	return &result, nil
}

// RateMovie sets or clears the user's rating of a movie already in the catalog.
func (m *MovieService) RateMovie(ctx context.Context, userId int64, tmdbId int64, rating *int) (*model.RatingRes, error) {
	if tmdbId <= 0 {
		return nil, ErrMovieNotFound
	}
	if rating != nil && (*rating < 1 || *rating > 10) {
		return nil, ErrInvalidRating
	}

	unlock := m.locks.Lock(pairKey(userId, tmdbId))
	defer unlock()

	var result model.RatingRes
	err := m.movieRepo.Transaction(ctx, func(repo repository.IMovieRepository) error {
		movie, err := repo.GetMovieByTmdbId(tmdbId)
		if err != nil {
			return err
		}
		if movie == nil {
			return ErrMovieNotFound
		}

		userMovie, err := GetOrCreateUserMovie(repo, userId, movie.Id)
		if err != nil {
			return err
		}
		userMovie.UserRating = rating
		if err = saveUserMovie(repo, userMovie); err != nil {
			return err
		}

		result = model.RatingRes{
			MovieId:    movie.Id,
			TmdbId:     movie.TmdbId,
			UserRating: rating,
		}
		return nil
	})
	if err != nil {
		return nil, translateStoreError(err)
	}

	m.afterChange(ctx, model.ActivityEvent{
		UserId:  userId,
		MovieId: result.MovieId,
		TmdbId:  result.TmdbId,
		Action:  model.ActivityRating,
		Value:   rating != nil,
		Rating:  rating,
	})
	return &result, nil
}

//------------------------------------------
//------------------------------------------

func (m *MovieService) GetMovieList(ctx context.Context, userId int64, list model.ListKind) (*model.MoviesListRes, error) {
	if _, ok := model.ParseListKind(string(list)); !ok {
		return nil, ErrInvalidAction
	}

	movies, err := m.movieRepo.WithContext(ctx).GetUserMovieList(userId, list)
	if err != nil {
		return nil, err
	}
	if movies == nil {
		movies = []model.UserMovieView{}
	}
	return &model.MoviesListRes{Count: len(movies), Movies: movies}, nil
}

// GetMovieStatus returns all flags false when the user never touched the movie.
func (m *MovieService) GetMovieStatus(ctx context.Context, userId int64, tmdbId int64) (*model.MovieStatusRes, error) {
	status, err := m.movieRepo.WithContext(ctx).GetUserMovieStatus(userId, tmdbId)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return &model.MovieStatusRes{TmdbId: tmdbId}, nil
	}
	return status, nil
}

// GetMovieCounts serves the cached counts only when no change was recorded
// since they were computed.
func (m *MovieService) GetMovieCounts(ctx context.Context, userId int64) (*model.MovieCountsRes, error) {
	version, err := m.cache.GetMovieCountsVersion(ctx, userId)
	if err != nil {
		if !errors.Is(err, redis.ErrNotConnected) {
			errorMessage := fmt.Sprintf("Error on reading movie counts version: %v", err)
			errorHandler.SaveError(errorMessage, err)
		}
		return m.movieRepo.WithContext(ctx).GetUserMovieCounts(userId)
	}

	cached, err := m.cache.GetMovieCountsCache(ctx, userId, version)
	if err != nil {
		errorMessage := fmt.Sprintf("Error on reading cached movie counts: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
	if cached != nil {
		return cached, nil
	}

	counts, err := m.movieRepo.WithContext(ctx).GetUserMovieCounts(userId)
	if err != nil {
		return nil, err
	}
	m.cache.SetMovieCountsCache(ctx, userId, version, counts)
	return counts, nil
}

//------------------------------------------
//------------------------------------------

// GetOrCreateUserMovie returns the locked relationship row, or a new row with
// every flag off that is inserted by saveUserMovie.
func GetOrCreateUserMovie(repo repository.IMovieRepository, userId int64, movieId int64) (*model.UserMovie, error) {
	userMovie, err := repo.GetUserMovieForUpdate(userId, movieId)
	if err != nil {
		return nil, err
	}
	if userMovie == nil {
		return model.NewUserMovie(userId, movieId), nil
	}
	return userMovie, nil
}

func saveUserMovie(repo repository.IMovieRepository, userMovie *model.UserMovie) error {
	if userMovie.IsLiked && userMovie.IsDisliked {
		return ErrConflict
	}
	if userMovie.Persisted {
		return repo.UpdateUserMovie(userMovie)
	}
	return repo.CreateUserMovie(userMovie)
}

func (m *MovieService) afterChange(ctx context.Context, event model.ActivityEvent) {
	m.cache.RemoveMovieCountsCache(context.WithoutCancel(ctx), event.UserId)

	event.OccurredAt = time.Now().UTC()
	if err := m.activity.AddActivityEvent(event); err != nil && !errors.Is(err, ErrActivityDisabled) && !errors.Is(err, ErrOverflow) {
		errorMessage := fmt.Sprintf("Error on queueing activity event: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
}

func pairKey(userId int64, tmdbId int64) string {
	return fmt.Sprintf("%d:%d", userId, tmdbId)
}
