package service

import (
	"fmt"

	"movie_tracker/internal/repository"
	"movie_tracker/model"
)

type ICatalogService interface {
	ResolveMovie(repo repository.IMovieRepository, payload *model.MoviePayload) (*model.Movie, error)
	NormalizeGenres(repo repository.IMovieRepository, movie *model.Movie, genres []model.GenrePayload) error
}

// CatalogService keeps the shared Movie and Genre tables in sync with the
// catalog entries embedded in user actions. It holds no state; callers pass
// the repository so the work joins their transaction.
type CatalogService struct{}

func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

//------------------------------------------
//------------------------------------------

// ResolveMovie returns the local movie for payload.TmdbId, creating it on
// first sight. Stored scalar fields are never overwritten; genres are only
// written when the movie is new or has none yet.
func (s *CatalogService) ResolveMovie(repo repository.IMovieRepository, payload *model.MoviePayload) (*model.Movie, error) {
	if fields := payload.Validate(); fields != nil {
		return nil, &ValidationError{Err: ErrInvalidMovie, Fields: fields}
	}

	movie, err := repo.GetMovieByTmdbId(payload.TmdbId)
	if err != nil {
		return nil, err
	}

	created := false
	if movie == nil {
		candidate := payload.ToMovie()
		inserted, err := repo.InsertMovieIfAbsent(candidate)
		if err != nil {
			return nil, err
		}
		if inserted {
			movie = candidate
			created = true
		} else {
			// lost the race, the other writer's row wins
			movie, err = repo.GetMovieByTmdbId(payload.TmdbId)
			if err != nil {
				return nil, err
			}
			if movie == nil {
				return nil, fmt.Errorf("%w: movie %d vanished after insert conflict", ErrConflict, payload.TmdbId)
			}
		}
	}

	genres := payload.DistinctGenres()
	if len(genres) > 0 {
		needGenres := created
		if !created {
			count, err := repo.CountMovieGenres(movie.Id)
			if err != nil {
				return nil, err
			}
			needGenres = count == 0
		}
		if needGenres {
			if err = s.NormalizeGenres(repo, movie, genres); err != nil {
				return nil, err
			}
			return movie, nil
		}
	}

	byMovie, err := repo.GetMovieGenres([]int64{movie.Id})
	if err != nil {
		return nil, err
	}
	movie.Genres = byMovie[movie.Id]
	if movie.Genres == nil {
		movie.Genres = []model.Genre{}
	}
	return movie, nil
}

// NormalizeGenres makes the movie's genres exactly the distinct genres of
// the list, in first occurrence order. Unknown genres are created with the
// supplied name.
func (s *CatalogService) NormalizeGenres(repo repository.IMovieRepository, movie *model.Movie, genres []model.GenrePayload) error {
	distinct := (&model.MoviePayload{Genres: genres}).DistinctGenres()

	stored, err := repo.EnsureGenres(distinct)
	if err != nil {
		return err
	}

	genreIds := make([]int64, 0, len(distinct))
	movie.Genres = make([]model.Genre, 0, len(distinct))
	for _, g := range distinct {
		genre, ok := stored[g.Id]
		if !ok {
			return fmt.Errorf("genre %d missing after insert", g.Id)
		}
		genreIds = append(genreIds, genre.Id)
		movie.Genres = append(movie.Genres, genre)
	}

	return repo.ReplaceMovieGenres(movie.Id, genreIds)
}
