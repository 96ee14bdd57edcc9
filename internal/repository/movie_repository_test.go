package repository_test

import (
	"context"
	"errors"
	"testing"

	"movie_tracker/db"
	"movie_tracker/db/dbtest"
	"movie_tracker/internal/repository"
	"movie_tracker/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMovieRepository(t *testing.T) (*repository.MovieRepository, *db.Database) {
	t.Helper()
	d := dbtest.NewDatabase(t)
	return repository.NewMovieRepository(d.GetDB()), d
}

func seedUser(t *testing.T, d *db.Database, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Email: username + "@example.com", PasswordHash: "hash", Role: "user"}
	require.NoError(t, d.GetDB().Create(user).Error)
	return user
}

func TestInsertMovieIfAbsentFirstWriteWins(t *testing.T) {
	repo, _ := newMovieRepository(t)

	inserted, err := repo.InsertMovieIfAbsent(&model.Movie{TmdbId: 550, Title: "Fight Club"})
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.InsertMovieIfAbsent(&model.Movie{TmdbId: 550, Title: "Renamed"})
	require.NoError(t, err)
	assert.False(t, inserted)

	movie, err := repo.GetMovieByTmdbId(550)
	require.NoError(t, err)
	require.NotNil(t, movie)
	assert.Equal(t, "Fight Club", movie.Title)

	missing, err := repo.GetMovieByTmdbId(551)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEnsureGenresKeepsExistingNames(t *testing.T) {
	repo, _ := newMovieRepository(t)

	first, err := repo.EnsureGenres([]model.GenrePayload{{Id: 18, Name: "Drama"}})
	require.NoError(t, err)
	require.Contains(t, first, int64(18))

	second, err := repo.EnsureGenres([]model.GenrePayload{{Id: 18, Name: "Dramatic"}, {Id: 53, Name: "Thriller"}})
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, first[18].Id, second[18].Id)
	assert.Equal(t, "Drama", second[18].Name)
	assert.Equal(t, "Thriller", second[53].Name)
}

func TestEnsureGenresInsertsByTmdbId(t *testing.T) {
	repo, _ := newMovieRepository(t)

	genres, err := repo.EnsureGenres([]model.GenrePayload{
		{Id: 53, Name: "Thriller"},
		{Id: 28, Name: "Action"},
		{Id: 18, Name: "Drama"},
	})
	require.NoError(t, err)
	require.Len(t, genres, 3)

	// rows are written in tmdb id order whatever the payload order is
	assert.Less(t, genres[18].Id, genres[28].Id)
	assert.Less(t, genres[28].Id, genres[53].Id)
	assert.Equal(t, "Thriller", genres[53].Name)
}

func TestReplaceMovieGenresKeepsOrder(t *testing.T) {
	repo, _ := newMovieRepository(t)

	_, err := repo.InsertMovieIfAbsent(&model.Movie{TmdbId: 550, Title: "Fight Club"})
	require.NoError(t, err)
	movie, err := repo.GetMovieByTmdbId(550)
	require.NoError(t, err)

	genres, err := repo.EnsureGenres([]model.GenrePayload{{Id: 53, Name: "Thriller"}, {Id: 18, Name: "Drama"}})
	require.NoError(t, err)

	require.NoError(t, repo.ReplaceMovieGenres(movie.Id, []int64{genres[53].Id, genres[18].Id}))
	count, err := repo.CountMovieGenres(movie.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	byMovie, err := repo.GetMovieGenres([]int64{movie.Id})
	require.NoError(t, err)
	require.Len(t, byMovie[movie.Id], 2)
	assert.Equal(t, "Thriller", byMovie[movie.Id][0].Name)
	assert.Equal(t, "Drama", byMovie[movie.Id][1].Name)

	require.NoError(t, repo.ReplaceMovieGenres(movie.Id, []int64{genres[18].Id}))
	byMovie, err = repo.GetMovieGenres([]int64{movie.Id})
	require.NoError(t, err)
	require.Len(t, byMovie[movie.Id], 1)
	assert.Equal(t, int64(18), byMovie[movie.Id][0].TmdbId)
}

func TestUserMovieLifecycle(t *testing.T) {
	repo, d := newMovieRepository(t)
	user := seedUser(t, d, "marla")

	_, err := repo.InsertMovieIfAbsent(&model.Movie{TmdbId: 550, Title: "Fight Club"})
	require.NoError(t, err)
	movie, err := repo.GetMovieByTmdbId(550)
	require.NoError(t, err)

	row, err := repo.GetUserMovieForUpdate(user.Id, movie.Id)
	require.NoError(t, err)
	assert.Nil(t, row)

	userMovie := model.NewUserMovie(user.Id, movie.Id)
	userMovie.Apply(model.ActionLike)
	require.NoError(t, repo.CreateUserMovie(userMovie))
	assert.True(t, userMovie.Persisted)

	row, err = repo.GetUserMovieForUpdate(user.Id, movie.Id)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.True(t, row.Persisted)
	assert.True(t, row.IsLiked)

	row.Apply(model.ActionDislike)
	require.NoError(t, repo.UpdateUserMovie(row))

	status, err := repo.GetUserMovieStatus(user.Id, 550)
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.False(t, status.IsLiked)
	assert.True(t, status.IsDisliked)
	assert.Equal(t, movie.Id, status.MovieId)

	duplicate := model.NewUserMovie(user.Id, movie.Id)
	err = repo.CreateUserMovie(duplicate)
	assert.True(t, db.IsUniqueViolation(err), "got %v", err)
}

func TestUserMovieListAndCounts(t *testing.T) {
	repo, d := newMovieRepository(t)
	user := seedUser(t, d, "tyler")
	other := seedUser(t, d, "bob")

	genres, err := repo.EnsureGenres([]model.GenrePayload{{Id: 18, Name: "Drama"}})
	require.NoError(t, err)

	var movieIds []int64
	for _, tmdbId := range []int64{550, 807, 1422} {
		_, err := repo.InsertMovieIfAbsent(&model.Movie{TmdbId: tmdbId, Title: "movie"})
		require.NoError(t, err)
		movie, err := repo.GetMovieByTmdbId(tmdbId)
		require.NoError(t, err)
		movieIds = append(movieIds, movie.Id)
	}
	require.NoError(t, repo.ReplaceMovieGenres(movieIds[0], []int64{genres[18].Id}))

	rating := 9
	rows := []*model.UserMovie{
		{UserId: user.Id, MovieId: movieIds[0], IsLiked: true, IsWatched: true, UserRating: &rating},
		{UserId: user.Id, MovieId: movieIds[1], InWatchlist: true},
		{UserId: user.Id, MovieId: movieIds[2], IsDisliked: true, IsWatched: true},
		{UserId: other.Id, MovieId: movieIds[1], IsLiked: true},
	}
	for _, row := range rows {
		require.NoError(t, repo.CreateUserMovie(row))
	}

	watched, err := repo.GetUserMovieList(user.Id, model.ListWatched)
	require.NoError(t, err)
	require.Len(t, watched, 2)
	assert.Equal(t, int64(1422), watched[0].TmdbId)
	assert.Equal(t, int64(550), watched[1].TmdbId)
	assert.Equal(t, []model.Genre{}, watched[0].Genres)
	require.Len(t, watched[1].Genres, 1)
	assert.Equal(t, "Drama", watched[1].Genres[0].Name)
	require.NotNil(t, watched[1].UserRating)
	assert.Equal(t, 9, *watched[1].UserRating)

	liked, err := repo.GetUserMovieList(user.Id, model.ListLiked)
	require.NoError(t, err)
	require.Len(t, liked, 1)
	assert.Equal(t, int64(550), liked[0].TmdbId)

	empty, err := repo.GetUserMovieList(other.Id, model.ListWatchlist)
	require.NoError(t, err)
	assert.Empty(t, empty)

	counts, err := repo.GetUserMovieCounts(user.Id)
	require.NoError(t, err)
	assert.Equal(t, model.MovieCountsRes{Liked: 1, Disliked: 1, Watched: 2, Watchlist: 1, Rated: 1}, *counts)

	none, err := repo.GetUserMovieCounts(12345)
	require.NoError(t, err)
	assert.Equal(t, model.MovieCountsRes{}, *none)
}

func TestTransactionRollsBack(t *testing.T) {
	repo, _ := newMovieRepository(t)
	boom := errors.New("boom")

	err := repo.Transaction(context.Background(), func(tx repository.IMovieRepository) error {
		if _, err := tx.InsertMovieIfAbsent(&model.Movie{TmdbId: 550, Title: "Fight Club"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	movie, err := repo.GetMovieByTmdbId(550)
	require.NoError(t, err)
	assert.Nil(t, movie)
}
