package repository

import (
	"context"
	"errors"
	"sort"

	"movie_tracker/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IMovieRepository interface {
	WithContext(ctx context.Context) IMovieRepository
	Transaction(ctx context.Context, fn func(repo IMovieRepository) error) error
	GetMovieByTmdbId(tmdbId int64) (*model.Movie, error)
	InsertMovieIfAbsent(movie *model.Movie) (bool, error)
	CountMovieGenres(movieId int64) (int64, error)
	GetMovieGenres(movieIds []int64) (map[int64][]model.Genre, error)
	EnsureGenres(genres []model.GenrePayload) (map[int64]model.Genre, error)
	ReplaceMovieGenres(movieId int64, genreIds []int64) error
	GetUserMovieForUpdate(userId int64, movieId int64) (*model.UserMovie, error)
	CreateUserMovie(userMovie *model.UserMovie) error
	UpdateUserMovie(userMovie *model.UserMovie) error
	GetUserMovieList(userId int64, list model.ListKind) ([]model.UserMovieView, error)
	GetUserMovieStatus(userId int64, tmdbId int64) (*model.MovieStatusRes, error)
	GetUserMovieCounts(userId int64) (*model.MovieCountsRes, error)
}

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *MovieRepository) WithContext(ctx context.Context) IMovieRepository {
	return &MovieRepository{db: r.db.WithContext(ctx)}
}

// Transaction runs fn with a repository bound to one database transaction.
func (r *MovieRepository) Transaction(ctx context.Context, fn func(repo IMovieRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&MovieRepository{db: tx})
	})
}

//------------------------------------------
//------------------------------------------

func (r *MovieRepository) GetMovieByTmdbId(tmdbId int64) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.
		Model(&model.Movie{}).
		Where(map[string]interface{}{"tmdbId": tmdbId}).
		Take(&movie).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

// InsertMovieIfAbsent reports false when another writer already stored the tmdbId.
func (r *MovieRepository) InsertMovieIfAbsent(movie *model.Movie) (bool, error) {
	result := r.db.
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tmdbId"}},
			DoNothing: true,
		}).
		Create(movie)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

//------------------------------------------
//------------------------------------------

func (r *MovieRepository) CountMovieGenres(movieId int64) (int64, error) {
	var count int64
	err := r.db.
		Model(&model.MovieGenre{}).
		Where(map[string]interface{}{"movieId": movieId}).
		Count(&count).
		Error
	return count, err
}

func (r *MovieRepository) GetMovieGenres(movieIds []int64) (map[int64][]model.Genre, error) {
	result := make(map[int64][]model.Genre, len(movieIds))
	if len(movieIds) == 0 {
		return result, nil
	}

	type resType struct {
		MovieId int64  `gorm:"column:movieId"`
		Id      int64  `gorm:"column:id"`
		TmdbId  int64  `gorm:"column:tmdbId"`
		Name    string `gorm:"column:name"`
	}
	var res []resType

	queryStr := `
		SELECT mg."movieId", g.id, g."tmdbId", g.name
		FROM "MovieGenre" mg
			JOIN "Genre" g ON mg."genreId" = g.id
		WHERE
			mg."movieId" IN @ids
		ORDER BY mg."movieId", mg.position;`

	err := r.db.Raw(queryStr,
		map[string]interface{}{
			"ids": movieIds,
		}).
		Scan(&res).Error
	if err != nil {
		return nil, err
	}

	for _, item := range res {
		result[item.MovieId] = append(result[item.MovieId], model.Genre{
			Id:     item.Id,
			TmdbId: item.TmdbId,
			Name:   item.Name,
		})
	}
	return result, nil
}

// EnsureGenres creates unseen genres and returns every requested genre keyed
// by tmdb id. Names of existing genres are left untouched.
func (r *MovieRepository) EnsureGenres(genres []model.GenrePayload) (map[int64]model.Genre, error) {
	result := make(map[int64]model.Genre, len(genres))
	if len(genres) == 0 {
		return result, nil
	}

	rows := make([]model.Genre, len(genres))
	tmdbIds := make([]int64, len(genres))
	for i, g := range genres {
		rows[i] = model.Genre{TmdbId: g.Id, Name: g.Name}
		tmdbIds[i] = g.Id
	}
	// concurrent writers take the unique index locks in the same order
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].TmdbId < rows[j].TmdbId
	})

	err := r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tmdbId"}},
			DoNothing: true,
		}).
		Create(&rows).
		Error
	if err != nil {
		return nil, err
	}

	var stored []model.Genre
	err = r.db.
		Model(&model.Genre{}).
		Where("\"tmdbId\" IN ?", tmdbIds).
		Find(&stored).
		Error
	if err != nil {
		return nil, err
	}
	for _, g := range stored {
		result[g.TmdbId] = g
	}
	return result, nil
}

// ReplaceMovieGenres makes genreIds, in order, the only genres of the movie.
func (r *MovieRepository) ReplaceMovieGenres(movieId int64, genreIds []int64) error {
	err := r.db.
		Where(map[string]interface{}{"movieId": movieId}).
		Delete(&model.MovieGenre{}).
		Error
	if err != nil || len(genreIds) == 0 {
		return err
	}

	rows := make([]model.MovieGenre, len(genreIds))
	for i, id := range genreIds {
		rows[i] = model.MovieGenre{MovieId: movieId, GenreId: id, Position: i}
	}
	return r.db.
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).
		Error
}

//------------------------------------------
//------------------------------------------

func (r *MovieRepository) GetUserMovieForUpdate(userId int64, movieId int64) (*model.UserMovie, error) {
	var userMovie model.UserMovie
	err := r.db.
		Model(&model.UserMovie{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(map[string]interface{}{"userId": userId, "movieId": movieId}).
		Take(&userMovie).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	userMovie.Persisted = true
	return &userMovie, nil
}

func (r *MovieRepository) CreateUserMovie(userMovie *model.UserMovie) error {
	err := r.db.
		Omit(clause.Associations).
		Create(userMovie).
		Error
	if err == nil {
		userMovie.Persisted = true
	}
	return err
}

func (r *MovieRepository) UpdateUserMovie(userMovie *model.UserMovie) error {
	return r.db.
		Model(&model.UserMovie{}).
		Where(map[string]interface{}{"userId": userMovie.UserId, "movieId": userMovie.MovieId}).
		Updates(map[string]interface{}{
			"isWatched":   userMovie.IsWatched,
			"inWatchlist": userMovie.InWatchlist,
			"isLiked":     userMovie.IsLiked,
			"isDisliked":  userMovie.IsDisliked,
			"userRating":  userMovie.UserRating,
		}).
		Error
}

//------------------------------------------
//------------------------------------------

func (r *MovieRepository) GetUserMovieList(userId int64, list model.ListKind) ([]model.UserMovieView, error) {
	type resType struct {
		model.Movie
		IsWatched   bool `gorm:"column:isWatched"`
		IsLiked     bool `gorm:"column:isLiked"`
		IsDisliked  bool `gorm:"column:isDisliked"`
		InWatchlist bool `gorm:"column:inWatchlist"`
		UserRating  *int `gorm:"column:userRating"`
	}
	var res []resType

	err := r.db.
		Table("\"UserMovie\" um").
		Select("m.*, um.\"isWatched\", um.\"isLiked\", um.\"isDisliked\", um.\"inWatchlist\", um.\"userRating\"").
		Joins("JOIN \"Movie\" m ON m.id = um.\"movieId\"").
		Where("um.\"userId\" = ? AND um.\""+list.Column()+"\" = ?", userId, true).
		Order("um.\"updatedAt\" DESC").
		Order("m.id DESC").
		Scan(&res).
		Error
	if err != nil {
		return nil, err
	}

	movieIds := make([]int64, len(res))
	for i := range res {
		movieIds[i] = res[i].Id
	}
	genres, err := r.GetMovieGenres(movieIds)
	if err != nil {
		return nil, err
	}

	views := make([]model.UserMovieView, len(res))
	for i, item := range res {
		item.Movie.Genres = genres[item.Id]
		if item.Movie.Genres == nil {
			item.Movie.Genres = []model.Genre{}
		}
		views[i] = model.UserMovieView{
			Movie:       item.Movie,
			IsWatched:   item.IsWatched,
			IsLiked:     item.IsLiked,
			IsDisliked:  item.IsDisliked,
			InWatchlist: item.InWatchlist,
			UserRating:  item.UserRating,
		}
	}
	return views, nil
}

func (r *MovieRepository) GetUserMovieStatus(userId int64, tmdbId int64) (*model.MovieStatusRes, error) {
	var res []model.MovieStatusRes

	queryStr := `
		SELECT m."tmdbId", m.id AS "movieId", m.title,
			um."isWatched", um."isLiked", um."isDisliked", um."inWatchlist", um."userRating"
		FROM "Movie" m
			JOIN "UserMovie" um ON um."movieId" = m.id
		WHERE
			m."tmdbId" = @tmdbId AND um."userId" = @uid
		LIMIT 1;`

	err := r.db.Raw(queryStr,
		map[string]interface{}{
			"tmdbId": tmdbId,
			"uid":    userId,
		}).
		Scan(&res).Error
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return nil, nil
	}
	return &res[0], nil
}

func (r *MovieRepository) GetUserMovieCounts(userId int64) (*model.MovieCountsRes, error) {
	var res model.MovieCountsRes

	queryStr := `
		SELECT
			COALESCE(SUM(CASE WHEN "isLiked" THEN 1 ELSE 0 END), 0) AS liked,
			COALESCE(SUM(CASE WHEN "isDisliked" THEN 1 ELSE 0 END), 0) AS disliked,
			COALESCE(SUM(CASE WHEN "isWatched" THEN 1 ELSE 0 END), 0) AS watched,
			COALESCE(SUM(CASE WHEN "inWatchlist" THEN 1 ELSE 0 END), 0) AS watchlist,
			COUNT("userRating") AS rated
		FROM "UserMovie"
		WHERE
			"userId" = @uid;`

	err := r.db.Raw(queryStr,
		map[string]interface{}{
			"uid": userId,
		}).
		Scan(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}
