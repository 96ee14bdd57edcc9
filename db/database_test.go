package db_test

import (
	"errors"
	"fmt"
	"testing"

	"movie_tracker/db"
	"movie_tracker/db/dbtest"
	"movie_tracker/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestClassifyPostgresErrors(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	check := fmt.Errorf("update: %w", &pgconn.PgError{Code: "23514"})
	closing := &pgconn.PgError{Code: "57P03"}
	foreign := &pgconn.PgError{Code: "23503"}

	assert.True(t, db.IsUniqueViolation(unique))
	assert.False(t, db.IsCheckViolation(unique))
	assert.True(t, db.IsCheckViolation(check))
	assert.False(t, db.IsUniqueViolation(check))
	assert.True(t, db.IsConnectionNotAcceptingError(closing))
	assert.True(t, db.IsForeignKeyViolation(foreign))
	assert.False(t, db.IsForeignKeyViolation(unique))
	assert.True(t, db.IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.False(t, db.IsUniqueViolation(nil))
	assert.False(t, db.IsCheckViolation(errors.New("connection refused")))
}

func TestMigrateEnforcesConstraints(t *testing.T) {
	d := dbtest.NewDatabase(t)
	gdb := d.GetDB()

	user := model.User{Username: "tyler", Email: "tyler@paper.st", PasswordHash: "x", Role: "user"}
	require.NoError(t, gdb.Create(&user).Error)
	movie := model.Movie{TmdbId: 550, Title: "Fight Club"}
	require.NoError(t, gdb.Create(&movie).Error)

	t.Run("unique tmdb id", func(t *testing.T) {
		err := gdb.Create(&model.Movie{TmdbId: 550, Title: "Other"}).Error
		assert.True(t, db.IsUniqueViolation(err), "got %v", err)
	})

	t.Run("unique user movie pair", func(t *testing.T) {
		require.NoError(t, gdb.Create(&model.UserMovie{UserId: user.Id, MovieId: movie.Id, IsLiked: true}).Error)
		err := gdb.Create(&model.UserMovie{UserId: user.Id, MovieId: movie.Id, IsWatched: true}).Error
		assert.True(t, db.IsUniqueViolation(err), "got %v", err)
	})

	t.Run("liked and disliked rejected", func(t *testing.T) {
		other := model.Movie{TmdbId: 551, Title: "Se7en"}
		require.NoError(t, gdb.Create(&other).Error)
		err := gdb.Create(&model.UserMovie{UserId: user.Id, MovieId: other.Id, IsLiked: true, IsDisliked: true}).Error
		assert.True(t, db.IsCheckViolation(err), "got %v", err)
	})

	t.Run("rating out of range rejected", func(t *testing.T) {
		other := model.Movie{TmdbId: 552, Title: "Zodiac"}
		require.NoError(t, gdb.Create(&other).Error)
		rating := 11
		err := gdb.Create(&model.UserMovie{UserId: user.Id, MovieId: other.Id, UserRating: &rating}).Error
		assert.True(t, db.IsCheckViolation(err), "got %v", err)
	})

	t.Run("unknown user rejected", func(t *testing.T) {
		err := gdb.Create(&model.UserMovie{UserId: user.Id + 100, MovieId: movie.Id}).Error
		assert.True(t, db.IsForeignKeyViolation(err), "got %v", err)
	})

	t.Run("deleting a user cascades", func(t *testing.T) {
		require.NoError(t, gdb.Delete(&model.User{}, user.Id).Error)
		var count int64
		require.NoError(t, gdb.Model(&model.UserMovie{}).Where(map[string]interface{}{"userId": user.Id}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})
}
