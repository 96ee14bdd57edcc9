package db

import (
	"errors"
	"log"
	"strings"
	"time"

	"movie_tracker/model"
	"movie_tracker/pkg/logger"

	"github.com/hashicorp/go-hclog"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

type Database struct {
	db *gorm.DB
}

func NewDatabase(dsn string) (*Database, error) {
	return Open(postgres.Open(dsn))
}

// Open is shared by the postgres entrypoint and tests running on sqlite.
func Open(dialector gorm.Dialector) (*Database, error) {
	db, err := gorm.Open(
		dialector,
		&gorm.Config{
			SkipDefaultTransaction: true,
			PrepareStmt:            true,
			TranslateError:         true,
			Logger: newGormLogger(logger.Named("gorm").StandardLogger(&hclog.StandardLoggerOptions{
				InferLevels: true,
			})),
		},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SetMaxIdleConns sets the maximum number of connections in the idle connection pool.
	sqlDB.SetMaxIdleConns(10)
	// SetMaxOpenConns sets the maximum number of open connections to the database.
	sqlDB.SetMaxOpenConns(100)

	return &Database{db: db}, nil
}

// newGormLogger reports slow queries and errors. Lookups that find nothing are
// expected and not logged.
func newGormLogger(writer gormLogger.Writer) gormLogger.Interface {
	return gormLogger.New(writer, gormLogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormLogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func (d *Database) Close() {
	// try not to use it due to gorm connection pooling
	sqlDB, err := d.db.DB()
	if err != nil {
		log.Fatalln(err)
	}
	sqlDB.Close()
}

func (d *Database) GetDB() *gorm.DB {
	return d.db
}

// Migrate creates tables, unique indexes, check constraints and cascading
// foreign keys for every model.
func (d *Database) Migrate() error {
	return d.db.AutoMigrate(
		&model.User{},
		&model.Movie{},
		&model.Genre{},
		&model.MovieGenre{},
		&model.UserMovie{},
	)
}

//------------------------------------------
//------------------------------------------

func IsConnectionNotAcceptingError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "57P03"
	}
	return false
}

func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func IsCheckViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23514"
	}
	return strings.Contains(err.Error(), "CHECK constraint failed") ||
		strings.Contains(err.Error(), "violates check constraint")
}

func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed") ||
		strings.Contains(err.Error(), "violates foreign key constraint") ||
		strings.Contains(err.Error(), "violates foreign constraint")
}
