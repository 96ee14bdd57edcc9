package model

import (
	"strings"
	"time"
)

// sync with the TMDB movie object the mobile client posts.

type Movie struct {
	Id            int64     `gorm:"column:id;autoIncrement;primaryKey;" json:"id"`
	TmdbId        int64     `gorm:"column:tmdbId;type:integer;not null;uniqueIndex:Movie_tmdbId_key;" json:"tmdbId"`
	Title         string    `gorm:"column:title;type:text;not null;" json:"title"`
	OriginalTitle *string   `gorm:"column:originalTitle;type:text;" json:"original_title"`
	Overview      *string   `gorm:"column:overview;type:text;" json:"overview"`
	PosterPath    *string   `gorm:"column:posterPath;type:text;" json:"poster_path"`
	BackdropPath  *string   `gorm:"column:backdropPath;type:text;" json:"backdrop_path"`
	ReleaseDate   *string   `gorm:"column:releaseDate;type:text;" json:"release_date"`
	VoteAverage   float64   `gorm:"column:voteAverage;type:double precision;not null;default:0;" json:"vote_average"`
	VoteCount     int64     `gorm:"column:voteCount;type:integer;not null;default:0;" json:"vote_count"`
	Popularity    float64   `gorm:"column:popularity;type:double precision;not null;default:0;" json:"popularity"`
	Adult         bool      `gorm:"column:adult;type:boolean;not null;default:false;" json:"adult"`
	Runtime       *int      `gorm:"column:runtime;type:integer;" json:"runtime"`
	CreatedAt     time.Time `gorm:"column:createdAt;not null;default:CURRENT_TIMESTAMP;" json:"-"`
	UpdatedAt     time.Time `gorm:"column:updatedAt;not null;" json:"-"`

	Genres []Genre `gorm:"-" json:"genres"`
}

func (Movie) TableName() string {
	return "Movie"
}

//------------------------------------------
//------------------------------------------

type Genre struct {
	Id     int64  `gorm:"column:id;autoIncrement;primaryKey;" json:"-"`
	TmdbId int64  `gorm:"column:tmdbId;type:integer;not null;uniqueIndex:Genre_tmdbId_key;" json:"id"`
	Name   string `gorm:"column:name;type:text;not null;" json:"name"`
}

func (Genre) TableName() string {
	return "Genre"
}

type MovieGenre struct {
	MovieId  int64 `gorm:"column:movieId;primaryKey;"`
	GenreId  int64 `gorm:"column:genreId;primaryKey;"`
	Position int   `gorm:"column:position;type:integer;not null;default:0;"`

	Movie *Movie `gorm:"foreignKey:MovieId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Genre *Genre `gorm:"foreignKey:GenreId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (MovieGenre) TableName() string {
	return "MovieGenre"
}

//------------------------------------------
//------------------------------------------

type GenrePayload struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

// MoviePayload is the denormalized catalog entry embedded in toggle requests.
type MoviePayload struct {
	TmdbId        int64          `json:"id"`
	Title         string         `json:"title"`
	OriginalTitle *string        `json:"original_title"`
	Overview      *string        `json:"overview"`
	PosterPath    *string        `json:"poster_path"`
	BackdropPath  *string        `json:"backdrop_path"`
	ReleaseDate   *string        `json:"release_date"`
	VoteAverage   float64        `json:"vote_average"`
	VoteCount     int64          `json:"vote_count"`
	Popularity    float64        `json:"popularity"`
	Adult         bool           `json:"adult"`
	Runtime       *int           `json:"runtime"`
	Genres        []GenrePayload `json:"genres"`
}

// Validate returns field errors; nil means the payload can be persisted.
func (p *MoviePayload) Validate() map[string]string {
	errs := map[string]string{}
	if p.TmdbId <= 0 {
		errs["id"] = "must be a positive integer"
	}
	if strings.TrimSpace(p.Title) == "" {
		errs["title"] = "must be provided"
	}
	for _, g := range p.Genres {
		if g.Id <= 0 {
			errs["genres"] = "genre id must be a positive integer"
			break
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ToMovie builds the row stored on first sight. Empty optional strings are
// stored as NULL.
func (p *MoviePayload) ToMovie() *Movie {
	return &Movie{
		TmdbId:        p.TmdbId,
		Title:         strings.TrimSpace(p.Title),
		OriginalTitle: nullIfEmpty(p.OriginalTitle),
		Overview:      nullIfEmpty(p.Overview),
		PosterPath:    nullIfEmpty(p.PosterPath),
		BackdropPath:  nullIfEmpty(p.BackdropPath),
		ReleaseDate:   nullIfEmpty(p.ReleaseDate),
		VoteAverage:   p.VoteAverage,
		VoteCount:     p.VoteCount,
		Popularity:    p.Popularity,
		Adult:         p.Adult,
		Runtime:       p.Runtime,
	}
}

// DistinctGenres drops repeated genre ids, keeping the first occurrence and its position.
func (p *MoviePayload) DistinctGenres() []GenrePayload {
	seen := make(map[int64]bool, len(p.Genres))
	result := make([]GenrePayload, 0, len(p.Genres))
	for _, g := range p.Genres {
		if seen[g.Id] {
			continue
		}
		seen[g.Id] = true
		result = append(result, g)
	}
	return result
}

func nullIfEmpty(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	v := *value
	return &v
}
