package model

import (
	"encoding/json"
	"time"
)

type UserMovie struct {
	UserId      int64     `gorm:"column:userId;primaryKey;autoIncrement:false;"`
	MovieId     int64     `gorm:"column:movieId;primaryKey;autoIncrement:false;"`
	IsWatched   bool      `gorm:"column:isWatched;type:boolean;not null;default:false;"`
	InWatchlist bool      `gorm:"column:inWatchlist;type:boolean;not null;default:false;"`
	IsLiked     bool      `gorm:"column:isLiked;type:boolean;not null;default:false;"`
	IsDisliked  bool      `gorm:"column:isDisliked;type:boolean;not null;default:false;check:\"isLiked\" = false OR \"isDisliked\" = false;"`
	UserRating  *int      `gorm:"column:userRating;type:integer;check:\"userRating\" IS NULL OR (\"userRating\" >= 1 AND \"userRating\" <= 10);"`
	CreatedAt   time.Time `gorm:"column:createdAt;not null;default:CURRENT_TIMESTAMP;"`
	UpdatedAt   time.Time `gorm:"column:updatedAt;not null;"`

	// Persisted is false until the row has been inserted.
	Persisted bool `gorm:"-"`

	User  *User  `gorm:"foreignKey:UserId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Movie *Movie `gorm:"foreignKey:MovieId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (UserMovie) TableName() string {
	return "UserMovie"
}

func NewUserMovie(userId int64, movieId int64) *UserMovie {
	return &UserMovie{UserId: userId, MovieId: movieId}
}

func (u *UserMovie) Interaction() Interaction {
	i := Interaction{Watched: u.IsWatched, InWatchlist: u.InWatchlist}
	switch {
	case u.IsLiked:
		i.Opinion = OpinionLiked
	case u.IsDisliked:
		i.Opinion = OpinionDisliked
	}
	return i
}

func (u *UserMovie) SetInteraction(i Interaction) {
	u.IsWatched = i.Watched
	u.InWatchlist = i.InWatchlist
	u.IsLiked = i.Liked()
	u.IsDisliked = i.Disliked()
}

// Apply toggles the action on the row and returns the new flag value.
func (u *UserMovie) Apply(action Action) bool {
	next, value := u.Interaction().Toggle(action)
	u.SetInteraction(next)
	return value
}

//------------------------------------------
//------------------------------------------

type ToggleResult struct {
	MovieId int64
	TmdbId  int64
	Action  Action
	Value   bool
}

// MarshalJSON emits {"movieId":..,"tmdbId":..,"<flag>":..}.
func (r ToggleResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"movieId":           r.MovieId,
		"tmdbId":            r.TmdbId,
		r.Action.FlagName(): r.Value,
	})
}

type MovieStatusRes struct {
	TmdbId      int64  `gorm:"column:tmdbId" json:"tmdbId"`
	MovieId     int64  `gorm:"column:movieId" json:"movieId"`
	Title       string `gorm:"column:title" json:"title"`
	IsWatched   bool   `gorm:"column:isWatched" json:"isWatched"`
	IsLiked     bool   `gorm:"column:isLiked" json:"isLiked"`
	IsDisliked  bool   `gorm:"column:isDisliked" json:"isDisliked"`
	InWatchlist bool   `gorm:"column:inWatchlist" json:"inWatchlist"`
	UserRating  *int   `gorm:"column:userRating" json:"userRating"`
}

type UserMovieView struct {
	Movie
	IsWatched   bool `json:"isWatched"`
	IsLiked     bool `json:"isLiked"`
	IsDisliked  bool `json:"isDisliked"`
	InWatchlist bool `json:"inWatchlist"`
	UserRating  *int `json:"userRating"`
}

type MoviesListRes struct {
	Count  int             `json:"count"`
	Movies []UserMovieView `json:"movies"`
}

type MovieCountsRes struct {
	Liked     int64 `gorm:"column:liked" json:"liked"`
	Disliked  int64 `gorm:"column:disliked" json:"disliked"`
	Watched   int64 `gorm:"column:watched" json:"watched"`
	Watchlist int64 `gorm:"column:watchlist" json:"watchlist"`
	Rated     int64 `gorm:"column:rated" json:"rated"`
}

type RatingReq struct {
	Rating *int `json:"rating"`
}

type RatingRes struct {
	MovieId    int64 `json:"movieId"`
	TmdbId     int64 `json:"tmdbId"`
	UserRating *int  `json:"userRating"`
}
