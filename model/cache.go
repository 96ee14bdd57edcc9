package model

type CachedMovieCounts struct {
	UserId  int64          `json:"userId"`
	Version int64          `json:"version"`
	Counts  MovieCountsRes `json:"counts"`
}
