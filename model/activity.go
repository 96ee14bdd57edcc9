package model

import "time"

const ActivityRating = "rating"

type ActivityEvent struct {
	UserId     int64     `json:"userId"`
	MovieId    int64     `json:"movieId"`
	TmdbId     int64     `json:"tmdbId"`
	Action     string    `json:"action"`
	Value      bool      `json:"value"`
	Rating     *int      `json:"rating,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// RoutingKey is the topic the event is published under, e.g. movie.like.
func (e ActivityEvent) RoutingKey() string {
	return "movie." + e.Action
}
