package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestMoviePayloadValidate(t *testing.T) {
	p := MoviePayload{TmdbId: 550, Title: "Fight Club"}
	assert.Nil(t, p.Validate())

	p = MoviePayload{TmdbId: 0, Title: "  "}
	errs := p.Validate()
	assert.Contains(t, errs, "id")
	assert.Contains(t, errs, "title")

	p = MoviePayload{TmdbId: -3, Title: "x"}
	assert.Contains(t, p.Validate(), "id")

	p = MoviePayload{TmdbId: 1, Title: "x", Genres: []GenrePayload{{Id: 0, Name: "bad"}}}
	assert.Contains(t, p.Validate(), "genres")
}

func TestMoviePayloadFromTmdbJson(t *testing.T) {
	body := `{
		"id": 550,
		"title": "Fight Club",
		"original_title": "Fight Club",
		"overview": "",
		"poster_path": "/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg",
		"backdrop_path": null,
		"release_date": "1999-10-15",
		"vote_average": 8.4,
		"vote_count": 26280,
		"popularity": 61.4,
		"adult": false,
		"runtime": 139,
		"genres": [{"id": 18, "name": "Drama"}],
		"tagline": "Mischief. Mayhem. Soap."
	}`
	var p MoviePayload
	require.NoError(t, json.Unmarshal([]byte(body), &p))

	m := p.ToMovie()
	assert.Equal(t, int64(550), m.TmdbId)
	assert.Equal(t, "Fight Club", m.Title)
	assert.Nil(t, m.Overview, "empty optional string stored as null")
	assert.Nil(t, m.BackdropPath)
	require.NotNil(t, m.PosterPath)
	assert.Equal(t, "/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg", *m.PosterPath)
	require.NotNil(t, m.Runtime)
	assert.Equal(t, 139, *m.Runtime)
	assert.InDelta(t, 8.4, m.VoteAverage, 1e-9)
	assert.Equal(t, int64(26280), m.VoteCount)
}

func TestToMovieCopiesOptionalValues(t *testing.T) {
	p := MoviePayload{TmdbId: 1, Title: " Heat ", OriginalTitle: strPtr("Heat")}
	m := p.ToMovie()
	*p.OriginalTitle = "changed"
	assert.Equal(t, "Heat", *m.OriginalTitle)
	assert.Equal(t, "Heat", m.Title)
}

func TestDistinctGenresKeepsFirstOccurrence(t *testing.T) {
	p := MoviePayload{Genres: []GenrePayload{
		{Id: 18, Name: "Drama"},
		{Id: 53, Name: "Thriller"},
		{Id: 18, Name: "Drama (dup)"},
		{Id: 35, Name: "Comedy"},
		{Id: 53, Name: "Other"},
	}}

	assert.Equal(t, []GenrePayload{
		{Id: 18, Name: "Drama"},
		{Id: 53, Name: "Thriller"},
		{Id: 35, Name: "Comedy"},
	}, p.DistinctGenres())

	assert.Empty(t, (&MoviePayload{}).DistinctGenres())
}

func TestUserMovieApply(t *testing.T) {
	um := NewUserMovie(1, 2)
	um.IsDisliked = true

	assert.True(t, um.Apply(ActionLike))
	assert.True(t, um.IsLiked)
	assert.False(t, um.IsDisliked)

	assert.False(t, um.Apply(ActionLike))
	assert.False(t, um.IsLiked)
	assert.False(t, um.IsDisliked)

	assert.True(t, um.Apply(ActionWatched))
	assert.True(t, um.IsWatched)
	assert.False(t, um.InWatchlist)
}

func TestToggleResultJson(t *testing.T) {
	data, err := json.Marshal(ToggleResult{MovieId: 7, TmdbId: 550, Action: ActionLike, Value: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"movieId":7,"tmdbId":550,"isLiked":true}`, string(data))

	data, err = json.Marshal(ToggleResult{MovieId: 7, TmdbId: 550, Action: ActionWatchlist})
	require.NoError(t, err)
	assert.JSONEq(t, `{"movieId":7,"tmdbId":550,"inWatchlist":false}`, string(data))
}
