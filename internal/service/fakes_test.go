package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"movie_tracker/configs"
	"movie_tracker/db"
	"movie_tracker/db/dbtest"
	"movie_tracker/internal/repository"
	"movie_tracker/model"

	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	mux         sync.Mutex
	counts      map[int64]model.CachedMovieCounts
	versions    map[int64]int64
	removed     []int64
	blacklisted map[string]time.Duration
	err         error
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		counts:      map[int64]model.CachedMovieCounts{},
		versions:    map[int64]int64{},
		blacklisted: map[string]time.Duration{},
	}
}

func (f *fakeCache) GetMovieCountsVersion(ctx context.Context, userId int64) (int64, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	return f.versions[userId], nil
}

func (f *fakeCache) GetMovieCountsCache(ctx context.Context, userId int64, version int64) (*model.MovieCountsRes, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	cached, ok := f.counts[userId]
	if !ok || cached.Version != version {
		return nil, nil
	}
	return &cached.Counts, nil
}

func (f *fakeCache) SetMovieCountsCache(ctx context.Context, userId int64, version int64, counts *model.MovieCountsRes) {
	f.mux.Lock()
	defer f.mux.Unlock()
	f.counts[userId] = model.CachedMovieCounts{UserId: userId, Version: version, Counts: *counts}
}

func (f *fakeCache) RemoveMovieCountsCache(ctx context.Context, userId int64) {
	f.mux.Lock()
	defer f.mux.Unlock()
	f.versions[userId]++
	delete(f.counts, userId)
	f.removed = append(f.removed, userId)
}

func (f *fakeCache) version(userId int64) int64 {
	f.mux.Lock()
	defer f.mux.Unlock()
	return f.versions[userId]
}

func (f *fakeCache) IsJwtBlacklisted(ctx context.Context, tokenId string) (bool, error) {
	f.mux.Lock()
	defer f.mux.Unlock()
	_, ok := f.blacklisted[tokenId]
	return ok, f.err
}

func (f *fakeCache) BlacklistJwt(ctx context.Context, tokenId string, duration time.Duration) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.err != nil {
		return f.err
	}
	f.blacklisted[tokenId] = duration
	return nil
}

//------------------------------------------
//------------------------------------------

type fakeActivity struct {
	mux    sync.Mutex
	events []model.ActivityEvent
}

func (f *fakeActivity) AddActivityEvent(event model.ActivityEvent) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeActivity) Start() {}
func (f *fakeActivity) Stop()  {}

func (f *fakeActivity) snapshot() []model.ActivityEvent {
	f.mux.Lock()
	defer f.mux.Unlock()
	return append([]model.ActivityEvent(nil), f.events...)
}

type fakePublisher struct {
	mux       sync.Mutex
	published map[string][][]byte
	err       error
}

func (f *fakePublisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.published == nil {
		f.published = map[string][][]byte{}
	}
	f.published[routingKey] = append(f.published[routingKey], body)
	return f.err
}

func (f *fakePublisher) total() int {
	f.mux.Lock()
	defer f.mux.Unlock()
	n := 0
	for _, bodies := range f.published {
		n += len(bodies)
	}
	return n
}

//------------------------------------------
//------------------------------------------

type movieFixture struct {
	db       *db.Database
	repo     *repository.MovieRepository
	cache    *fakeCache
	activity *fakeActivity
	svc      *MovieService
}

func newMovieFixture(t *testing.T) *movieFixture {
	t.Helper()
	d := dbtest.NewDatabase(t)
	repo := repository.NewMovieRepository(d.GetDB())
	cache := newFakeCache()
	activity := &fakeActivity{}
	return &movieFixture{
		db:       d,
		repo:     repo,
		cache:    cache,
		activity: activity,
		svc:      NewMovieService(repo, NewCatalogService(), cache, activity),
	}
}

func (f *movieFixture) seedUser(t *testing.T, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Email: username + "@example.com", PasswordHash: "hash", Role: "user"}
	require.NoError(t, f.db.GetDB().Create(user).Error)
	return user
}

func (f *movieFixture) userMovie(t *testing.T, userId int64, tmdbId int64) *model.UserMovie {
	t.Helper()
	movie, err := f.repo.GetMovieByTmdbId(tmdbId)
	require.NoError(t, err)
	require.NotNil(t, movie)
	row, err := f.repo.GetUserMovieForUpdate(userId, movie.Id)
	require.NoError(t, err)
	return row
}

func fightClub() *model.MoviePayload {
	overview := "An insomniac office worker and a soap maker form an underground fight club."
	poster := "/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg"
	return &model.MoviePayload{
		TmdbId:      550,
		Title:       "Fight Club",
		Overview:    &overview,
		PosterPath:  &poster,
		VoteAverage: 8.4,
		VoteCount:   27000,
		Popularity:  61.4,
		Genres:      []model.GenrePayload{{Id: 18, Name: "Drama"}, {Id: 53, Name: "Thriller"}},
	}
}

func loadSecret(t *testing.T) {
	t.Helper()
	t.Setenv("ACCESS_TOKEN_SECRET", "service-test-secret")
	configs.LoadEnvVariables()
}

func withDbConfigs(t *testing.T, data configs.DbConfigData) {
	t.Helper()
	saved := configs.GetDbConfigs()
	configs.SetDbConfigs(data)
	t.Cleanup(func() { configs.SetDbConfigs(saved) })
}
