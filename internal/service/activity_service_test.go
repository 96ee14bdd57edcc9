package service

import (
	"encoding/json"
	"testing"
	"time"

	"movie_tracker/configs"
	"movie_tracker/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestActivityService(publisher IActivityPublisher) *ActivityService {
	a := NewActivityService(publisher)
	a.workers = 2
	a.emptyQueueSleep = 5 * time.Millisecond
	return a
}

func TestActivityServicePublishes(t *testing.T) {
	publisher := &fakePublisher{}
	a := newTestActivityService(publisher)
	a.Start()

	require.NoError(t, a.AddActivityEvent(model.ActivityEvent{UserId: 1, MovieId: 2, TmdbId: 550, Action: "like", Value: true}))
	require.NoError(t, a.AddActivityEvent(model.ActivityEvent{UserId: 1, MovieId: 2, TmdbId: 550, Action: "watched", Value: true}))

	assert.Eventually(t, func() bool { return publisher.total() == 2 }, time.Second, 5*time.Millisecond)
	a.Stop()

	publisher.mux.Lock()
	defer publisher.mux.Unlock()
	require.Len(t, publisher.published["movie.like"], 1)
	var event model.ActivityEvent
	require.NoError(t, json.Unmarshal(publisher.published["movie.like"][0], &event))
	assert.Equal(t, int64(550), event.TmdbId)
	assert.True(t, event.Value)
}

func TestActivityServiceStopDrainsQueue(t *testing.T) {
	publisher := &fakePublisher{}
	a := newTestActivityService(publisher)

	for i := 0; i < 20; i++ {
		require.NoError(t, a.AddActivityEvent(model.ActivityEvent{UserId: int64(i), Action: "watchlist"}))
	}
	a.Start()
	a.Stop()

	assert.Equal(t, 20, publisher.total())
	assert.Equal(t, 0, a.queueLen())
	assert.Error(t, a.AddActivityEvent(model.ActivityEvent{Action: "like"}))
}

func TestActivityServiceOverflow(t *testing.T) {
	a := newTestActivityService(&fakePublisher{})
	a.capacity = 1

	require.NoError(t, a.AddActivityEvent(model.ActivityEvent{Action: "like"}))
	assert.ErrorIs(t, a.AddActivityEvent(model.ActivityEvent{Action: "like"}), ErrOverflow)
	assert.Equal(t, 1, a.queueLen())
}

func TestActivityServiceDisabled(t *testing.T) {
	noBroker := newTestActivityService(nil)
	noBroker.Start()
	assert.ErrorIs(t, noBroker.AddActivityEvent(model.ActivityEvent{Action: "like"}), ErrActivityDisabled)
	noBroker.Stop()

	withDbConfigs(t, configs.DbConfigData{DisableActivityEvents: true})
	a := newTestActivityService(&fakePublisher{})
	assert.ErrorIs(t, a.AddActivityEvent(model.ActivityEvent{Action: "like"}), ErrActivityDisabled)
	assert.Equal(t, 0, a.queueLen())
}
