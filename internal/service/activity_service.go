package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"movie_tracker/configs"
	"movie_tracker/model"
	errorHandler "movie_tracker/pkg/error"
	"movie_tracker/pkg/logger"
)

type IActivityPublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

type IActivityService interface {
	AddActivityEvent(event model.ActivityEvent) error
	Start()
	Stop()
}

type ActivityService struct {
	publisher       IActivityPublisher
	queue           []model.ActivityEvent
	queueMux        *sync.Mutex
	capacity        int
	workers         int
	emptyQueueSleep time.Duration
	publishTimeout  time.Duration
	doneChan        chan struct{}
	stopOnce        sync.Once
	wg              sync.WaitGroup
}

const (
	activityConsumerCount   = 4
	activityQueueCapacity   = 5000
	activityEmptyQueueSleep = 200 * time.Millisecond
	activityPublishTimeout  = 5 * time.Second
)

var (
	ErrOverflow          = errors.New("overflow")
	ErrActivityDisabled  = errors.New("activity events are disabled")
	errActivityQueueDone = errors.New("activity queue is stopped")
)

// NewActivityService returns a service that drops every event when publisher is nil.
func NewActivityService(publisher IActivityPublisher) *ActivityService {
	return &ActivityService{
		publisher:       publisher,
		queue:           make([]model.ActivityEvent, 0),
		queueMux:        &sync.Mutex{},
		capacity:        activityQueueCapacity,
		workers:         activityConsumerCount,
		emptyQueueSleep: activityEmptyQueueSleep,
		publishTimeout:  activityPublishTimeout,
		doneChan:        make(chan struct{}),
	}
}

//------------------------------------------
//------------------------------------------

func (a *ActivityService) AddActivityEvent(event model.ActivityEvent) error {
	if a.publisher == nil || configs.GetDbConfigs().DisableActivityEvents {
		return ErrActivityDisabled
	}

	select {
	case <-a.doneChan:
		return errActivityQueueDone
	default:
	}

	a.queueMux.Lock()
	defer a.queueMux.Unlock()

	if len(a.queue) >= a.capacity {
		errorMessage := fmt.Sprintf("Activity queue is full, dropping %v event of user %v", event.Action, event.UserId)
		errorHandler.SaveError(errorMessage, ErrOverflow)
		return ErrOverflow
	}
	a.queue = append(a.queue, event)
	return nil
}

func (a *ActivityService) dequeue() (model.ActivityEvent, bool) {
	a.queueMux.Lock()
	defer a.queueMux.Unlock()

	if len(a.queue) == 0 {
		return model.ActivityEvent{}, false
	}
	event := a.queue[0]
	a.queue = a.queue[1:]
	return event, true
}

//------------------------------------------
//------------------------------------------

func (a *ActivityService) Start() {
	if a.publisher == nil {
		logger.Named("activity").Warn("no broker configured, activity events disabled")
		return
	}
	for i := 0; i < a.workers; i++ {
		a.wg.Add(1)
		go a.worker(i)
	}
}

func (a *ActivityService) worker(wid int) {
	defer a.wg.Done()

	for {
		event, exist := a.dequeue()
		if !exist {
			select {
			case <-a.doneChan:
				return
			case <-time.After(a.emptyQueueSleep):
				continue
			}
		}
		a.publish(wid, event)
	}
}

func (a *ActivityService) publish(wid int, event model.ActivityEvent) {
	defer func() {
		if r := recover(); r != nil {
			errorMessage := fmt.Sprintf("Activity worker %d recovered from panic: %v", wid, r)
			errorHandler.SaveError(errorMessage, nil)
		}
	}()

	body, err := json.Marshal(event)
	if err != nil {
		errorMessage := fmt.Sprintf("Error marshaling activity event: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.publishTimeout)
	defer cancel()
	if err = a.publisher.Publish(ctx, event.RoutingKey(), body); err != nil {
		errorMessage := fmt.Sprintf("Error on publishing activity event %v: %v", event.RoutingKey(), err)
		errorHandler.SaveError(errorMessage, err)
	}
}

// Stop waits for the workers to drain the queue.
func (a *ActivityService) Stop() {
	a.stopOnce.Do(func() {
		close(a.doneChan)
	})
	a.wg.Wait()
}

func (a *ActivityService) queueLen() int {
	a.queueMux.Lock()
	defer a.queueMux.Unlock()
	return len(a.queue)
}
