package services

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/lynkr/lynkr-backend/internal/logger"
	"github.com/lynkr/lynkr-backend/internal/models"
	"github.com/segmentio/kafka-go"
)

// Worker pool defaults
const (
	defaultWorkerCount = 3    // Workers draining the event queue
	defaultQueueSize   = 1024 // Buffered events before new ones are dropped
	eventWriteTimeout  = 5 * time.Second
	maxEventWriteTries = 3
	eventWriteBackoff  = 100 * time.Millisecond
)

// VisitWriter appends profile visit events.
type VisitWriter interface {
	SaveVisit(ctx context.Context, event models.VisitEvent) error
}

// ClickWriter appends link click events and bumps the link counter.
type ClickWriter interface {
	SaveClick(ctx context.Context, event models.ClickEvent) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// queuedEvent is one unit of work for the pool. Exactly one of the two
// fields is set.
type queuedEvent struct {
	visit *models.VisitEvent
	click *models.ClickEvent
}

// EventService records profile visits and link clicks without blocking
// the visitor-facing request. Events go through a bounded queue drained
// by a worker pool; when the queue is full the event is dropped and
// counted, never blocking the caller. Writes that fail after retries
// are also counted so tests and operators can observe losses.
type EventService struct {
	visits      VisitWriter
	clicks      ClickWriter
	kafkaWriter KafkaWriter

	queue    chan queuedEvent
	workers  int
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	failures atomic.Uint64
}

// NewEventService creates a new EventService. The Kafka writer may be
// nil, in which case publishing is skipped.
func NewEventService(visits VisitWriter, clicks ClickWriter, kafkaWriter KafkaWriter) *EventService {
	return &EventService{
		visits:      visits,
		clicks:      clicks,
		kafkaWriter: kafkaWriter,
		queue:       make(chan queuedEvent, defaultQueueSize),
		workers:     defaultWorkerCount,
	}
}

// Start launches the worker pool.
func (svc *EventService) Start() {
	svc.ctx, svc.cancel = context.WithCancel(context.Background())

	logger.Log.Infow("starting event workers", "count", svc.workers)

	for i := 0; i < svc.workers; i++ {
		svc.wg.Add(1)
		go svc.worker(i)
	}
}

// Stop drains in-flight work and stops the pool.
func (svc *EventService) Stop() {
	svc.cancel()
	svc.wg.Wait()
	logger.Log.Info("event workers stopped")
}

// Failures returns how many events were lost, either dropped on a full
// queue or abandoned after write retries.
func (svc *EventService) Failures() uint64 {
	return svc.failures.Load()
}

// LogProfileVisit enqueues a profile visit event. Never blocks: when
// the queue is full the event is dropped and the failure counter bumped.
func (svc *EventService) LogProfileVisit(ctx context.Context, userID uuid.UUID, fingerprint string) {
	event := queuedEvent{visit: &models.VisitEvent{
		UserID:      userID,
		Fingerprint: fingerprint,
		VisitedAt:   time.Now().UTC(),
	}}
	svc.enqueue(event)
}

// LogLinkClick enqueues a link click event. Never blocks.
func (svc *EventService) LogLinkClick(ctx context.Context, linkID uuid.UUID) {
	event := queuedEvent{click: &models.ClickEvent{
		LinkID:    linkID,
		ClickedAt: time.Now().UTC(),
	}}
	svc.enqueue(event)
}

func (svc *EventService) enqueue(event queuedEvent) {
	select {
	case svc.queue <- event:
	default:
		svc.failures.Add(1)
		logger.Log.Warnw("event queue full, event dropped")
	}
}

// worker drains the queue until the service is stopped.
func (svc *EventService) worker(id int) {
	defer svc.wg.Done()

	for {
		select {
		case <-svc.ctx.Done():
			// Drain whatever is already queued before exiting.
			for {
				select {
				case event := <-svc.queue:
					svc.process(event)
				default:
					return
				}
			}
		case event := <-svc.queue:
			svc.process(event)
		}
	}
}

// process writes one event with retries. The event is abandoned, logged
// and counted after the final failed attempt.
func (svc *EventService) process(event queuedEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), eventWriteTimeout)
	defer cancel()

	var err error
	for attempt := 1; attempt <= maxEventWriteTries; attempt++ {
		if event.visit != nil {
			err = svc.visits.SaveVisit(ctx, *event.visit)
		} else {
			err = svc.clicks.SaveClick(ctx, *event.click)
		}
		if err == nil {
			svc.publish(ctx, event)
			return
		}
		if attempt < maxEventWriteTries {
			time.Sleep(time.Duration(attempt) * eventWriteBackoff)
		}
	}

	svc.failures.Add(1)
	logger.Log.Errorw("failed to record event after retries", "err", err)
}

// kafkaEvent is the wire form published for downstream consumers.
type kafkaEvent struct {
	Type        string    `json:"type"`                  // "profile_visit" or "link_click"
	UserID      string    `json:"user_id,omitempty"`     // Visited user for visits
	LinkID      string    `json:"link_id,omitempty"`     // Clicked link for clicks
	Fingerprint string    `json:"fingerprint,omitempty"` // Visitor fingerprint for visits
	OccurredAt  time.Time `json:"occurred_at"`           // Event timestamp
}

// publish sends the stored event to Kafka best-effort: a missing writer
// or a broker error never fails the event write itself.
func (svc *EventService) publish(ctx context.Context, event queuedEvent) {
	if svc.kafkaWriter == nil {
		return
	}

	var payload kafkaEvent
	var key string
	if event.visit != nil {
		payload = kafkaEvent{
			Type:        "profile_visit",
			UserID:      event.visit.UserID.String(),
			Fingerprint: event.visit.Fingerprint,
			OccurredAt:  event.visit.VisitedAt,
		}
		key = payload.UserID
	} else {
		payload = kafkaEvent{
			Type:       "link_click",
			LinkID:     event.click.LinkID.String(),
			OccurredAt: event.click.ClickedAt,
		}
		key = payload.LinkID
	}

	data, err := json.Marshal(payload)
	if err != nil {
		logger.Log.Errorw("failed to marshal event for Kafka", "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event to Kafka", "type", payload.Type, "err", err)
	}
}
