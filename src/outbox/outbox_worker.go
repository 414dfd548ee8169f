package outbox

import (
	"context"
	"errors"
	"time"

	"sos-api/pkg/logger"
	"sos-api/pkg/rabbitmq"
	"sos-api/src/metrics"

	"github.com/google/uuid"
	"github.com/robfig/cron"
	"github.com/sony/gobreaker"
)

const (
	outboxWorkerName = "OutboxCronWorker"
	DefaultSchedule  = "@every 10s"
	defaultBatchSize = 100
)

type OutboxWorker struct {
	publisher  rabbitmq.IRabbitmqPublisher
	repository OutboxRepository
	cron       *cron.Cron
	breaker    *gobreaker.CircuitBreaker
	schedule   string
	batchSize  int
}

func NewOutboxWorker(repository OutboxRepository, publisher rabbitmq.IRabbitmqPublisher, schedule string) *OutboxWorker {
	if schedule == "" {
		schedule = DefaultSchedule
	}

	return &OutboxWorker{
		publisher:  publisher,
		repository: repository,
		cron:       cron.New(),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        outboxWorkerName,
			MaxRequests: 1,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Default().Warnf("%s circuit breaker %s -> %s", name, from, to)
			},
		}),
		schedule:  schedule,
		batchSize: defaultBatchSize,
	}
}

func (ow *OutboxWorker) GetServiceName() string {
	return outboxWorkerName
}

func (ow *OutboxWorker) StartService() {
	err := ow.cron.AddFunc(ow.schedule, func() { ow.ProcessOutboxEvents(context.Background()) })
	if err != nil {
		logger.Default().Errorf(err, "Could not add function to %s", outboxWorkerName)
		return
	}

	ow.cron.Start()
}

func (ow *OutboxWorker) StopService() {
	ow.cron.Stop()
}

// ProcessOutboxEvents publishes one batch and returns how many events went out. An open
// breaker ends the batch without touching retry counters.
func (ow *OutboxWorker) ProcessOutboxEvents(ctx context.Context) int {
	outboxLogger := logger.Default().WithField("worker", outboxWorkerName)

	events, err := ow.repository.GetUnprocessedEvents(ctx, ow.batchSize)
	if err != nil {
		outboxLogger.Error(err, "Could not read events from database")
		return 0
	}

	published := 0
	for _, e := range events {
		eventId, err := uuid.Parse(e.EventId)
		if err != nil {
			outboxLogger.Errorf(err, "Malformed event id %q", e.EventId)
			continue
		}

		_, err = ow.breaker.Execute(func() (interface{}, error) {
			return nil, ow.publisher.PublishWithKey(e.EventType, e.MapToMessage())
		})
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outboxLogger.Warn("Publisher circuit open, postponing remaining events")
			return published
		}
		if err != nil {
			outboxLogger.Errorf(err, "Can't publish event %s to queue", e.EventId)
			if err := ow.repository.UpdateRetryValue(ctx, eventId); err != nil {
				outboxLogger.Errorf(err, "Could not update retry value for %s", e.EventId)
			}
			continue
		}

		if err := ow.repository.MarkEventAsProcessed(ctx, eventId); err != nil {
			outboxLogger.Errorf(err, "Could not mark event %s as processed", e.EventId)
			continue
		}
		metrics.OutboxEventsPublished.WithLabelValues(e.EventType).Inc()
		published++
	}

	return published
}
