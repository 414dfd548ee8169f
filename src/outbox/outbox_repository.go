package outbox

import (
	"context"
	"encoding/json"
	"time"

	"sos-api/src/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const MaxRetries = 5

type OutboxRepository interface {
	WithTx(tx *gorm.DB) OutboxRepository
	NewEvent(ctx context.Context, eventType string, aggregateId uint, payload any) (uuid.UUID, error)
	GetEvent(ctx context.Context, eventId uuid.UUID) (model.OutboxEvent, error)
	GetUnprocessedEvents(ctx context.Context, limit int) ([]model.OutboxEvent, error)
	MarkEventAsProcessed(ctx context.Context, eventId uuid.UUID) error
	UpdateRetryValue(ctx context.Context, eventId uuid.UUID) error
}

type outboxRepository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (or *outboxRepository) WithTx(tx *gorm.DB) OutboxRepository {
	return &outboxRepository{db: tx}
}

// NewEvent stores the event in the caller's transaction; the worker publishes it later.
func (or *outboxRepository) NewEvent(ctx context.Context, eventType string, aggregateId uint, payload any) (uuid.UUID, error) {
	eventId, err := uuid.NewRandom()
	if err != nil {
		return eventId, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return eventId, err
	}

	result := or.db.WithContext(ctx).Create(&model.OutboxEvent{
		EventId:     eventId.String(),
		EventType:   eventType,
		AggregateId: aggregateId,
		Payload:     string(body),
		ToProcess:   true,
	})

	return eventId, result.Error
}

func (or *outboxRepository) GetEvent(ctx context.Context, eventId uuid.UUID) (model.OutboxEvent, error) {
	var event model.OutboxEvent
	result := or.db.WithContext(ctx).First(&event, "event_id = ?", eventId.String())
	return event, result.Error
}

func (or *outboxRepository) GetUnprocessedEvents(ctx context.Context, limit int) ([]model.OutboxEvent, error) {
	var events []model.OutboxEvent
	result := or.db.WithContext(ctx).
		Where("to_process = ?", true).
		Order("id").
		Limit(limit).
		Find(&events)
	return events, result.Error
}

func (or *outboxRepository) MarkEventAsProcessed(ctx context.Context, eventId uuid.UUID) error {
	now := time.Now().UTC()
	return or.db.WithContext(ctx).
		Model(&model.OutboxEvent{}).
		Where("event_id = ?", eventId.String()).
		Updates(map[string]any{"to_process": false, "processed_at": now}).Error
}

// UpdateRetryValue bumps the retry counter. Past MaxRetries the event is parked
// (to_process=false, processed_at unset) for manual inspection.
func (or *outboxRepository) UpdateRetryValue(ctx context.Context, eventId uuid.UUID) error {
	return or.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event model.OutboxEvent
		if err := tx.First(&event, "event_id = ?", eventId.String()).Error; err != nil {
			return err
		}

		updates := map[string]any{"retry": event.Retry + 1}
		if event.Retry+1 >= MaxRetries {
			updates["to_process"] = false
		}

		return tx.Model(&model.OutboxEvent{}).
			Where("event_id = ?", eventId.String()).
			Updates(updates).Error
	})
}
