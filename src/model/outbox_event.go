package model

import (
	"encoding/json"
	"time"

	"sos-api/pkg/utilities"
)

type OutboxEvent struct {
	Id          uint   `gorm:"primaryKey;autoIncrement"`
	EventId     string `gorm:"uniqueIndex;size:36;not null"`
	EventType   string `gorm:"size:64;not null;index"`
	AggregateId uint
	Payload     string `gorm:"type:text;not null"`
	Retry       int    `gorm:"not null"`
	ToProcess   bool   `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ProcessedAt *time.Time
}

// OutboxMessage is the wire form published to the broker.
type OutboxMessage struct {
	EventId    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

func (om OutboxMessage) Serialize() ([]byte, error) {
	return utilities.Serialize(om)
}

func (oe OutboxEvent) MapToMessage() OutboxMessage {
	return OutboxMessage{
		EventId:    oe.EventId,
		EventType:  oe.EventType,
		OccurredAt: oe.CreatedAt.UTC(),
		Payload:    json.RawMessage(oe.Payload),
	}
}
