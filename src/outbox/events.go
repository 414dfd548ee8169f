package outbox

import "time"

const (
	EventContactRequested = "contact.requested"
	EventContactAccepted  = "contact.accepted"
	EventSosCreated       = "sos.created"
)

type ContactEventPayload struct {
	ContactId  uint `json:"contact_id"`
	FromUserId uint `json:"from_user_id"`
	ToUserId   uint `json:"to_user_id"`
}

// SosCreatedPayload is fanned out to RecipientIds by the notification consumer.
type SosCreatedPayload struct {
	SosId        uint      `json:"sos_id"`
	SenderId     uint      `json:"sender_id"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	CreatedAt    time.Time `json:"created_at"`
	RecipientIds []uint    `json:"recipient_ids"`
}
