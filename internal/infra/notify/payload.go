package notify

import (
	"encoding/json"
	"time"

	"hotel-booking/internal/domain/support"
)

// MessageAppendedPayload is the broker wire format of support.MessageAppended.
type MessageAppendedPayload struct {
	Type       string     `json:"type"`
	ThreadID   string     `json:"thread_id"`
	ClientID   string     `json:"client_id"`
	IsActive   bool       `json:"is_active"`
	AuthorID   string     `json:"author_id"`
	Text       string     `json:"text"`
	SentAt     time.Time  `json:"sent_at"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

const EventTypeMessageAppended = "support.message_appended"

func NewMessageAppendedPayload(ev support.MessageAppended) MessageAppendedPayload {
	return MessageAppendedPayload{
		Type:       EventTypeMessageAppended,
		ThreadID:   ev.ThreadID,
		ClientID:   ev.ClientID.String(),
		IsActive:   ev.IsActive,
		AuthorID:   ev.Message.AuthorID().String(),
		Text:       ev.Message.Text(),
		SentAt:     ev.Message.SentAt(),
		ReadAt:     ev.Message.ReadAt(),
		OccurredAt: ev.OccurredAt,
	}
}

func encode(ev support.MessageAppended) ([]byte, error) {
	return json.Marshal(NewMessageAppendedPayload(ev))
}
