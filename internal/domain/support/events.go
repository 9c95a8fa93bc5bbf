package support

import (
	"time"

	"github.com/google/uuid"
)

// MessageAppended is published after a message has been stored.
type MessageAppended struct {
	ThreadID   string
	ClientID   uuid.UUID
	IsActive   bool
	Message    Message
	OccurredAt time.Time
}
