package support

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxTextLength = 5000

var (
	ErrEmptyText     = errors.New("message text must not be empty")
	ErrTextTooLong   = errors.New("message text too long")
	ErrMissingAuthor = errors.New("message author is required")
)

// Message is embedded in a Thread and never addressed on its own.
type Message struct {
	authorID uuid.UUID
	text     string
	sentAt   time.Time
	readAt   *time.Time
}

func NewMessage(authorID uuid.UUID, text string, now time.Time) (Message, error) {
	if authorID == uuid.Nil {
		return Message{}, ErrMissingAuthor
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Message{}, ErrEmptyText
	}
	if len([]rune(trimmed)) > MaxTextLength {
		return Message{}, ErrTextTooLong
	}
	return Message{authorID: authorID, text: trimmed, sentAt: now}, nil
}

func ReconstructMessage(authorID uuid.UUID, text string, sentAt time.Time, readAt *time.Time) Message {
	return Message{authorID: authorID, text: text, sentAt: sentAt, readAt: readAt}
}

func (m Message) AuthorID() uuid.UUID { return m.authorID }
func (m Message) Text() string        { return m.text }
func (m Message) SentAt() time.Time   { return m.sentAt }
func (m Message) ReadAt() *time.Time  { return m.readAt }
func (m Message) IsRead() bool        { return m.readAt != nil }
