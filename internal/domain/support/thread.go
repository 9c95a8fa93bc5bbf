package support

import (
	"errors"
	"time"

	"hotel-booking/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrMissingClient  = errors.New("thread client is required")
	ErrNotParticipant = errors.New("thread belongs to another client")
)

type Thread struct {
	id        string
	clientID  uuid.UUID
	createdAt time.Time
	isActive  bool
	messages  []Message
	version   int64
}

// NewThread opens a thread with the client's first message. The id is assigned by the store.
func NewThread(clientID uuid.UUID, text string, now time.Time) (*Thread, error) {
	if clientID == uuid.Nil {
		return nil, ErrMissingClient
	}
	first, err := NewMessage(clientID, text, now)
	if err != nil {
		return nil, err
	}
	return &Thread{
		clientID:  clientID,
		createdAt: now,
		isActive:  true,
		messages:  []Message{first},
	}, nil
}

func ReconstructThread(id string, clientID uuid.UUID, createdAt time.Time, isActive bool, messages []Message, version int64) *Thread {
	return &Thread{
		id:        id,
		clientID:  clientID,
		createdAt: createdAt,
		isActive:  isActive,
		messages:  messages,
		version:   version,
	}
}

// Append adds a message at the end of the log. Closed threads still accept messages.
func (t *Thread) Append(authorID uuid.UUID, text string, now time.Time) (Message, error) {
	msg, err := NewMessage(authorID, text, now)
	if err != nil {
		return Message{}, err
	}
	t.messages = append(t.messages, msg)
	return msg, nil
}

// MarkRead stamps every unread foreign message sent before createdBefore and returns
// the positions it changed. Messages that already carry readAt are left alone.
func (t *Thread) MarkRead(side Side, createdBefore, now time.Time) []int {
	var marked []int
	for i := range t.messages {
		m := &t.messages[i]
		if m.readAt != nil || !m.sentAt.Before(createdBefore) || !IsForeign(*m, t.clientID, side) {
			continue
		}
		readAt := now
		if readAt.Before(m.sentAt) {
			readAt = m.sentAt
		}
		m.readAt = &readAt
		marked = append(marked, i)
	}
	return marked
}

func (t *Thread) UnreadCount(side Side) int {
	n := 0
	for _, m := range t.messages {
		if m.readAt == nil && IsForeign(m, t.clientID, side) {
			n++
		}
	}
	return n
}

// CheckAccess lets employees into any thread and clients only into their own.
func (t *Thread) CheckAccess(userID uuid.UUID, role user.Role) error {
	if role.IsEmployee() || userID == t.clientID {
		return nil
	}
	return ErrNotParticipant
}

// SideOf places a user on the client side only when they own the thread.
func (t *Thread) SideOf(userID uuid.UUID) Side {
	if userID == t.clientID {
		return SideClient
	}
	return SideEmployee
}

func (t *Thread) HasNewMessages() bool {
	for _, m := range t.messages {
		if m.readAt == nil {
			return true
		}
	}
	return false
}

// Close is idempotent.
func (t *Thread) Close() {
	t.isActive = false
}

func (t *Thread) ID() string           { return t.id }
func (t *Thread) ClientID() uuid.UUID  { return t.clientID }
func (t *Thread) CreatedAt() time.Time { return t.createdAt }
func (t *Thread) IsActive() bool       { return t.isActive }
func (t *Thread) Version() int64       { return t.version }

func (t *Thread) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Thread) Message(i int) Message { return t.messages[i] }

func (t *Thread) LastMessage() Message { return t.messages[len(t.messages)-1] }
