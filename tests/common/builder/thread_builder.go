//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/support"

	"github.com/google/uuid"
)

type ThreadBuilder struct {
	ID        string
	ClientID  uuid.UUID
	CreatedAt time.Time
	IsActive  bool
	Messages  []support.Message
	Version   int64
}

func NewThreadBuilder() *ThreadBuilder {
	return &ThreadBuilder{
		ID:        "665f1c2e9b1d4a3f8c7e6d5a",
		ClientID:  uuid.New(),
		CreatedAt: time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC),
		IsActive:  true,
		Version:   1,
	}
}

func (b *ThreadBuilder) With(mutate func(*ThreadBuilder)) *ThreadBuilder {
	mutate(b)
	return b
}

// FromClient appends an unread message written by the thread's client, offset minutes after creation.
func (b *ThreadBuilder) FromClient(text string, offset int) *ThreadBuilder {
	return b.message(b.ClientID, text, offset)
}

// FromEmployee appends an unread message written by employeeID.
func (b *ThreadBuilder) FromEmployee(employeeID uuid.UUID, text string, offset int) *ThreadBuilder {
	return b.message(employeeID, text, offset)
}

func (b *ThreadBuilder) message(author uuid.UUID, text string, offset int) *ThreadBuilder {
	sentAt := b.CreatedAt.Add(time.Duration(offset) * time.Minute)
	b.Messages = append(b.Messages, support.ReconstructMessage(author, text, sentAt, nil))
	return b
}

func (b *ThreadBuilder) AsClosed() *ThreadBuilder {
	b.IsActive = false
	return b
}

func (b *ThreadBuilder) BuildDomain() *support.Thread {
	msgs := make([]support.Message, len(b.Messages))
	copy(msgs, b.Messages)
	return support.ReconstructThread(b.ID, b.ClientID, b.CreatedAt, b.IsActive, msgs, b.Version)
}
