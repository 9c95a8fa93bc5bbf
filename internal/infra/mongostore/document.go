package mongostore

import (
	"time"

	"hotel-booking/internal/domain/support"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type threadDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ClientID  string             `bson:"clientId"`
	CreatedAt time.Time          `bson:"createdAt"`
	IsActive  bool               `bson:"isActive"`
	Messages  []messageDocument  `bson:"messages"`
	Version   int64              `bson:"version"`
}

type messageDocument struct {
	AuthorID string     `bson:"authorId"`
	Text     string     `bson:"text"`
	SentAt   time.Time  `bson:"sentAt"`
	ReadAt   *time.Time `bson:"readAt"`
}

func toThreadDocument(t *support.Thread) threadDocument {
	msgs := t.Messages()
	docs := make([]messageDocument, 0, len(msgs))
	for _, m := range msgs {
		docs = append(docs, toMessageDocument(m))
	}
	return threadDocument{
		ClientID:  t.ClientID().String(),
		CreatedAt: t.CreatedAt(),
		IsActive:  t.IsActive(),
		Messages:  docs,
		Version:   t.Version(),
	}
}

func toMessageDocument(m support.Message) messageDocument {
	return messageDocument{
		AuthorID: m.AuthorID().String(),
		Text:     m.Text(),
		SentAt:   m.SentAt(),
		ReadAt:   m.ReadAt(),
	}
}

func (d threadDocument) toDomain() (*support.Thread, error) {
	clientID, err := uuid.Parse(d.ClientID)
	if err != nil {
		return nil, err
	}
	msgs := make([]support.Message, 0, len(d.Messages))
	for _, md := range d.Messages {
		authorID, err := uuid.Parse(md.AuthorID)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, support.ReconstructMessage(authorID, md.Text, md.SentAt.UTC(), utcPtr(md.ReadAt)))
	}
	return support.ReconstructThread(d.ID.Hex(), clientID, d.CreatedAt.UTC(), d.IsActive, msgs, d.Version), nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
