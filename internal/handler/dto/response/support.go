package response

import (
	"time"

	"hotel-booking/internal/domain/support"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClientResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ContactPhone *string   `json:"contactPhone,omitempty"`
}

type ThreadResponse struct {
	ID             string          `json:"id"`
	CreatedAt      time.Time       `json:"createdAt"`
	IsActive       bool            `json:"isActive"`
	HasNewMessages bool            `json:"hasNewMessages"`
	Client         *ClientResponse `json:"client,omitempty"`
}

type AuthorResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name,omitempty"`
}

type MessageResponse struct {
	ID     int            `json:"id"`
	Text   string         `json:"text"`
	SentAt time.Time      `json:"sentAt"`
	ReadAt *time.Time     `json:"readAt"`
	Author AuthorResponse `json:"author"`
}

type MarkReadResponse struct {
	Success bool `json:"success"`
	Marked  int  `json:"marked"`
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}

func FromThreadSummary(v *queries.ThreadSummaryView) *ThreadResponse {
	out := &ThreadResponse{
		ID:             v.ID,
		CreatedAt:      v.CreatedAt,
		IsActive:       v.IsActive,
		HasNewMessages: v.HasNewMessages,
	}
	if v.Client != nil {
		out.Client = &ClientResponse{
			ID:           v.Client.ID,
			Name:         v.Client.Name,
			Email:        v.Client.Email,
			ContactPhone: v.Client.ContactPhone,
		}
	}
	return out
}

func FromThreadSummaries(vs []*queries.ThreadSummaryView) []*ThreadResponse {
	out := make([]*ThreadResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromThreadSummary(v))
	}
	return out
}

// FromOpenedThread describes a thread the caller just created; its only message is their own.
func FromOpenedThread(t *support.Thread) *ThreadResponse {
	return &ThreadResponse{
		ID:        t.ID(),
		CreatedAt: t.CreatedAt(),
		IsActive:  t.IsActive(),
	}
}

func FromMessageViews(vs []*queries.MessageView) []*MessageResponse {
	out := make([]*MessageResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, &MessageResponse{
			ID:     v.Index,
			Text:   v.Text,
			SentAt: v.SentAt,
			ReadAt: v.ReadAt,
			Author: AuthorResponse{ID: v.Author.ID, Name: v.Author.Name},
		})
	}
	return out
}

type SentMessageResponse struct {
	Text   string         `json:"text"`
	SentAt time.Time      `json:"sentAt"`
	ReadAt *time.Time     `json:"readAt"`
	Author AuthorResponse `json:"author"`
}

func FromMessage(m support.Message) *SentMessageResponse {
	return &SentMessageResponse{
		Text:   m.Text(),
		SentAt: m.SentAt(),
		ReadAt: m.ReadAt(),
		Author: AuthorResponse{ID: m.AuthorID()},
	}
}

// MessageEvent is one SSE frame on a thread's event stream.
type MessageEvent struct {
	ThreadID string               `json:"threadId"`
	IsActive bool                 `json:"isActive"`
	Message  *SentMessageResponse `json:"message"`
}

func FromMessageAppended(ev support.MessageAppended) *MessageEvent {
	return &MessageEvent{
		ThreadID: ev.ThreadID,
		IsActive: ev.IsActive,
		Message:  FromMessage(ev.Message),
	}
}
