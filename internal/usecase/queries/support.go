package queries

//go:generate mockgen -source=support.go -destination=../../../tests/mock/queries/support.go -package=queriesmock

import (
	"context"

	"github.com/google/uuid"

	"hotel-booking/internal/domain/access"
	"hotel-booking/internal/domain/support"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
)

var (
	ErrThreadNotFound      = errs.New("queries: support request not found")
	ErrThreadForbidden     = errs.New("queries: support request belongs to another client")
	ErrInvalidActiveFilter = errs.New("queries: isActive must be true or false")
)

// ParseActiveFilter reads the tri-state isActive query value: absent, "true" or "false".
func ParseActiveFilter(raw string) (*bool, error) {
	switch raw {
	case "":
		return nil, nil
	case "true":
		v := true
		return &v, nil
	case "false":
		v := false
		return &v, nil
	default:
		return nil, ErrInvalidActiveFilter
	}
}

type ThreadListFilter struct {
	ClientID *uuid.UUID
	IsActive *bool
	Page     Page
}

type SupportQueries interface {
	ListForClient(ctx context.Context, clientID uuid.UUID, page Page, isActive *bool) ([]*ThreadSummaryView, error)
	ListForManager(ctx context.Context, page Page, isActive *bool) ([]*ThreadSummaryView, error)
	GetMessages(ctx context.Context, threadID string, actor access.Principal) ([]*MessageView, error)
	// UnreadCount counts from the client side when the actor owns the thread, the employee side otherwise.
	UnreadCount(ctx context.Context, threadID string, actor access.Principal) (int, error)
}

type ThreadReadStore interface {
	FindByID(ctx context.Context, id string) (*support.Thread, error)
	List(ctx context.Context, filter ThreadListFilter) ([]*support.Thread, error)
}

type supportQueriesImpl struct {
	threads ThreadReadStore
	users   UserReadStore
}

func NewSupportQueries(threads ThreadReadStore, users UserReadStore) SupportQueries {
	return &supportQueriesImpl{threads: threads, users: users}
}

func (q *supportQueriesImpl) ListForClient(ctx context.Context, clientID uuid.UUID, page Page, isActive *bool) ([]*ThreadSummaryView, error) {
	threads, err := q.threads.List(ctx, ThreadListFilter{
		ClientID: &clientID,
		IsActive: isActive,
		Page:     NormalizePage(page.Limit, page.Offset),
	})
	if err != nil {
		return nil, err
	}
	out := make([]*ThreadSummaryView, 0, len(threads))
	for _, t := range threads {
		out = append(out, toThreadSummary(t))
	}
	return out, nil
}

func (q *supportQueriesImpl) ListForManager(ctx context.Context, page Page, isActive *bool) ([]*ThreadSummaryView, error) {
	threads, err := q.threads.List(ctx, ThreadListFilter{
		IsActive: isActive,
		Page:     NormalizePage(page.Limit, page.Offset),
	})
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(threads))
	for _, t := range threads {
		ids = append(ids, t.ClientID())
	}
	clients, err := q.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*ThreadSummaryView, 0, len(threads))
	for _, t := range threads {
		v := toThreadSummary(t)
		v.Client = &ClientContact{ID: t.ClientID()}
		if u, ok := clients[t.ClientID()]; ok {
			v.Client.Name = u.Name
			v.Client.Email = u.Email
			v.Client.ContactPhone = u.ContactPhone
		}
		out = append(out, v)
	}
	return out, nil
}

func (q *supportQueriesImpl) GetMessages(ctx context.Context, threadID string, actor access.Principal) ([]*MessageView, error) {
	t, err := q.load(ctx, threadID, actor)
	if err != nil {
		return nil, err
	}

	msgs := t.Messages()
	seen := make(map[uuid.UUID]struct{})
	var authorIDs []uuid.UUID
	for _, m := range msgs {
		if _, ok := seen[m.AuthorID()]; !ok {
			seen[m.AuthorID()] = struct{}{}
			authorIDs = append(authorIDs, m.AuthorID())
		}
	}
	authors, err := q.users.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	out := make([]*MessageView, 0, len(msgs))
	for i, m := range msgs {
		author := MessageAuthor{ID: m.AuthorID()}
		if u, ok := authors[m.AuthorID()]; ok {
			author.Name = u.Name
		}
		out = append(out, &MessageView{
			Index:  i,
			Author: author,
			Text:   m.Text(),
			SentAt: m.SentAt(),
			ReadAt: m.ReadAt(),
		})
	}
	return out, nil
}

func (q *supportQueriesImpl) UnreadCount(ctx context.Context, threadID string, actor access.Principal) (int, error) {
	t, err := q.load(ctx, threadID, actor)
	if err != nil {
		return 0, err
	}
	return t.UnreadCount(t.SideOf(actor.UserID)), nil
}

func (q *supportQueriesImpl) load(ctx context.Context, threadID string, actor access.Principal) (*support.Thread, error) {
	t, err := q.threads.FindByID(ctx, threadID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrThreadNotFound)
		}
		return nil, err
	}
	if err := t.CheckAccess(actor.UserID, actor.Role); err != nil {
		return nil, errs.Mark(err, ErrThreadForbidden)
	}
	return t, nil
}

func toThreadSummary(t *support.Thread) *ThreadSummaryView {
	return &ThreadSummaryView{
		ID:             t.ID(),
		CreatedAt:      t.CreatedAt(),
		IsActive:       t.IsActive(),
		HasNewMessages: t.HasNewMessages(),
	}
}
