package commands

//go:generate mockgen -source=support.go -destination=../../../tests/mock/commands/support.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/access"
	"hotel-booking/internal/domain/support"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const maxReadMarkAttempts = 3

var (
	ErrInvalidMessage  = errs.New("invalid message")
	ErrThreadNotFound  = errs.New("support request not found")
	ErrThreadForbidden = errs.New("support request belongs to another client")
	ErrReadMarkRetries = errs.New("support request kept changing while marking messages read")
)

type SupportCommands interface {
	OpenThread(ctx context.Context, clientID uuid.UUID, text string) (*support.Thread, error)
	AppendMessage(ctx context.Context, threadID string, actor access.Principal, text string) (support.Message, error)
	MarkMessagesRead(ctx context.Context, threadID string, actor access.Principal, createdBefore time.Time) (int, error)
	CloseThread(ctx context.Context, threadID string) error
}

type supportCommandsImpl struct {
	threads   ThreadRepository
	publisher EventPublisher
	clock     clock.Clock
}

func NewSupportCommands(threads ThreadRepository, publisher EventPublisher, clk clock.Clock) SupportCommands {
	return &supportCommandsImpl{threads: threads, publisher: publisher, clock: clk}
}

func (uc *supportCommandsImpl) OpenThread(ctx context.Context, clientID uuid.UUID, text string) (*support.Thread, error) {
	t, err := support.NewThread(clientID, text, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidMessage)
	}
	return uc.threads.Create(ctx, t)
}

// AppendMessage stores the message and then notifies subscribers. Notification is fire and
// forget; it cannot fail the append.
func (uc *supportCommandsImpl) AppendMessage(ctx context.Context, threadID string, actor access.Principal, text string) (support.Message, error) {
	t, err := uc.load(ctx, threadID, actor)
	if err != nil {
		return support.Message{}, err
	}

	now := uc.clock.Now()
	msg, err := t.Append(actor.UserID, text, now)
	if err != nil {
		return support.Message{}, errs.Mark(err, ErrInvalidMessage)
	}

	if err := uc.threads.AppendMessage(ctx, t.ID(), msg); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return support.Message{}, errs.Mark(err, ErrThreadNotFound)
		}
		return support.Message{}, err
	}

	uc.publisher.Publish(ctx, support.MessageAppended{
		ThreadID:   t.ID(),
		ClientID:   t.ClientID(),
		IsActive:   t.IsActive(),
		Message:    msg,
		OccurredAt: now,
	})
	return msg, nil
}

// MarkMessagesRead stamps the actor's unread foreign messages sent before createdBefore.
// A concurrent append bumps the thread version; the command then reloads and tries again.
func (uc *supportCommandsImpl) MarkMessagesRead(ctx context.Context, threadID string, actor access.Principal, createdBefore time.Time) (int, error) {
	side := support.SideForRole(actor.Role)

	for attempt := 1; attempt <= maxReadMarkAttempts; attempt++ {
		t, err := uc.load(ctx, threadID, actor)
		if err != nil {
			return 0, err
		}

		marked := t.MarkRead(side, createdBefore, uc.clock.Now())
		if len(marked) == 0 {
			return 0, nil
		}

		err = uc.threads.SaveReadMarks(ctx, t, marked)
		if err == nil {
			return len(marked), nil
		}
		if !infra.IsKind(err, infra.KindConcurrentModification) {
			return 0, err
		}
		slog.Debug("support request changed while marking read, retrying",
			"thread_id", threadID,
			"attempt", attempt)
	}
	return 0, ErrReadMarkRetries
}

func (uc *supportCommandsImpl) CloseThread(ctx context.Context, threadID string) error {
	if err := uc.threads.Close(ctx, threadID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrThreadNotFound)
		}
		return err
	}
	return nil
}

func (uc *supportCommandsImpl) load(ctx context.Context, threadID string, actor access.Principal) (*support.Thread, error) {
	t, err := uc.threads.FindByID(ctx, threadID)
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
