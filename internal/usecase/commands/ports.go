package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

import (
	"context"

	"hotel-booking/internal/domain/support"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// ThreadRepository is the document store behind support threads. It lives outside the
// Postgres unit of work; appends are atomic and read marks are guarded by the thread version.
type ThreadRepository interface {
	Create(ctx context.Context, t *support.Thread) (*support.Thread, error)
	FindByID(ctx context.Context, id string) (*support.Thread, error)
	AppendMessage(ctx context.Context, threadID string, msg support.Message) error
	SaveReadMarks(ctx context.Context, t *support.Thread, indexes []int) error
	Close(ctx context.Context, threadID string) error
}

// EventPublisher must not block on slow subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, ev support.MessageAppended)
}

// EventSubscriber feeds live relays such as the SSE stream.
type EventSubscriber interface {
	Subscribe(name string, fn func(ctx context.Context, ev support.MessageAppended) error) (unsubscribe func())
}

type TokenService interface {
	GenerateAccessToken(userID uuid.UUID, role user.Role) (string, error)
	GenerateRefreshToken(userID uuid.UUID, role user.Role) (string, error)
	ValidateToken(token string) (*jwt.Claims, error)
}
