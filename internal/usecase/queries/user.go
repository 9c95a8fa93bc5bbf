package queries

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock

import (
	"context"

	"github.com/google/uuid"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
)

var (
	ErrUserNotFound = errs.New("queries: user not found")
	ErrUserInactive = errs.New("queries: user inactive")
)

type UserSearchFilter struct {
	Email        string
	Name         string
	ContactPhone string
	Role         string
	Page         Page
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	SearchUsers(ctx context.Context, filter UserSearchFilter) ([]*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*UserView, error)
	Search(ctx context.Context, filter UserSearchFilter) ([]*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

func (q *userQueriesImpl) SearchUsers(ctx context.Context, filter UserSearchFilter) ([]*UserView, error) {
	filter.Page = NormalizePage(filter.Page.Limit, filter.Page.Offset)
	return q.readStore.Search(ctx, filter)
}
