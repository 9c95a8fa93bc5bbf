package readstore

import (
	"context"

	"github.com/google/uuid"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/pgquery"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Users, error)
	FindUserByEmail(ctx context.Context, db pgquery.DBTX, email string) (pgquery.Users, error)
	FindUsersByIDs(ctx context.Context, db pgquery.DBTX, ids []string) ([]pgquery.Users, error)
	SearchUsers(ctx context.Context, db pgquery.DBTX, arg pgquery.SearchUsersParams) ([]pgquery.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      pgquery.DBTX
}

func NewUserReadStore(queries UserReadQueries, db pgquery.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserView(row), nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return toUserView(row), row.PasswordHash, nil
}

func (r *UserReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*queries.UserView, error) {
	out := make(map[uuid.UUID]*queries.UserView, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}
	rows, err := r.queries.FindUsersByIDs(ctx, r.db, raw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find users by IDs", err)
	}
	for _, row := range rows {
		out[row.ID] = toUserView(row)
	}
	return out, nil
}

func (r *UserReadStore) Search(ctx context.Context, filter queries.UserSearchFilter) ([]*queries.UserView, error) {
	rows, err := r.queries.SearchUsers(ctx, r.db, pgquery.SearchUsersParams{
		Email:        pgconv.StringPtrToPgtype(&filter.Email),
		Name:         pgconv.StringPtrToPgtype(&filter.Name),
		ContactPhone: pgconv.StringPtrToPgtype(&filter.ContactPhone),
		Role:         pgconv.StringPtrToPgtype(&filter.Role),
		Limit:        int32(filter.Page.Limit),  // #nosec G115 -- page limit is clamped
		Offset:       int32(filter.Page.Offset), // #nosec G115 -- offset comes from a bound query param
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search users", err)
	}
	out := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toUserView(row))
	}
	return out, nil
}

func toUserView(row pgquery.Users) *queries.UserView {
	return &queries.UserView{
		ID:           row.ID,
		Email:        row.Email,
		Name:         row.Name,
		ContactPhone: pgconv.StringPtrFromPgtype(row.ContactPhone),
		Role:         row.Role,
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt,
	}
}
