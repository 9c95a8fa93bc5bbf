package repository

import (
	"context"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/pgquery"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateUserParams) error
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx pgquery.DBTX, u *user.User) error {
	phone := u.ContactPhone().Value()
	params := pgquery.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Name:         u.Name().Value(),
		ContactPhone: pgconv.StringPtrToPgtype(&phone),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    pgtype.Timestamptz{Time: u.CreatedAt(), Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: u.UpdatedAt(), Valid: true},
	}
	if err := r.queries.CreateUser(ctx, tx, params); err != nil {
		if pgconv.PgErrorCode(err) == pgconv.CodeUniqueViolation {
			return infra.WrapRepoErr("user already exists: "+pgconv.PgConstraint(err), err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}
