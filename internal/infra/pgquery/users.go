package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, email, password_hash, name, contact_phone, role, is_active, created_at, updated_at`

type CreateUserParams struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	ContactPhone pgtype.Text
	Role         string
	IsActive     bool
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

const createUser = `
INSERT INTO users (` + userColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) error {
	_, err := db.Exec(ctx, createUser,
		arg.ID,
		arg.Email,
		arg.PasswordHash,
		arg.Name,
		arg.ContactPhone,
		arg.Role,
		arg.IsActive,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const findUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (Users, error) {
	return one[Users](ctx, db, findUserByEmail, email)
}

const findUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	return one[Users](ctx, db, findUserByID, id)
}

const findUsersByIDs = `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1::uuid[])`

func (q *Queries) FindUsersByIDs(ctx context.Context, db DBTX, ids []string) ([]Users, error) {
	return many[Users](ctx, db, findUsersByIDs, ids)
}

type SearchUsersParams struct {
	Email        pgtype.Text
	Name         pgtype.Text
	ContactPhone pgtype.Text
	Role         pgtype.Text
	Limit        int32
	Offset       int32
}

const searchUsers = `
SELECT ` + userColumns + ` FROM users
WHERE ($1::text IS NULL OR email ILIKE '%' || $1 || '%')
  AND ($2::text IS NULL OR name ILIKE '%' || $2 || '%')
  AND ($3::text IS NULL OR contact_phone ILIKE '%' || $3 || '%')
  AND ($4::text IS NULL OR role = $4)
ORDER BY created_at DESC, id
LIMIT $5 OFFSET $6`

func (q *Queries) SearchUsers(ctx context.Context, db DBTX, arg SearchUsersParams) ([]Users, error) {
	return many[Users](ctx, db, searchUsers,
		arg.Email,
		arg.Name,
		arg.ContactPhone,
		arg.Role,
		arg.Limit,
		arg.Offset,
	)
}
