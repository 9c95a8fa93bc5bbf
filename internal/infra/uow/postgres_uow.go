package uow

import (
	"context"
	"errors"
	"log/slog"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra/pgquery"
	"hotel-booking/internal/infra/readstore"
	"hotel-booking/internal/infra/repository"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *pgquery.Queries
	retry retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgquery.Queries) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, q: q, retry: defaultRetry}
}

// Within runs fn in a READ COMMITTED transaction and replays it on serialization or
// deadlock aborts. fn must be safe to run more than once.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := 0; attempt <= u.retry.maxRetries; attempt++ {
		if attempt > 0 {
			slog.Warn("retrying transaction", "attempt", attempt+1, "error", err)
			if waitErr := u.retry.wait(ctx, attempt-1); waitErr != nil {
				return waitErr
			}
		}
		err = u.runOnce(ctx, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
	}
	slog.Error("transaction failed after max retries", "attempts", u.retry.maxRetries+1, "error", err)
	return errs.Mark(err, errMaxRetriesExceeded)
}

func (u *PostgresUoW) runOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	if err = fn(ctx, u.newTx(pgxTx)); err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", rbErr)
	}
	return err
}

// WithDB runs single statements on the pool without an explicit transaction.
func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.q, u.pool)
}

func (u *PostgresUoW) newTx(db pgquery.DBTX) *pgTx {
	return &pgTx{
		db:           db,
		reservations: repository.NewReservationRepository(u.q),
		rooms:        repository.NewRoomRepository(u.q),
		hotels:       repository.NewHotelRepository(u.q),
		users:        repository.NewUserRepository(u.q),
		reads:        newCommandReads(u.q, db),
	}
}

type pgTx struct {
	db           pgquery.DBTX
	reservations shared.ReservationRepository
	rooms        shared.RoomRepository
	hotels       shared.HotelRepository
	users        shared.UserRepository
	reads        shared.CommandReads
}

func (t *pgTx) DB() pgquery.DBTX                           { return t.db }
func (t *pgTx) Reservations() shared.ReservationRepository { return t.reservations }
func (t *pgTx) Rooms() shared.RoomRepository               { return t.rooms }
func (t *pgTx) Hotels() shared.HotelRepository             { return t.hotels }
func (t *pgTx) Users() shared.UserRepository               { return t.users }
func (t *pgTx) Reads() shared.CommandReads                 { return t.reads }

// commandReads serves the credential lookups that auth commands need, on the same
// connection as the surrounding transaction when there is one.
type commandReads struct {
	users *readstore.UserReadStore
}

func newCommandReads(q *pgquery.Queries, db pgquery.DBTX) *commandReads {
	return &commandReads{users: readstore.NewUserReadStore(q, db)}
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	view, hash, err := r.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	snap := snapshotOf(view.ID, view.Email, view.Name, view.Role, view.IsActive)
	snap.PasswordHash = hash
	return snap, nil
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	view, err := r.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return snapshotOf(view.ID, view.Email, view.Name, view.Role, view.IsActive), nil
}

func snapshotOf(id uuid.UUID, email, name, role string, active bool) *shared.UserSnapshot {
	return &shared.UserSnapshot{ID: id, Email: email, Name: name, Role: user.Role(role), IsActive: active}
}
