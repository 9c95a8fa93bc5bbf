package queries

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
)

var (
	ErrReservationNotFound = errs.New("queries: reservation not found")
	ErrInvalidDateFilter   = errs.New("queries: invalid date filter")
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// ListByUser returns the user's stays that start at or after from and end at or before to.
	// Either bound may be nil.
	ListByUser(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*ReservationView, error)
	ListAllByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUser(ctx context.Context, userID uuid.UUID, period reservation.Period) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*ReservationView, error) {
	period, err := reservation.NewPeriod(from, to)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateFilter)
	}
	return q.repo.FindByUser(ctx, userID, period)
}

func (q *reservationQueriesImpl) ListAllByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	return q.repo.FindByUser(ctx, userID, reservation.Period{})
}
