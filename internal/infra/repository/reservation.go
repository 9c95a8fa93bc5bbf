package repository

import (
	"context"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/pgquery"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationNoOverlapConstraint = "reservations_no_overlap"

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateReservationParams) error
	DeleteReservation(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (int64, error)
	FindReservationByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Reservations, error)
	ListReservationsByRoom(ctx context.Context, db pgquery.DBTX, roomID uuid.UUID) ([]pgquery.Reservations, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) Create(ctx context.Context, tx pgquery.DBTX, res *reservation.Reservation) error {
	params := pgquery.CreateReservationParams{
		ID:        res.ID(),
		UserID:    res.UserID(),
		HotelID:   res.HotelID(),
		RoomID:    res.RoomID(),
		DateStart: pgtype.Timestamptz{Time: res.Stay().Start(), Valid: true},
		DateEnd:   pgtype.Timestamptz{Time: res.Stay().End(), Valid: true},
		CreatedAt: pgtype.Timestamptz{Time: res.CreatedAt(), Valid: true},
	}
	if err := r.queries.CreateReservation(ctx, tx, params); err != nil {
		switch {
		case pgconv.PgErrorCode(err) == pgconv.CodeExclusionViolation,
			pgconv.PgConstraint(err) == reservationNoOverlapConstraint:
			return infra.WrapRepoErr("room already booked for requested interval", err, infra.KindConflict)
		case pgconv.PgErrorCode(err) == pgconv.CodeForeignKeyViolation:
			return infra.WrapRepoErr("reservation references a missing user, hotel or room", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.FindReservationByID(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return reservationFromRow(row)
}

func (r *ReservationRepository) ListByRoom(ctx context.Context, tx pgquery.DBTX, roomID uuid.UUID) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsByRoom(ctx, tx, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room reservations", err)
	}
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := reservationFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteReservation(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func reservationFromRow(row pgquery.Reservations) (*reservation.Reservation, error) {
	stay, err := reservation.NewTimeSlot(row.DateStart, row.DateEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has an invalid stay", err, infra.KindDBFailure)
	}
	return reservation.ReconstructReservation(row.ID, row.UserID, row.HotelID, row.RoomID, stay, row.CreatedAt), nil
}
