package readstore

import (
	"context"

	"github.com/google/uuid"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/pgquery"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"
)

type ReservationReadQueries interface {
	FindReservationDetailByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.ReservationDetailRow, error)
	ListReservationDetailsByUser(ctx context.Context, db pgquery.DBTX, arg pgquery.ListReservationDetailsByUserParams) ([]pgquery.ReservationDetailRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      pgquery.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db pgquery.DBTX) *ReservationReadStore {
	return &ReservationReadStore{queries: queries, db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.FindReservationDetailByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return toReservationView(row), nil
}

func (r *ReservationReadStore) FindByUser(ctx context.Context, userID uuid.UUID, period reservation.Period) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationDetailsByUser(ctx, r.db, pgquery.ListReservationDetailsByUserParams{
		UserID: userID,
		From:   pgconv.TimePtrToPgtype(period.From()),
		To:     pgconv.TimePtrToPgtype(period.To()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	out := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toReservationView(row))
	}
	return out, nil
}

func toReservationView(row pgquery.ReservationDetailRow) *queries.ReservationView {
	images := row.RoomImages
	if images == nil {
		images = []string{}
	}
	return &queries.ReservationView{
		ID:        row.ID,
		UserID:    row.UserID,
		DateStart: row.DateStart,
		DateEnd:   row.DateEnd,
		CreatedAt: row.CreatedAt,
		Hotel: queries.HotelSummary{
			ID:          row.HotelID,
			Title:       row.HotelTitle,
			Description: row.HotelDescription,
		},
		Room: queries.RoomSummary{
			ID:          row.RoomID,
			Description: row.RoomDescription,
			Images:      images,
		},
	}
}
