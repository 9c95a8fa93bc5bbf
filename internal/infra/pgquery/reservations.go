package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, user_id, hotel_id, room_id, date_start, date_end, created_at`

type CreateReservationParams struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	HotelID   uuid.UUID
	RoomID    uuid.UUID
	DateStart pgtype.Timestamptz
	DateEnd   pgtype.Timestamptz
	CreatedAt pgtype.Timestamptz
}

const createReservation = `
INSERT INTO reservations (` + reservationColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) error {
	_, err := db.Exec(ctx, createReservation,
		arg.ID,
		arg.UserID,
		arg.HotelID,
		arg.RoomID,
		arg.DateStart,
		arg.DateEnd,
		arg.CreatedAt,
	)
	return err
}

const deleteReservation = `DELETE FROM reservations WHERE id = $1`

func (q *Queries) DeleteReservation(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteReservation, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const findReservationByID = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

func (q *Queries) FindReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (Reservations, error) {
	return one[Reservations](ctx, db, findReservationByID, id)
}

const listReservationsByRoom = `
SELECT ` + reservationColumns + ` FROM reservations
WHERE room_id = $1
ORDER BY date_start`

func (q *Queries) ListReservationsByRoom(ctx context.Context, db DBTX, roomID uuid.UUID) ([]Reservations, error) {
	return many[Reservations](ctx, db, listReservationsByRoom, roomID)
}

const reservationDetailSelect = `
SELECT r.id, r.user_id, r.hotel_id, r.room_id, r.date_start, r.date_end, r.created_at,
       h.title AS hotel_title, h.description AS hotel_description,
       rm.description AS room_description, rm.images AS room_images
FROM reservations r
JOIN hotels h ON h.id = r.hotel_id
JOIN rooms rm ON rm.id = r.room_id`

const findReservationDetailByID = reservationDetailSelect + `
WHERE r.id = $1`

func (q *Queries) FindReservationDetailByID(ctx context.Context, db DBTX, id uuid.UUID) (ReservationDetailRow, error) {
	return one[ReservationDetailRow](ctx, db, findReservationDetailByID, id)
}

type ListReservationDetailsByUserParams struct {
	UserID uuid.UUID
	From   pgtype.Timestamptz
	To     pgtype.Timestamptz
}

// Both bounds are inclusive: a stay matches when it starts at or after From and ends at or before To.
const listReservationDetailsByUser = reservationDetailSelect + `
WHERE r.user_id = $1
  AND ($2::timestamptz IS NULL OR r.date_start >= $2)
  AND ($3::timestamptz IS NULL OR r.date_end <= $3)
ORDER BY r.date_start, r.id`

func (q *Queries) ListReservationDetailsByUser(ctx context.Context, db DBTX, arg ListReservationDetailsByUserParams) ([]ReservationDetailRow, error) {
	return many[ReservationDetailRow](ctx, db, listReservationDetailsByUser, arg.UserID, arg.From, arg.To)
}
