package pgquery

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const hotelColumns = `id, title, description, created_at, updated_at`

type UpsertHotelParams struct {
	ID          uuid.UUID
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const createHotel = `
INSERT INTO hotels (` + hotelColumns + `)
VALUES ($1, $2, $3, $4, $5)`

func (q *Queries) CreateHotel(ctx context.Context, db DBTX, arg UpsertHotelParams) error {
	_, err := db.Exec(ctx, createHotel, arg.ID, arg.Title, arg.Description, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const updateHotel = `
UPDATE hotels SET title = $2, description = $3, updated_at = $4
WHERE id = $1`

// UpdateHotel returns the number of rows touched so callers can detect a missing hotel.
func (q *Queries) UpdateHotel(ctx context.Context, db DBTX, arg UpsertHotelParams) (int64, error) {
	tag, err := db.Exec(ctx, updateHotel, arg.ID, arg.Title, arg.Description, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const findHotelByID = `SELECT ` + hotelColumns + ` FROM hotels WHERE id = $1`

func (q *Queries) FindHotelByID(ctx context.Context, db DBTX, id uuid.UUID) (Hotels, error) {
	return one[Hotels](ctx, db, findHotelByID, id)
}

type SearchHotelsParams struct {
	Title  pgtype.Text
	Limit  int32
	Offset int32
}

const searchHotels = `
SELECT ` + hotelColumns + ` FROM hotels
WHERE ($1::text IS NULL OR title ILIKE '%' || $1 || '%')
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3`

func (q *Queries) SearchHotels(ctx context.Context, db DBTX, arg SearchHotelsParams) ([]Hotels, error) {
	return many[Hotels](ctx, db, searchHotels, arg.Title, arg.Limit, arg.Offset)
}

const roomColumns = `id, hotel_id, description, images, is_enabled, created_at, updated_at`

type UpsertRoomParams struct {
	ID          uuid.UUID
	HotelID     uuid.UUID
	Description string
	Images      []string
	IsEnabled   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const createRoom = `
INSERT INTO rooms (` + roomColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (q *Queries) CreateRoom(ctx context.Context, db DBTX, arg UpsertRoomParams) error {
	_, err := db.Exec(ctx, createRoom,
		arg.ID,
		arg.HotelID,
		arg.Description,
		arg.Images,
		arg.IsEnabled,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateRoom = `
UPDATE rooms SET description = $2, images = $3, is_enabled = $4, updated_at = $5
WHERE id = $1`

func (q *Queries) UpdateRoom(ctx context.Context, db DBTX, arg UpsertRoomParams) (int64, error) {
	tag, err := db.Exec(ctx, updateRoom, arg.ID, arg.Description, arg.Images, arg.IsEnabled, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const findRoomByID = `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

func (q *Queries) FindRoomByID(ctx context.Context, db DBTX, id uuid.UUID) (Rooms, error) {
	return one[Rooms](ctx, db, findRoomByID, id)
}

const lockRoom = `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1 FOR UPDATE`

// LockRoom serialises bookings of one room for the rest of the transaction.
func (q *Queries) LockRoom(ctx context.Context, db DBTX, id uuid.UUID) (Rooms, error) {
	return one[Rooms](ctx, db, lockRoom, id)
}

type SearchRoomsParams struct {
	HotelID     pgtype.UUID
	OnlyEnabled bool
	Limit       int32
	Offset      int32
}

const searchRooms = `
SELECT ` + roomColumns + ` FROM rooms
WHERE ($1::uuid IS NULL OR hotel_id = $1)
  AND (NOT $2::boolean OR is_enabled)
ORDER BY created_at DESC, id
LIMIT $3 OFFSET $4`

func (q *Queries) SearchRooms(ctx context.Context, db DBTX, arg SearchRoomsParams) ([]Rooms, error) {
	return many[Rooms](ctx, db, searchRooms, arg.HotelID, arg.OnlyEnabled, arg.Limit, arg.Offset)
}
