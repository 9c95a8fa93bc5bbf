package repository

import (
	"context"

	"hotel-booking/internal/domain/catalog"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/pgquery"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type HotelWriteQueries interface {
	CreateHotel(ctx context.Context, db pgquery.DBTX, arg pgquery.UpsertHotelParams) error
	UpdateHotel(ctx context.Context, db pgquery.DBTX, arg pgquery.UpsertHotelParams) (int64, error)
	FindHotelByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Hotels, error)
}

type HotelRepository struct {
	queries HotelWriteQueries
}

func NewHotelRepository(queries HotelWriteQueries) *HotelRepository {
	return &HotelRepository{queries: queries}
}

func (r *HotelRepository) Create(ctx context.Context, tx pgquery.DBTX, h *catalog.Hotel) error {
	if err := r.queries.CreateHotel(ctx, tx, hotelParams(h)); err != nil {
		return infra.WrapRepoErr("failed to create hotel", err)
	}
	return nil
}

func (r *HotelRepository) Update(ctx context.Context, tx pgquery.DBTX, h *catalog.Hotel) error {
	n, err := r.queries.UpdateHotel(ctx, tx, hotelParams(h))
	if err != nil {
		return infra.WrapRepoErr("failed to update hotel", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *HotelRepository) FindByID(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) (*catalog.Hotel, error) {
	row, err := r.queries.FindHotelByID(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find hotel", err)
	}
	return catalog.ReconstructHotel(row.ID, row.Title, row.Description, row.CreatedAt, row.UpdatedAt), nil
}

func hotelParams(h *catalog.Hotel) pgquery.UpsertHotelParams {
	return pgquery.UpsertHotelParams{
		ID:          h.ID(),
		Title:       h.Title(),
		Description: h.Description(),
		CreatedAt:   h.CreatedAt(),
		UpdatedAt:   h.UpdatedAt(),
	}
}

type RoomWriteQueries interface {
	CreateRoom(ctx context.Context, db pgquery.DBTX, arg pgquery.UpsertRoomParams) error
	UpdateRoom(ctx context.Context, db pgquery.DBTX, arg pgquery.UpsertRoomParams) (int64, error)
	FindRoomByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Rooms, error)
	LockRoom(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Rooms, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
}

func NewRoomRepository(queries RoomWriteQueries) *RoomRepository {
	return &RoomRepository{queries: queries}
}

func (r *RoomRepository) Create(ctx context.Context, tx pgquery.DBTX, room *catalog.Room) error {
	if err := r.queries.CreateRoom(ctx, tx, roomParams(room)); err != nil {
		if pgconv.PgErrorCode(err) == pgconv.CodeForeignKeyViolation {
			return infra.WrapRepoErr("hotel not found for room", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, tx pgquery.DBTX, room *catalog.Room) error {
	n, err := r.queries.UpdateRoom(ctx, tx, roomParams(room))
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) (*catalog.Room, error) {
	row, err := r.queries.FindRoomByID(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return roomFromRow(row), nil
}

func (r *RoomRepository) LockForBooking(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) (*catalog.Room, error) {
	row, err := r.queries.LockRoom(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}
	return roomFromRow(row), nil
}

func roomParams(room *catalog.Room) pgquery.UpsertRoomParams {
	images := room.Images()
	if images == nil {
		images = []string{}
	}
	return pgquery.UpsertRoomParams{
		ID:          room.ID(),
		HotelID:     room.HotelID(),
		Description: room.Description(),
		Images:      images,
		IsEnabled:   room.IsEnabled(),
		CreatedAt:   room.CreatedAt(),
		UpdatedAt:   room.UpdatedAt(),
	}
}

func roomFromRow(row pgquery.Rooms) *catalog.Room {
	return catalog.ReconstructRoom(row.ID, row.HotelID, row.Description, row.Images, row.IsEnabled, row.CreatedAt, row.UpdatedAt)
}
