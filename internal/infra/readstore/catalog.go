package readstore

import (
	"context"

	"github.com/google/uuid"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/pgquery"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"
)

type CatalogReadQueries interface {
	FindHotelByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Hotels, error)
	SearchHotels(ctx context.Context, db pgquery.DBTX, arg pgquery.SearchHotelsParams) ([]pgquery.Hotels, error)
	FindRoomByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Rooms, error)
	SearchRooms(ctx context.Context, db pgquery.DBTX, arg pgquery.SearchRoomsParams) ([]pgquery.Rooms, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      pgquery.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db pgquery.DBTX) *CatalogReadStore {
	return &CatalogReadStore{queries: queries, db: db}
}

func (r *CatalogReadStore) FindHotelByID(ctx context.Context, id uuid.UUID) (*queries.HotelView, error) {
	row, err := r.queries.FindHotelByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find hotel", err)
	}
	return toHotelView(row), nil
}

func (r *CatalogReadStore) SearchHotels(ctx context.Context, filter queries.HotelSearchFilter) ([]*queries.HotelView, error) {
	rows, err := r.queries.SearchHotels(ctx, r.db, pgquery.SearchHotelsParams{
		Title:  pgconv.StringPtrToPgtype(&filter.Title),
		Limit:  int32(filter.Page.Limit),  // #nosec G115 -- clamped
		Offset: int32(filter.Page.Offset), // #nosec G115
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search hotels", err)
	}
	out := make([]*queries.HotelView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toHotelView(row))
	}
	return out, nil
}

func (r *CatalogReadStore) FindRoomByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := r.queries.FindRoomByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return toRoomView(row), nil
}

func (r *CatalogReadStore) SearchRooms(ctx context.Context, filter queries.RoomSearchFilter) ([]*queries.RoomView, error) {
	rows, err := r.queries.SearchRooms(ctx, r.db, pgquery.SearchRoomsParams{
		HotelID:     pgconv.UUIDPtrToPgtype(filter.HotelID),
		OnlyEnabled: filter.OnlyEnabled,
		Limit:       int32(filter.Page.Limit),  // #nosec G115 -- clamped
		Offset:      int32(filter.Page.Offset), // #nosec G115
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search rooms", err)
	}
	out := make([]*queries.RoomView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toRoomView(row))
	}
	return out, nil
}

func toHotelView(row pgquery.Hotels) *queries.HotelView {
	return &queries.HotelView{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func toRoomView(row pgquery.Rooms) *queries.RoomView {
	images := row.Images
	if images == nil {
		images = []string{}
	}
	return &queries.RoomView{
		ID:          row.ID,
		HotelID:     row.HotelID,
		Description: row.Description,
		Images:      images,
		IsEnabled:   row.IsEnabled,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
