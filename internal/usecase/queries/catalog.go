package queries

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog.go -package=queriesmock

import (
	"context"

	"github.com/google/uuid"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
)

var (
	ErrHotelNotFound = errs.New("queries: hotel not found")
	ErrRoomNotFound  = errs.New("queries: room not found")
)

type HotelSearchFilter struct {
	Title string
	Page  Page
}

type RoomSearchFilter struct {
	HotelID     *uuid.UUID
	OnlyEnabled bool
	Page        Page
}

type CatalogQueries interface {
	GetHotel(ctx context.Context, id uuid.UUID) (*HotelView, error)
	SearchHotels(ctx context.Context, filter HotelSearchFilter) ([]*HotelView, error)
	// GetRoom hides disabled rooms unless includeDisabled is set.
	GetRoom(ctx context.Context, id uuid.UUID, includeDisabled bool) (*RoomView, error)
	SearchRooms(ctx context.Context, filter RoomSearchFilter) ([]*RoomView, error)
}

type CatalogReadStore interface {
	FindHotelByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
	SearchHotels(ctx context.Context, filter HotelSearchFilter) ([]*HotelView, error)
	FindRoomByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	SearchRooms(ctx context.Context, filter RoomSearchFilter) ([]*RoomView, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore}
}

func (q *catalogQueriesImpl) GetHotel(ctx context.Context, id uuid.UUID) (*HotelView, error) {
	h, err := q.readStore.FindHotelByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrHotelNotFound)
		}
		return nil, err
	}
	return h, nil
}

func (q *catalogQueriesImpl) SearchHotels(ctx context.Context, filter HotelSearchFilter) ([]*HotelView, error) {
	filter.Page = NormalizePage(filter.Page.Limit, filter.Page.Offset)
	return q.readStore.SearchHotels(ctx, filter)
}

func (q *catalogQueriesImpl) GetRoom(ctx context.Context, id uuid.UUID, includeDisabled bool) (*RoomView, error) {
	r, err := q.readStore.FindRoomByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomNotFound)
		}
		return nil, err
	}
	if !r.IsEnabled && !includeDisabled {
		return nil, ErrRoomNotFound
	}
	return r, nil
}

func (q *catalogQueriesImpl) SearchRooms(ctx context.Context, filter RoomSearchFilter) ([]*RoomView, error) {
	filter.Page = NormalizePage(filter.Page.Limit, filter.Page.Offset)
	return q.readStore.SearchRooms(ctx, filter)
}
