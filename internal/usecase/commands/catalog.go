package commands

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/commands/catalog.go -package=commandsmock

import (
	"context"

	"hotel-booking/internal/domain/catalog"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/patch"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCatalogInput = errs.New("invalid catalog input")
	ErrHotelNotFound       = errs.New("hotel not found")
)

type HotelInput struct {
	Title       string
	Description string
}

type RoomInput struct {
	HotelID     uuid.UUID
	Description string
	Images      []string
}

// RoomPatch leaves nil fields unchanged.
type RoomPatch struct {
	Description *string
	Images      []string
	IsEnabled   *bool
}

type CatalogCommands interface {
	CreateHotel(ctx context.Context, in HotelInput) (uuid.UUID, error)
	UpdateHotel(ctx context.Context, id uuid.UUID, in HotelInput) error
	CreateRoom(ctx context.Context, in RoomInput) (uuid.UUID, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, p RoomPatch) error
}

type catalogCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCatalogCommands(uow shared.UnitOfWork, clk clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, clock: clk}
}

func (uc *catalogCommandsImpl) CreateHotel(ctx context.Context, in HotelInput) (uuid.UUID, error) {
	h, err := catalog.NewHotel(in.Title, in.Description, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidCatalogInput)
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Hotels().Create(ctx, tx.DB(), h)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return h.ID(), nil
}

func (uc *catalogCommandsImpl) UpdateHotel(ctx context.Context, id uuid.UUID, in HotelInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, derr := tx.Hotels().FindByID(ctx, tx.DB(), id)
		if derr != nil {
			return markNotFound(derr, ErrHotelNotFound)
		}
		if derr = h.Update(in.Title, in.Description, uc.clock.Now()); derr != nil {
			return errs.Mark(derr, ErrInvalidCatalogInput)
		}
		return markNotFound(tx.Hotels().Update(ctx, tx.DB(), h), ErrHotelNotFound)
	})
}

func (uc *catalogCommandsImpl) CreateRoom(ctx context.Context, in RoomInput) (uuid.UUID, error) {
	room, err := catalog.NewRoom(in.HotelID, in.Description, in.Images, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidCatalogInput)
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return markNotFound(tx.Rooms().Create(ctx, tx.DB(), room), ErrHotelNotFound)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return room.ID(), nil
}

func (uc *catalogCommandsImpl) UpdateRoom(ctx context.Context, id uuid.UUID, p RoomPatch) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, derr := tx.Rooms().FindByID(ctx, tx.DB(), id)
		if derr != nil {
			return markNotFound(derr, ErrRoomNotFound)
		}
		derr = room.Update(
			patch.Coalesce(p.Description, room.Description()),
			patch.CoalesceSlice(p.Images, room.Images()),
			patch.Coalesce(p.IsEnabled, room.IsEnabled()),
			uc.clock.Now(),
		)
		if derr != nil {
			return errs.Mark(derr, ErrInvalidCatalogInput)
		}
		return markNotFound(tx.Rooms().Update(ctx, tx.DB(), room), ErrRoomNotFound)
	})
}

func markNotFound(err, mark error) error {
	if err != nil && infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, mark)
	}
	return err
}
