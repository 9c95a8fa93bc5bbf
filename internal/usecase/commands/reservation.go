package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidStay          = errs.New("invalid stay")
	ErrRoomNotFound         = errs.New("room not found")
	ErrRoomNotInHotel       = errs.New("room does not belong to hotel")
	ErrRoomUnavailable      = errs.New("room is not available for booking")
	ErrReservationConflict  = errs.New("room already booked for requested interval")
	ErrReservationNotFound  = errs.New("reservation not found")
	ErrReservationForbidden = errs.New("reservation belongs to another user")
)

type CreateReservationInput struct {
	HotelID   uuid.UUID
	RoomID    uuid.UUID
	DateStart time.Time
	DateEnd   time.Time
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, userID uuid.UUID, in CreateReservationInput) (*queries.ReservationView, error)
	DeleteReservation(ctx context.Context, reservationID, actorID uuid.UUID, actorRole user.Role) error
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, reservationQueries queries.ReservationQueries, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		clock:              clk,
	}
}

// CreateReservation books a room. The room row is locked for the transaction so concurrent
// bookings of the same room run the overlap scan one at a time; the exclusion constraint on
// the reservations table rejects anything that still slips through.
func (uc *reservationCommandsImpl) CreateReservation(ctx context.Context, userID uuid.UUID, in CreateReservationInput) (*queries.ReservationView, error) {
	stay, err := reservation.NewTimeSlot(in.DateStart, in.DateEnd)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStay)
	}

	var created *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, derr := tx.Rooms().LockForBooking(ctx, tx.DB(), in.RoomID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrRoomNotFound)
			}
			return derr
		}
		if room.HotelID() != in.HotelID {
			return ErrRoomNotInHotel
		}
		if !room.IsBookable() {
			return ErrRoomUnavailable
		}

		existing, derr := tx.Reservations().ListByRoom(ctx, tx.DB(), in.RoomID)
		if derr != nil {
			return derr
		}
		if clash := reservation.FindConflict(existing, stay); clash != nil {
			slog.Info("reservation overlap rejected",
				"room_id", in.RoomID,
				"existing_reservation_id", clash.ID())
			return errs.Mark(reservation.ErrOverlap, ErrReservationConflict)
		}

		res, derr := reservation.NewReservation(userID, in.HotelID, in.RoomID, stay, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if derr = tx.Reservations().Create(ctx, tx.DB(), res); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.Mark(derr, ErrReservationConflict)
			}
			return derr
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.reservationQueries.GetByID(ctx, created.ID())
}

func (uc *reservationCommandsImpl) DeleteReservation(ctx context.Context, reservationID, actorID uuid.UUID, actorRole user.Role) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, derr := tx.Reservations().FindByID(ctx, tx.DB(), reservationID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrReservationNotFound)
			}
			return derr
		}
		if derr = res.AuthorizeDeletion(actorID, actorRole); derr != nil {
			return errs.Mark(derr, ErrReservationForbidden)
		}
		if derr = tx.Reservations().Delete(ctx, tx.DB(), reservationID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrReservationNotFound)
			}
			return derr
		}
		return nil
	})
}
