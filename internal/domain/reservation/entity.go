package reservation

import (
	"errors"
	"time"

	"hotel-booking/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot = errors.New("dateStart must be before dateEnd")
	ErrInvalidPeriod   = errors.New("filter dateStart must not be after dateEnd")
	ErrMissingRef      = errors.New("user, hotel and room references are required")
	ErrOverlap         = errors.New("room already booked for requested interval")
	ErrNotOwner        = errors.New("reservation belongs to another user")
)

// Reservation is immutable once created: there is no reschedule operation.
type Reservation struct {
	id        uuid.UUID
	userID    uuid.UUID
	hotelID   uuid.UUID
	roomID    uuid.UUID
	stay      TimeSlot
	createdAt time.Time
}

func NewReservation(userID, hotelID, roomID uuid.UUID, stay TimeSlot, now time.Time) (*Reservation, error) {
	if userID == uuid.Nil || hotelID == uuid.Nil || roomID == uuid.Nil {
		return nil, ErrMissingRef
	}
	if stay.IsZero() {
		return nil, ErrInvalidTimeSlot
	}
	return &Reservation{
		id:        uuid.New(),
		userID:    userID,
		hotelID:   hotelID,
		roomID:    roomID,
		stay:      stay,
		createdAt: now,
	}, nil
}

func ReconstructReservation(id, userID, hotelID, roomID uuid.UUID, stay TimeSlot, createdAt time.Time) *Reservation {
	return &Reservation{
		id:        id,
		userID:    userID,
		hotelID:   hotelID,
		roomID:    roomID,
		stay:      stay,
		createdAt: createdAt,
	}
}

// AuthorizeDeletion lets the owner delete their own booking; employees may delete any.
func (r *Reservation) AuthorizeDeletion(actorID uuid.UUID, actorRole user.Role) error {
	if actorRole.IsEmployee() {
		return nil
	}
	if r.userID != actorID {
		return ErrNotOwner
	}
	return nil
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) HotelID() uuid.UUID   { return r.hotelID }
func (r *Reservation) RoomID() uuid.UUID    { return r.roomID }
func (r *Reservation) Stay() TimeSlot       { return r.stay }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
