package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"

	"hotel-booking/internal/domain/catalog"
	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra/pgquery"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Rooms() RoomRepository
	Hotels() HotelRepository
	Users() UserRepository
	Reads() CommandReads
	DB() pgquery.DBTX
}

type CommandReads interface {
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

// UserSnapshot is the write-side view of an account, including the credential hash.
type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         user.Role
	IsActive     bool
}

type ReservationRepository interface {
	Create(ctx context.Context, tx pgquery.DBTX, res *reservation.Reservation) error
	FindByID(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	ListByRoom(ctx context.Context, tx pgquery.DBTX, roomID uuid.UUID) ([]*reservation.Reservation, error)
	Delete(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) error
}

type RoomRepository interface {
	Create(ctx context.Context, tx pgquery.DBTX, room *catalog.Room) error
	Update(ctx context.Context, tx pgquery.DBTX, room *catalog.Room) error
	FindByID(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) (*catalog.Room, error)
	// LockForBooking loads the room and holds a row lock until the transaction ends.
	LockForBooking(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) (*catalog.Room, error)
}

type HotelRepository interface {
	Create(ctx context.Context, tx pgquery.DBTX, hotel *catalog.Hotel) error
	Update(ctx context.Context, tx pgquery.DBTX, hotel *catalog.Hotel) error
	FindByID(ctx context.Context, tx pgquery.DBTX, id uuid.UUID) (*catalog.Hotel, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx pgquery.DBTX, u *user.User) error
}
