package pgquery

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID           uuid.UUID   `db:"id"`
	Email        string      `db:"email"`
	PasswordHash string      `db:"password_hash"`
	Name         string      `db:"name"`
	ContactPhone pgtype.Text `db:"contact_phone"`
	Role         string      `db:"role"`
	IsActive     bool        `db:"is_active"`
	CreatedAt    time.Time   `db:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at"`
}

type Hotels struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Rooms struct {
	ID          uuid.UUID `db:"id"`
	HotelID     uuid.UUID `db:"hotel_id"`
	Description string    `db:"description"`
	Images      []string  `db:"images"`
	IsEnabled   bool      `db:"is_enabled"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Reservations struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	HotelID   uuid.UUID `db:"hotel_id"`
	RoomID    uuid.UUID `db:"room_id"`
	DateStart time.Time `db:"date_start"`
	DateEnd   time.Time `db:"date_end"`
	CreatedAt time.Time `db:"created_at"`
}

// ReservationDetailRow is a reservation joined with the hotel and room it references.
type ReservationDetailRow struct {
	ID               uuid.UUID `db:"id"`
	UserID           uuid.UUID `db:"user_id"`
	HotelID          uuid.UUID `db:"hotel_id"`
	RoomID           uuid.UUID `db:"room_id"`
	DateStart        time.Time `db:"date_start"`
	DateEnd          time.Time `db:"date_end"`
	CreatedAt        time.Time `db:"created_at"`
	HotelTitle       string    `db:"hotel_title"`
	HotelDescription string    `db:"hotel_description"`
	RoomDescription  string    `db:"room_description"`
	RoomImages       []string  `db:"room_images"`
}
