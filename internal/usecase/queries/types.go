package queries

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// UserView represents read-optimized user data
type UserView struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	ContactPhone *string   `json:"contact_phone,omitempty"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type HotelView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RoomView struct {
	ID          uuid.UUID `json:"id"`
	HotelID     uuid.UUID `json:"hotel_id"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	IsEnabled   bool      `json:"is_enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type HotelSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

type RoomSummary struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
}

// ReservationView is a reservation joined at read time with the hotel and room it references.
type ReservationView struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"user_id"`
	DateStart time.Time    `json:"date_start"`
	DateEnd   time.Time    `json:"date_end"`
	CreatedAt time.Time    `json:"created_at"`
	Hotel     HotelSummary `json:"hotel"`
	Room      RoomSummary  `json:"room"`
}

type ClientContact struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ContactPhone *string   `json:"contact_phone,omitempty"`
}

type ThreadSummaryView struct {
	ID             string         `json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	IsActive       bool           `json:"is_active"`
	HasNewMessages bool           `json:"has_new_messages"`
	Client         *ClientContact `json:"client,omitempty"`
}

type MessageAuthor struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type MessageView struct {
	Index  int           `json:"index"`
	Author MessageAuthor `json:"author"`
	Text   string        `json:"text"`
	SentAt time.Time     `json:"sent_at"`
	ReadAt *time.Time    `json:"read_at,omitempty"`
}

type Page struct {
	Limit  int
	Offset int
}

// NormalizePage applies the default limit and clamps out-of-range values.
func NormalizePage(limit, offset int) Page {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Page{Limit: limit, Offset: offset}
}
