//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/catalog"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID          uuid.UUID
	HotelID     uuid.UUID
	Description string
	Images      []string
	IsEnabled   bool
	UpdatedAt   time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:          uuid.New(),
		HotelID:     uuid.New(),
		Description: "Double room",
		Images:      []string{"https://img.example.com/1.jpg"},
		IsEnabled:   true,
		UpdatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *RoomBuilder) WithHotelID(id uuid.UUID) *RoomBuilder {
	r.HotelID = id
	return r
}

func (r *RoomBuilder) AsDisabled() *RoomBuilder {
	r.IsEnabled = false
	return r
}

func (r *RoomBuilder) BuildDomain() *catalog.Room {
	return catalog.ReconstructRoom(r.ID, r.HotelID, r.Description, r.Images, r.IsEnabled, r.UpdatedAt, r.UpdatedAt)
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:          r.ID,
		HotelID:     r.HotelID,
		Description: r.Description,
		Images:      r.Images,
		IsEnabled:   r.IsEnabled,
		CreatedAt:   r.UpdatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func NewHotelView(title string) *queries.HotelView {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &queries.HotelView{ID: uuid.New(), Title: title, Description: title + " description", CreatedAt: now, UpdatedAt: now}
}
