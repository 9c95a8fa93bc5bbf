//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/reservation"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	HotelID   uuid.UUID
	RoomID    uuid.UUID
	DateStart time.Time
	DateEnd   time.Time
	CreatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2030, 6, 1, 14, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		HotelID:   uuid.New(),
		RoomID:    uuid.New(),
		DateStart: start,
		DateEnd:   start.AddDate(0, 0, 3),
		CreatedAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildSlot() (reservation.TimeSlot, error) {
	return reservation.NewTimeSlot(r.DateStart, r.DateEnd)
}

// BuildDomain reconstructs a stored reservation; the stay must be valid.
func (r *ReservationBuilder) BuildDomain() *reservation.Reservation {
	slot, err := r.BuildSlot()
	if err != nil {
		panic(err)
	}
	return reservation.ReconstructReservation(r.ID, r.UserID, r.HotelID, r.RoomID, slot, r.CreatedAt)
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:        r.ID,
		UserID:    r.UserID,
		DateStart: r.DateStart,
		DateEnd:   r.DateEnd,
		CreatedAt: r.CreatedAt,
		Hotel:     queries.HotelSummary{ID: r.HotelID, Title: "Seaside Inn", Description: "By the sea"},
		Room:      queries.RoomSummary{ID: r.RoomID, Description: "Double room", Images: []string{"https://img.example.com/1.jpg"}},
	}
}

func (r *ReservationBuilder) BuildCreateDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		HotelID:   r.HotelID,
		RoomID:    r.RoomID,
		DateStart: r.DateStart,
		DateEnd:   r.DateEnd,
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	r.UserID = id
	return r
}

func (r *ReservationBuilder) WithRoom(hotelID, roomID uuid.UUID) *ReservationBuilder {
	r.HotelID = hotelID
	r.RoomID = roomID
	return r
}

func (r *ReservationBuilder) WithStay(start, end time.Time) *ReservationBuilder {
	r.DateStart = start
	r.DateEnd = end
	return r
}
