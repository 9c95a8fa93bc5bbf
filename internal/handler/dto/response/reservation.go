package response

import (
	"time"

	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationHotel struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ReservationRoom struct {
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

type ReservationResponse struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"userId"`
	HotelID   uuid.UUID        `json:"hotelId"`
	RoomID    uuid.UUID        `json:"roomId"`
	StartDate time.Time        `json:"startDate"`
	EndDate   time.Time        `json:"endDate"`
	Hotel     ReservationHotel `json:"hotel"`
	HotelRoom ReservationRoom  `json:"hotelRoom"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	images := v.Room.Images
	if images == nil {
		images = []string{}
	}
	return &ReservationResponse{
		ID:        v.ID,
		UserID:    v.UserID,
		HotelID:   v.Hotel.ID,
		RoomID:    v.Room.ID,
		StartDate: v.DateStart,
		EndDate:   v.DateEnd,
		Hotel:     ReservationHotel{Title: v.Hotel.Title, Description: v.Hotel.Description},
		HotelRoom: ReservationRoom{Description: v.Room.Description, Images: images},
	}
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromReservationView(v))
	}
	return out
}
