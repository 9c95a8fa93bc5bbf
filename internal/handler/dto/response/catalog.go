package response

import (
	"time"

	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type HotelResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type RoomResponse struct {
	ID          uuid.UUID `json:"id"`
	HotelID     uuid.UUID `json:"hotelId"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	IsEnabled   bool      `json:"isEnabled"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromHotelView(v *queries.HotelView) (*HotelResponse, error) {
	out := &HotelResponse{}
	if err := copier.Copy(out, v); err != nil {
		return nil, err
	}
	return out, nil
}

func FromHotelViews(vs []*queries.HotelView) ([]*HotelResponse, error) {
	out := make([]*HotelResponse, 0, len(vs))
	if err := copier.Copy(&out, vs); err != nil {
		return nil, err
	}
	return out, nil
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	out := &RoomResponse{}
	if err := copier.CopyWithOption(out, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if out.Images == nil {
		out.Images = []string{}
	}
	return out, nil
}

func FromRoomViews(vs []*queries.RoomView) ([]*RoomResponse, error) {
	out := make([]*RoomResponse, 0, len(vs))
	for _, v := range vs {
		r, err := FromRoomView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
