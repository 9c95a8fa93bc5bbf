package request

import (
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelRequest struct {
	Title       string `json:"title" binding:"required,notblank,max=200"`
	Description string `json:"description" binding:"max=5000"`
}

func (r *HotelRequest) ToInput() commands.HotelInput {
	return commands.HotelInput{Title: r.Title, Description: r.Description}
}

type CreateRoomRequest struct {
	HotelID     uuid.UUID `json:"hotelId" binding:"required"`
	Description string    `json:"description" binding:"max=5000"`
	Images      []string  `json:"images" binding:"omitempty,dive,url"`
}

func (r *CreateRoomRequest) ToInput() commands.RoomInput {
	return commands.RoomInput{HotelID: r.HotelID, Description: r.Description, Images: r.Images}
}

type UpdateRoomRequest struct {
	Description *string  `json:"description" binding:"omitempty,max=5000"`
	Images      []string `json:"images" binding:"omitempty,dive,url"`
	IsEnabled   *bool    `json:"isEnabled"`
}

func (r *UpdateRoomRequest) ToPatch() commands.RoomPatch {
	return commands.RoomPatch{Description: r.Description, Images: r.Images, IsEnabled: r.IsEnabled}
}

type SearchHotelsQuery struct {
	Title  string `form:"title"`
	Limit  int    `form:"limit" binding:"omitempty,min=0"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
}

func (q *SearchHotelsQuery) ToFilter() queries.HotelSearchFilter {
	return queries.HotelSearchFilter{Title: q.Title, Page: queries.NormalizePage(q.Limit, q.Offset)}
}

type SearchRoomsQuery struct {
	HotelID string `form:"hotel" binding:"omitempty,uuid"`
	Limit   int    `form:"limit" binding:"omitempty,min=0"`
	Offset  int    `form:"offset" binding:"omitempty,min=0"`
}

// ToFilter hides disabled rooms from everyone but admins.
func (q *SearchRoomsQuery) ToFilter(isAdmin bool) queries.RoomSearchFilter {
	f := queries.RoomSearchFilter{
		OnlyEnabled: !isAdmin,
		Page:        queries.NormalizePage(q.Limit, q.Offset),
	}
	if id, err := uuid.Parse(q.HotelID); err == nil {
		f.HotelID = &id
	}
	return f
}
