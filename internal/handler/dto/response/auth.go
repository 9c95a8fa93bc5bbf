package response

import (
	"time"

	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	ContactPhone *string   `json:"contactPhone,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:           v.ID,
		Email:        v.Email,
		Name:         v.Name,
		ContactPhone: v.ContactPhone,
		Role:         v.Role,
		CreatedAt:    v.CreatedAt,
	}
}

func FromUserViews(vs []*queries.UserView) []*UserResponse {
	out := make([]*UserResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromUserView(v))
	}
	return out
}
