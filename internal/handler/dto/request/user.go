package request

import (
	"hotel-booking/internal/domain/auth"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/usecase/queries"
)

type CreateUserRequest struct {
	RegisterRequest
	Role string `json:"role" binding:"required,role"`
}

func (r *CreateUserRequest) ToDomain() (auth.Registration, user.Role, error) {
	role, err := user.NewRole(r.Role)
	if err != nil {
		return auth.Registration{}, "", err
	}
	reg, err := r.RegisterRequest.ToDomain()
	if err != nil {
		return auth.Registration{}, "", err
	}
	return reg, role, nil
}

type SearchUsersQuery struct {
	Email        string `form:"email"`
	Name         string `form:"name"`
	ContactPhone string `form:"contactPhone"`
	Limit        int    `form:"limit" binding:"omitempty,min=0"`
	Offset       int    `form:"offset" binding:"omitempty,min=0"`
}

// ToFilter pins the role when the caller may only see one kind of user.
func (q *SearchUsersQuery) ToFilter(role string) queries.UserSearchFilter {
	return queries.UserSearchFilter{
		Email:        q.Email,
		Name:         q.Name,
		ContactPhone: q.ContactPhone,
		Role:         role,
		Page:         queries.NormalizePage(q.Limit, q.Offset),
	}
}
