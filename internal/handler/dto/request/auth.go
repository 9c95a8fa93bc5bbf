package request

import (
	"hotel-booking/internal/domain/auth"
)

type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8,max=72"`
	Name         string `json:"name" binding:"required,notblank,max=100"`
	ContactPhone string `json:"contactPhone" binding:"omitempty,max=32"`
}

func (r *RegisterRequest) ToDomain() (auth.Registration, error) {
	return auth.NewRegistration(r.Email, r.Password, r.Name, r.ContactPhone)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}
