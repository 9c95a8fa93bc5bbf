//go:build unit || e2e

package builder

import (
	"hotel-booking/internal/domain/auth"
	reqdto "hotel-booking/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "guest@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildCredentials() auth.Credentials {
	creds, err := auth.NewCredentials(a.Email, a.Password)
	if err != nil {
		panic(err)
	}
	return creds
}
