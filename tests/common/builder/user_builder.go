//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/auth"
	"hotel-booking/internal/domain/user"
	reqdto "hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	Password     string
	PasswordHash string
	Name         string
	ContactPhone string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "guest@example.com",
		Password:     "password123",
		PasswordHash: "hashed_password",
		Name:         "Test Guest",
		ContactPhone: "+81 90-1234-5678",
		Role:         "client",
		IsActive:     true,
		CreatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	name, err := user.NewName(u.Name)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhone(u.ContactPhone)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, name, phone, role, u.CreatedAt), nil
}

func (u *UserBuilder) BuildRegistration() (auth.Registration, error) {
	return auth.NewRegistration(u.Email, u.Password, u.Name, u.ContactPhone)
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Role:         user.Role(u.Role),
		IsActive:     u.IsActive,
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	var phone *string
	if u.ContactPhone != "" {
		p := u.ContactPhone
		phone = &p
	}
	return &queries.UserView{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		ContactPhone: phone,
		Role:         u.Role,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
	}
}

func (u *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:        u.Email,
		Password:     u.Password,
		Name:         u.Name,
		ContactPhone: u.ContactPhone,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.ContactPhone = phone
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
