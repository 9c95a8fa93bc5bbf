package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	name         Name
	contactPhone Phone
	role         Role
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, name Name, phone Phone, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		contactPhone: phone,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Name() Name           { return u.name }
func (u *User) ContactPhone() Phone  { return u.contactPhone }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
