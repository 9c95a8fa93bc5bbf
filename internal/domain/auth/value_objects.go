package auth

import (
	"errors"

	"hotel-booking/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Credentials struct {
	email    user.Email
	password string
}

// NewCredentials only requires a non-empty password; strength is checked on registration.
func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}
	if passwordStr == "" {
		return Credentials{}, ErrInvalidCredentials
	}
	return Credentials{email: email, password: passwordStr}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}

// Registration is a validated self-service sign-up request.
type Registration struct {
	email    user.Email
	password user.Password
	name     user.Name
	phone    user.Phone
}

func NewRegistration(emailStr, passwordStr, nameStr, phoneStr string) (Registration, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Registration{}, err
	}
	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Registration{}, err
	}
	name, err := user.NewName(nameStr)
	if err != nil {
		return Registration{}, err
	}
	phone, err := user.NewPhone(phoneStr)
	if err != nil {
		return Registration{}, err
	}
	return Registration{email: email, password: password, name: name, phone: phone}, nil
}

func (r Registration) Email() user.Email       { return r.email }
func (r Registration) Password() user.Password { return r.password }
func (r Registration) Name() user.Name         { return r.name }
func (r Registration) Phone() user.Phone       { return r.phone }
