package user

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
	ErrInvalidName     = errors.New("name must be 1-100 characters")
	ErrInvalidPhone    = errors.New("invalid contact phone")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9\- ]{5,18}[0-9]$`)
)

type Email struct {
	value string
}

// NewEmail lower-cases the address so uniqueness is case-insensitive.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > 100 {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

// Phone is optional; the zero value means "not provided".
type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Phone{}, nil
	}
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string {
	return p.value
}

func (p Phone) IsZero() bool {
	return p.value == ""
}
