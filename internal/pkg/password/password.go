package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed = errors.New("password hashing failed")
	ErrMismatch      = errors.New("password mismatch")
	ErrEmptyPassword = errors.New("empty password")
)

// Hasher lets commands swap bcrypt for a cheap implementation in tests.
type Hasher interface {
	Hash(plain string) (string, error)
	Compare(hashed, plain string) error
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() Hasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", errors.Join(ErrHashingFailed, err)
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Compare(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrEmptyPassword
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
