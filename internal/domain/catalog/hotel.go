package catalog

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrInvalidTitle       = errors.New("hotel title must be 1-200 characters")
	ErrDescriptionTooLong = errors.New("description must be at most 5000 characters")
	ErrTooManyImages      = errors.New("a room may carry at most 10 images")
	ErrInvalidImageURL    = errors.New("image reference must be non-empty")
	ErrMissingHotel       = errors.New("room must belong to a hotel")
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 5000
	maxImages         = 10
)

type Hotel struct {
	id          uuid.UUID
	title       string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewHotel(title, description string, now time.Time) (*Hotel, error) {
	h := &Hotel{id: uuid.New(), createdAt: now}
	if err := h.Update(title, description, now); err != nil {
		return nil, err
	}
	return h, nil
}

func ReconstructHotel(id uuid.UUID, title, description string, createdAt, updatedAt time.Time) *Hotel {
	return &Hotel{id: id, title: title, description: description, createdAt: createdAt, updatedAt: updatedAt}
}

func (h *Hotel) Update(title, description string, now time.Time) error {
	title = strings.TrimSpace(title)
	if title == "" || utf8.RuneCountInString(title) > maxTitleLen {
		return ErrInvalidTitle
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return ErrDescriptionTooLong
	}
	h.title = title
	h.description = description
	h.updatedAt = now
	return nil
}

func (h *Hotel) ID() uuid.UUID        { return h.id }
func (h *Hotel) Title() string        { return h.title }
func (h *Hotel) Description() string  { return h.description }
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }
func (h *Hotel) UpdatedAt() time.Time { return h.updatedAt }
