package catalog

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type Room struct {
	id          uuid.UUID
	hotelID     uuid.UUID
	description string
	images      []string
	isEnabled   bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRoom(hotelID uuid.UUID, description string, images []string, now time.Time) (*Room, error) {
	if hotelID == uuid.Nil {
		return nil, ErrMissingHotel
	}
	r := &Room{id: uuid.New(), hotelID: hotelID, isEnabled: true, createdAt: now}
	if err := r.Update(description, images, true, now); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructRoom(id, hotelID uuid.UUID, description string, images []string, isEnabled bool, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:          id,
		hotelID:     hotelID,
		description: description,
		images:      images,
		isEnabled:   isEnabled,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Room) Update(description string, images []string, isEnabled bool, now time.Time) error {
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return ErrDescriptionTooLong
	}
	if len(images) > maxImages {
		return ErrTooManyImages
	}
	cleaned := make([]string, 0, len(images))
	for _, img := range images {
		img = strings.TrimSpace(img)
		if img == "" {
			return ErrInvalidImageURL
		}
		cleaned = append(cleaned, img)
	}
	r.description = description
	r.images = cleaned
	r.isEnabled = isEnabled
	r.updatedAt = now
	return nil
}

// IsBookable reports whether the room accepts new reservations.
func (r *Room) IsBookable() bool {
	return r.isEnabled
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) HotelID() uuid.UUID   { return r.hotelID }
func (r *Room) Description() string  { return r.description }
func (r *Room) Images() []string     { return r.images }
func (r *Room) IsEnabled() bool      { return r.isEnabled }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
