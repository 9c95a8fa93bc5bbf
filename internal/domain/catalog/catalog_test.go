//go:build unit

package catalog_test

import (
	"strings"
	"testing"
	"time"

	"hotel-booking/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

func TestNewHotel(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		err         error
	}{
		{name: "valid", title: " Seaside Inn ", description: "By the sea"},
		{name: "blank title", title: "  ", err: catalog.ErrInvalidTitle},
		{name: "title too long", title: strings.Repeat("t", 201), err: catalog.ErrInvalidTitle},
		{name: "description too long", title: "Inn", description: strings.Repeat("d", 5001), err: catalog.ErrDescriptionTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := catalog.NewHotel(tt.title, tt.description, now)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.title), h.Title())
			assert.Equal(t, now, h.CreatedAt())
		})
	}
}

func TestRoom(t *testing.T) {
	hotelID := uuid.New()

	t.Run("new rooms are bookable", func(t *testing.T) {
		r, err := catalog.NewRoom(hotelID, "Twin", []string{" https://img/1.jpg "}, now)
		require.NoError(t, err)
		assert.True(t, r.IsBookable())
		assert.Equal(t, []string{"https://img/1.jpg"}, r.Images())
	})

	t.Run("requires a hotel", func(t *testing.T) {
		_, err := catalog.NewRoom(uuid.Nil, "Twin", nil, now)
		require.ErrorIs(t, err, catalog.ErrMissingHotel)
	})

	t.Run("disabling stops bookings", func(t *testing.T) {
		r, err := catalog.NewRoom(hotelID, "Twin", nil, now)
		require.NoError(t, err)
		require.NoError(t, r.Update(r.Description(), r.Images(), false, now.Add(time.Hour)))
		assert.False(t, r.IsBookable())
		assert.Equal(t, now.Add(time.Hour), r.UpdatedAt())
	})

	t.Run("image rules", func(t *testing.T) {
		_, err := catalog.NewRoom(hotelID, "Twin", []string{""}, now)
		assert.ErrorIs(t, err, catalog.ErrInvalidImageURL)

		many := make([]string, 11)
		for i := range many {
			many[i] = "https://img/x.jpg"
		}
		_, err = catalog.NewRoom(hotelID, "Twin", many, now)
		assert.ErrorIs(t, err, catalog.ErrTooManyImages)
	})
}
