package request

import (
	"time"

	"hotel-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	HotelID   uuid.UUID `json:"hotelId" binding:"required"`
	RoomID    uuid.UUID `json:"roomId" binding:"required"`
	DateStart time.Time `json:"dateStart" binding:"required"`
	DateEnd   time.Time `json:"dateEnd" binding:"required"`
}

func (r *CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		HotelID:   r.HotelID,
		RoomID:    r.RoomID,
		DateStart: r.DateStart,
		DateEnd:   r.DateEnd,
	}
}

// ListReservationsQuery accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
type ListReservationsQuery struct {
	DateStart string `form:"dateStart"`
	DateEnd   string `form:"dateEnd"`
}

const dateOnly = "2006-01-02"

// Bounds parses both filters. A missing dateStart defaults to the start of today (UTC).
// A plain dateEnd covers the whole day, so stays checking out on that date are kept.
func (q *ListReservationsQuery) Bounds(now time.Time) (from, to *time.Time, err error) {
	if q.DateStart == "" {
		y, m, d := now.UTC().Date()
		start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		from = &start
	} else if from, _, err = parseTimeParam(q.DateStart); err != nil {
		return nil, nil, err
	}
	if q.DateEnd != "" {
		var wholeDay bool
		if to, wholeDay, err = parseTimeParam(q.DateEnd); err != nil {
			return nil, nil, err
		}
		if wholeDay {
			end := to.AddDate(0, 0, 1).Add(-time.Microsecond)
			to = &end
		}
	}
	return from, to, nil
}

func parseTimeParam(s string) (t *time.Time, dateOnlyForm bool, err error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return &ts, false, nil
	}
	ts, err := time.Parse(dateOnly, s)
	if err != nil {
		return nil, false, err
	}
	return &ts, true, nil
}
