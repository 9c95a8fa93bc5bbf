package request

import (
	"time"

	"hotel-booking/internal/usecase/queries"
)

type OpenThreadRequest struct {
	Text string `json:"text" binding:"required,notblank,max=5000"`
}

type SendMessageRequest struct {
	Text string `json:"text" binding:"required,notblank,max=5000"`
}

type MarkReadRequest struct {
	CreatedBefore time.Time `json:"createdBefore" binding:"required"`
}

type ListThreadsQuery struct {
	Limit    int    `form:"limit" binding:"omitempty,min=0"`
	Offset   int    `form:"offset" binding:"omitempty,min=0"`
	IsActive string `form:"isActive"`
}

func (q *ListThreadsQuery) Parse() (queries.Page, *bool, error) {
	active, err := queries.ParseActiveFilter(q.IsActive)
	if err != nil {
		return queries.Page{}, nil, err
	}
	return queries.NormalizePage(q.Limit, q.Offset), active, nil
}
