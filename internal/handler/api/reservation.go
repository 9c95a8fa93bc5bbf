package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds  commands.ReservationCommands
	q     queries.ReservationQueries
	clock clock.Clock
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, clk clock.Clock) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Create reservation
// @Description Book a room for [dateStart, dateEnd). Stays that touch at a boundary do not conflict.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /client/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Authentication required", nil)
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.cmds.CreateReservation(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		abortWithUsecaseError(c, err, "Create reservation failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary List own reservations
// @Description Stays starting at or after dateStart (default today) and ending at or before dateEnd
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param dateStart query string false "Lower bound (RFC 3339 or YYYY-MM-DD)"
// @Param dateEnd query string false "Upper bound (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /client/reservations [get]
func (h *ReservationHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Authentication required", nil)
		return
	}
	h.list(c, userID)
}

// @Summary List a user's reservations
// @Description Every stay of the user, past ones included
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /manager/reservations/{userId} [get]
func (h *ReservationHandler) ListByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return
	}

	views, err := h.q.ListAllByUser(c.Request.Context(), userID)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list reservations")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

func (h *ReservationHandler) list(c *gin.Context, userID uuid.UUID) {
	var query reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}
	from, to, err := query.Bounds(h.clock.Now())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date filter", nil)
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID, from, to)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list reservations")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Delete reservation
// @Description Clients may delete only their own reservations; managers may delete any
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /client/reservations/{id} [delete]
// @Router /manager/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Authentication required", nil)
		return
	}

	if err := h.cmds.DeleteReservation(c.Request.Context(), id, p.UserID, p.Role); err != nil {
		abortWithUsecaseError(c, err, "Delete reservation failed")
		return
	}
	c.Status(http.StatusNoContent)
}
