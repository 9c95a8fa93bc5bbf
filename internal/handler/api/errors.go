package api

import (
	"net/http"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/handler/validation"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// First match wins, so more specific sentinels come first.
var errorMappings = []errorMapping{
	{commands.ErrInvalidStay, http.StatusBadRequest, "Invalid reservation dates"},
	{commands.ErrRoomNotInHotel, http.StatusBadRequest, "Room does not belong to hotel"},
	{commands.ErrRoomUnavailable, http.StatusBadRequest, "Room is not available for booking"},
	{commands.ErrInvalidMessage, http.StatusBadRequest, "Invalid message"},
	{commands.ErrInvalidCatalogInput, http.StatusBadRequest, "Invalid catalog input"},
	{queries.ErrInvalidDateFilter, http.StatusBadRequest, "Invalid date filter"},
	{queries.ErrInvalidActiveFilter, http.StatusBadRequest, "isActive must be true or false"},

	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrUserInactive, http.StatusUnauthorized, "User is inactive"},
	{commands.ErrTokenValidation, http.StatusUnauthorized, "Invalid refresh token"},
	{commands.ErrUserNotFound, http.StatusUnauthorized, "User not found"},
	{queries.ErrUserInactive, http.StatusUnauthorized, "User is inactive"},

	{commands.ErrReservationForbidden, http.StatusForbidden, "Reservation belongs to another user"},
	{commands.ErrThreadForbidden, http.StatusForbidden, "Support request belongs to another client"},
	{queries.ErrThreadForbidden, http.StatusForbidden, "Support request belongs to another client"},

	{commands.ErrReservationConflict, http.StatusConflict, "Room already booked for requested dates"},
	{commands.ErrDuplicateUser, http.StatusConflict, "User with this email or phone already exists"},
	{commands.ErrReadMarkRetries, http.StatusConflict, "Support request changed concurrently, retry"},

	{commands.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{commands.ErrHotelNotFound, http.StatusNotFound, "Hotel not found"},
	{commands.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{commands.ErrThreadNotFound, http.StatusNotFound, "Support request not found"},
	{queries.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{queries.ErrHotelNotFound, http.StatusNotFound, "Hotel not found"},
	{queries.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{queries.ErrThreadNotFound, http.StatusNotFound, "Support request not found"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},
}

// abortWithUsecaseError maps usecase sentinels to HTTP statuses; anything unknown is a 500
// carrying fallback as the public message.
func abortWithUsecaseError(c *gin.Context, err error, fallback string) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
}

func abortWithBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", validation.Details(err))
}
