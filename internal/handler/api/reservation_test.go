//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/handler/api"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/validation"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/common/testutil"
	commandsmock "hotel-booking/tests/mock/commands"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	clientID     uuid.UUID
	managerID    uuid.UUID
	now          time.Time
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	validation.Register()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.now = time.Date(2030, 5, 20, 15, 30, 0, 0, time.UTC)
	h := api.NewReservationHandler(s.mockCommands, s.mockQueries, clock.NewMockClock(s.now))

	s.clientID = uuid.New()
	s.managerID = uuid.New()
	client := s.router.Group("/client", asPrincipal(s.clientID, user.RoleClient))
	client.POST("/reservations", h.Create)
	client.GET("/reservations", h.ListOwn)
	client.DELETE("/reservations/:id", h.Delete)
	manager := s.router.Group("/manager", asPrincipal(s.managerID, user.RoleManager))
	manager.GET("/reservations/:userId", h.ListByUser)
	manager.DELETE("/reservations/:id", h.Delete)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/client/reservations"
	b := builder.NewReservationBuilder().WithUserID(s.clientID)
	reqBody := b.BuildCreateDTO()

	s.Run("success: 201 with hotel and room details", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), s.clientID, commands.CreateReservationInput{
			HotelID:   b.HotelID,
			RoomID:    b.RoomID,
			DateStart: b.DateStart,
			DateEnd:   b.DateEnd,
		}).Return(b.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(b.ID, response.ID)
		s.Equal(b.HotelID, response.HotelID)
		s.Equal("Seaside Inn", response.Hotel.Title)
		s.Equal(b.DateEnd, response.EndDate.UTC())
	})

	s.Run("error: 409 when the room is taken", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), s.clientID, gomock.Any()).
			Return(nil, commands.ErrReservationConflict)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already booked")
	})

	s.Run("error: usecase sentinels map to statuses", func() {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{name: "invalid stay", err: commands.ErrInvalidStay, code: http.StatusBadRequest},
			{name: "disabled room", err: commands.ErrRoomUnavailable, code: http.StatusBadRequest},
			{name: "unknown room", err: errs.Mark(errs.New("no rows"), commands.ErrRoomNotFound), code: http.StatusNotFound},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

				httptest.AssertErrorResponse(s.T(), rec, tc.code, "")
			})
		}
	})

	s.Run("error: 400 on missing fields", func() {
		for _, field := range []string{"hotelId", "roomId", "dateStart", "dateEnd"} {
			s.Run(field, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")

				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestListOwn() {
	url := "/client/reservations"

	s.Run("dateStart defaults to the start of today", func() {
		today := time.Date(2030, 5, 20, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.clientID, &today, (*time.Time)(nil)).
			Return([]*queries.ReservationView{builder.NewReservationBuilder().BuildView()}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("accepts plain dates", func() {
		from := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2030, 6, 30, 23, 59, 59, 999999000, time.UTC)
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.clientID, &from, &to).
			Return([]*queries.ReservationView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?dateStart=2030-06-01&dateEnd=2030-06-30", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?dateEnd=June", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date filter")
	})

	s.Run("error: 400 on inverted range", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.clientID, gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrInvalidDateFilter)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?dateStart=2030-07-01&dateEnd=2030-06-01", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date filter")
	})
}

func (s *ReservationHandlerTestSuite) TestListByUser() {
	guest := uuid.New()

	s.Run("manager sees past stays too", func() {
		past := builder.NewReservationBuilder().WithUserID(guest).
			WithStay(s.now.AddDate(0, -2, 0), s.now.AddDate(0, -2, 3)).BuildView()
		current := builder.NewReservationBuilder().WithUserID(guest).
			WithStay(s.now.Add(-24*time.Hour), s.now.Add(48*time.Hour)).BuildView()
		s.mockQueries.EXPECT().ListAllByUser(gomock.Any(), guest).
			Return([]*queries.ReservationView{past, current}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/manager/reservations/"+guest.String(), nil, "")

		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(guest, response[0].UserID)
		s.True(response[0].StartDate.Before(s.now))
	})

	s.Run("date params do not narrow the manager view", func() {
		s.mockQueries.EXPECT().ListAllByUser(gomock.Any(), guest).Return([]*queries.ReservationView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/manager/reservations/"+guest.String()+"?dateStart=2030-06-01", nil, "")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/manager/reservations/not-a-uuid", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid user id")
	})
}

func (s *ReservationHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("client deletes with their own identity", func() {
		s.mockCommands.EXPECT().DeleteReservation(gomock.Any(), id, s.clientID, user.RoleClient).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/client/reservations/"+id.String(), nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("manager deletes with the manager role", func() {
		s.mockCommands.EXPECT().DeleteReservation(gomock.Any(), id, s.managerID, user.RoleManager).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/manager/reservations/"+id.String(), nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 for someone else's booking", func() {
		s.mockCommands.EXPECT().DeleteReservation(gomock.Any(), id, s.clientID, user.RoleClient).
			Return(commands.ErrReservationForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/client/reservations/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another user")
	})

	s.Run("error: 404 for unknown booking", func() {
		s.mockCommands.EXPECT().DeleteReservation(gomock.Any(), id, gomock.Any(), gomock.Any()).
			Return(commands.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/client/reservations/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}
