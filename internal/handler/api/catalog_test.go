//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/handler/api"
	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/validation"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/httptest"
	commandsmock "hotel-booking/tests/mock/commands"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	validation.Register()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	h := api.NewCatalogHandler(s.mockCommands, s.mockQueries)

	public := s.router.Group("/public")
	public.GET("/hotel-rooms", h.SearchRooms)
	public.GET("/hotel-rooms/:id", h.GetRoom)
	client := s.router.Group("/client", asPrincipal(uuid.New(), user.RoleClient))
	client.GET("/hotel-rooms", h.SearchRooms)
	client.GET("/hotel-rooms/:id", h.GetRoom)
	admin := s.router.Group("/admin", asPrincipal(uuid.New(), user.RoleAdmin))
	admin.POST("/hotels", h.CreateHotel)
	admin.PUT("/hotels/:id", h.UpdateHotel)
	admin.GET("/hotels", h.SearchHotels)
	admin.POST("/hotel-rooms", h.CreateRoom)
	admin.PUT("/hotel-rooms/:id", h.UpdateRoom)
	admin.GET("/hotel-rooms", h.SearchRooms)
	admin.GET("/hotel-rooms/:id", h.GetRoom)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *CatalogHandlerTestSuite) TestCreateHotel() {
	url := "/admin/hotels"

	s.Run("success: 201 with the stored hotel", func() {
		view := builder.NewHotelView("Seaside Inn")
		s.mockCommands.EXPECT().CreateHotel(gomock.Any(), commands.HotelInput{Title: "Seaside Inn", Description: "By the sea"}).
			Return(view.ID, nil)
		s.mockQueries.EXPECT().GetHotel(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.HotelRequest{Title: "Seaside Inn", Description: "By the sea"}, "")

		var response resdto.HotelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("Seaside Inn", response.Title)
	})

	s.Run("error: blank title is rejected before the usecase", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.HotelRequest{Title: "   "}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CatalogHandlerTestSuite) TestUpdateHotel() {
	s.Run("error: 404 for an unknown hotel", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().UpdateHotel(gomock.Any(), id, gomock.Any()).Return(commands.ErrHotelNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/hotels/"+id.String(),
			reqdto.HotelRequest{Title: "Renamed"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Hotel not found")
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/hotels/42",
			reqdto.HotelRequest{Title: "Renamed"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *CatalogHandlerTestSuite) TestSearchHotels() {
	s.mockQueries.EXPECT().SearchHotels(gomock.Any(), queries.HotelSearchFilter{
		Title: "sea",
		Page:  queries.Page{Limit: 5, Offset: 10},
	}).Return([]*queries.HotelView{builder.NewHotelView("Seaside Inn")}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/hotels?title=sea&limit=5&offset=10", nil, "")

	var response []resdto.HotelResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Len(response, 1)
}

func (s *CatalogHandlerTestSuite) TestCreateRoom() {
	b := builder.NewRoomBuilder()

	s.Run("success: disabled rooms are still returned to the admin", func() {
		b.AsDisabled()
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), commands.RoomInput{
			HotelID:     b.HotelID,
			Description: b.Description,
			Images:      b.Images,
		}).Return(b.ID, nil)
		s.mockQueries.EXPECT().GetRoom(gomock.Any(), b.ID, true).Return(b.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/hotel-rooms",
			reqdto.CreateRoomRequest{HotelID: b.HotelID, Description: b.Description, Images: b.Images}, "")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(b.HotelID, response.HotelID)
		s.False(response.IsEnabled)
	})

	s.Run("error: image must be a url", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/hotel-rooms",
			reqdto.CreateRoomRequest{HotelID: b.HotelID, Images: []string{"not a url"}}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: unknown hotel", func() {
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).Return(uuid.Nil, commands.ErrHotelNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/hotel-rooms",
			reqdto.CreateRoomRequest{HotelID: uuid.New()}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Hotel not found")
	})
}

func (s *CatalogHandlerTestSuite) TestUpdateRoom() {
	b := builder.NewRoomBuilder()
	enabled := false
	desc := "Renovated"

	s.mockCommands.EXPECT().UpdateRoom(gomock.Any(), b.ID, commands.RoomPatch{
		Description: &desc,
		IsEnabled:   &enabled,
	}).Return(nil)
	s.mockQueries.EXPECT().GetRoom(gomock.Any(), b.ID, true).Return(b.AsDisabled().BuildView(), nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/hotel-rooms/"+b.ID.String(),
		reqdto.UpdateRoomRequest{Description: &desc, IsEnabled: &enabled}, "")

	var response resdto.RoomResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(b.ID, response.ID)
}

func (s *CatalogHandlerTestSuite) TestGetRoom() {
	b := builder.NewRoomBuilder()

	cases := []struct {
		name            string
		prefix          string
		includeDisabled bool
	}{
		{name: "anonymous sees enabled rooms only", prefix: "/public", includeDisabled: false},
		{name: "client sees enabled rooms only", prefix: "/client", includeDisabled: false},
		{name: "admin sees disabled rooms too", prefix: "/admin", includeDisabled: true},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockQueries.EXPECT().GetRoom(gomock.Any(), b.ID, tc.includeDisabled).Return(b.BuildView(), nil)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.prefix+"/hotel-rooms/"+b.ID.String(), nil, "")

			var response resdto.RoomResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
			s.Equal(b.ID, response.ID)
		})
	}

	s.Run("error: 404 for a hidden room", func() {
		s.mockQueries.EXPECT().GetRoom(gomock.Any(), b.ID, false).Return(nil, queries.ErrRoomNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/client/hotel-rooms/"+b.ID.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/client/hotel-rooms/abc", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *CatalogHandlerTestSuite) TestSearchRooms() {
	hotelID := uuid.New()

	cases := []struct {
		name        string
		prefix      string
		onlyEnabled bool
	}{
		{name: "anonymous", prefix: "/public", onlyEnabled: true},
		{name: "client", prefix: "/client", onlyEnabled: true},
		{name: "admin", prefix: "/admin", onlyEnabled: false},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockQueries.EXPECT().SearchRooms(gomock.Any(), queries.RoomSearchFilter{
				HotelID:     &hotelID,
				OnlyEnabled: tc.onlyEnabled,
				Page:        queries.Page{Limit: queries.DefaultPageLimit},
			}).Return([]*queries.RoomView{builder.NewRoomBuilder().WithHotelID(hotelID).BuildView()}, nil)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.prefix+"/hotel-rooms?hotel="+hotelID.String(), nil, "")

			var response []resdto.RoomResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
			s.Require().Len(response, 1)
			s.Equal(hotelID, response[0].HotelID)
		})
	}

	s.Run("error: hotel must be a uuid", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/client/hotel-rooms?hotel=seaside", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
