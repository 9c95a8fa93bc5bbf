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

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	validation.Register()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	h := api.NewUserHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/admin/users", h.Create)
	s.router.GET("/admin/users", h.SearchAll)
	s.router.GET("/manager/users", h.SearchClients)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *UserHandlerTestSuite) TestCreate() {
	b := builder.NewUserBuilder().WithRole("manager")
	reqBody := reqdto.CreateUserRequest{RegisterRequest: b.BuildRegisterDTO(), Role: "manager"}

	s.Run("success: 201 with the created user", func() {
		s.mockCommands.EXPECT().CreateUser(gomock.Any(), gomock.Any(), user.RoleManager).Return(b.ID, nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), b.ID).Return(b.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/users", reqBody, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(b.ID, response.ID)
		s.Equal("manager", response.Role)
	})

	s.Run("error: duplicate email", func() {
		s.mockCommands.EXPECT().CreateUser(gomock.Any(), gomock.Any(), user.RoleManager).
			Return(uuid.Nil, commands.ErrDuplicateUser)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/users", reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})

	s.Run("error: unknown role", func() {
		bad := reqBody
		bad.Role = "owner"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/users", bad, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *UserHandlerTestSuite) TestSearch() {
	view := builder.NewUserBuilder().BuildView()

	s.Run("admin searches every role", func() {
		s.mockQueries.EXPECT().SearchUsers(gomock.Any(), queries.UserSearchFilter{
			Email: "guest",
			Page:  queries.Page{Limit: 20, Offset: 40},
		}).Return([]*queries.UserView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users?email=guest&limit=20&offset=40", nil, "")

		var response []resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("manager only sees clients", func() {
		s.mockQueries.EXPECT().SearchUsers(gomock.Any(), queries.UserSearchFilter{
			Name: "Test",
			Role: user.RoleClient.String(),
			Page: queries.Page{Limit: queries.DefaultPageLimit},
		}).Return([]*queries.UserView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/manager/users?name=Test", nil, "")

		var response []resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.Email, response[0].Email)
	})

	s.Run("error: negative offset", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users?offset=-1", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
