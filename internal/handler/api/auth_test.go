//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"hotel-booking/internal/domain/access"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/handler/api"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/handler/validation"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/cookie"
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

type fixedTTL struct{}

func (fixedTTL) AccessDuration() time.Duration  { return time.Hour }
func (fixedTTL) RefreshDuration() time.Duration { return 24 * time.Hour }

// asPrincipal stands in for the auth middleware.
func asPrincipal(id uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetPrincipal(c, &access.Principal{UserID: id, Role: role})
		c.Next()
	}
}

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	currentUser  *builder.UserBuilder
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	validation.Register()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, config.NewTestConfig(), fixedTTL{})
	s.currentUser = builder.NewUserBuilder()

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", asPrincipal(s.currentUser.ID, user.RoleClient), s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	auth := builder.NewAuthBuilder()
	reqBody := auth.BuildDTO()
	returnUser := builder.NewUserBuilder().BuildView()
	loginResult := &commands.LoginResult{
		UserID:    returnUser.ID,
		Role:      user.RoleClient,
		TokenPair: &commands.TokenPair{AccessToken: "test-access-token", RefreshToken: "test-refresh-token"},
	}

	s.Run("success: sets session cookies and returns the user", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), auth.BuildCredentials()).Return(loginResult, nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), returnUser.ID).Return(returnUser, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response.Email)
		s.Equal(returnUser.Name, response.Name)

		accessCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(accessCookie)
		s.Equal("test-access-token", accessCookie.Value)
		s.True(accessCookie.HttpOnly)
		refresh := httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName)
		s.Require().NotNil(refresh)
		s.Equal("test-refresh-token", refresh.Value)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "invalid email", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "empty email", mutate: testutil.Field("email", ""), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 for bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, commands.ErrInvalidCredentials)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
		s.Nil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
	})

	s.Run("error: 401 for inactive user", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, commands.ErrUserInactive)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "inactive")
	})

	s.Run("error: 500 hides internal failures", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Authentication failed")
		s.NotContains(rec.Body.String(), "connection reset")
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	b := builder.NewUserBuilder()
	reqBody := b.BuildRegisterDTO()

	s.Run("success: 201 with the created client", func() {
		reg, err := b.BuildRegistration()
		s.Require().NoError(err)
		s.mockCommands.EXPECT().Register(gomock.Any(), reg).Return(b.ID, nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), b.ID).Return(b.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(b.ID, response.ID)
		s.Equal("client", response.Role)
	})

	s.Run("error: 409 on duplicate email", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(uuid.Nil, commands.ErrDuplicateUser)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []testCaseAuth{
			{name: "password of 7 characters", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
			{name: "blank name", mutate: testutil.Field("name", "   "), expectCode: http.StatusBadRequest},
			{name: "missing name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "malformed phone", mutate: testutil.Field("contactPhone", "call me"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"

	s.Run("error: 401 without refresh cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("success: rotates the session", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "old-refresh").
			Return(&commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)
		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "old-refresh"}}

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil, cookies, "")

		s.Equal(http.StatusNoContent, rec.Code)
		refreshed := httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName)
		s.Require().NotNil(refreshed)
		s.Equal("new-refresh", refreshed.Value)
	})

	s.Run("error: clears the session on invalid token", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "bad").Return(nil, commands.ErrTokenValidation)
		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "bad"}}

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil, cookies, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
		cleared := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(cleared)
		s.Empty(cleared.Value)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

	s.Equal(http.StatusNoContent, rec.Code)
	cleared := httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName)
	s.Require().NotNil(cleared)
	s.True(cleared.MaxAge < 0)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns the current user", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.currentUser.ID).Return(s.currentUser.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.currentUser.Email, response.Email)
	})

	s.Run("error: 404 when the user vanished", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.currentUser.ID).Return(nil, queries.ErrUserNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
