//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"hotel-booking/internal/domain/access"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/cookie"
	"hotel-booking/tests/common/httptest"
	usecasemock "hotel-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
	mw            *middleware.AuthMiddleware
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.mw = middleware.NewAuthMiddleware(s.mockValidator)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AuthMiddlewareTestSuite) newRouter(gate gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/guarded", s.mw.Authenticate(), gate, func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "role": string(role)})
	})
	return r
}

func (s *AuthMiddlewareTestSuite) TestAuthenticate() {
	r := gin.New()
	r.GET("/guarded", s.mw.Authenticate(), func(c *gin.Context) {
		_, ok := middleware.GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})

	s.Run("anonymous request continues", func() {
		rec := httptest.PerformRequest(s.T(), r, http.MethodGet, "/guarded", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"authenticated":false}`, rec.Body.String())
	})

	s.Run("invalid token continues anonymously", func() {
		s.mockValidator.EXPECT().ValidateToken("garbage").Return(nil, errors.New("malformed"))

		rec := httptest.PerformRequest(s.T(), r, http.MethodGet, "/guarded", nil, "garbage")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"authenticated":false}`, rec.Body.String())
	})

	s.Run("cookie token wins over header", func() {
		id := uuid.New()
		s.mockValidator.EXPECT().ValidateToken("from-cookie").
			Return(&access.Principal{UserID: id, Role: user.RoleClient}, nil)

		rec := httptest.PerformRequestWithCookies(s.T(), r, http.MethodGet, "/guarded", nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "from-cookie"}}, "from-header")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"authenticated":true}`, rec.Body.String())
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireOperation() {
	r := s.newRouter(s.mw.RequireOperation(access.OpSupportClose))

	s.Run("401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), r, http.MethodGet, "/guarded", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("403 for a role outside the policy", func() {
		s.mockValidator.EXPECT().ValidateToken("client-token").
			Return(&access.Principal{UserID: uuid.New(), Role: user.RoleClient}, nil)

		rec := httptest.PerformRequest(s.T(), r, http.MethodGet, "/guarded", nil, "client-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("manager passes and the principal reaches the handler", func() {
		id := uuid.New()
		s.mockValidator.EXPECT().ValidateToken("manager-token").
			Return(&access.Principal{UserID: id, Role: user.RoleManager}, nil)

		rec := httptest.PerformRequest(s.T(), r, http.MethodGet, "/guarded", nil, "manager-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"id":"`+id.String()+`","role":"manager"}`, rec.Body.String())
	})

	s.Run("token is validated once per request", func() {
		s.mockValidator.EXPECT().ValidateToken("manager-token").
			Return(&access.Principal{UserID: uuid.New(), Role: user.RoleManager}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), r, http.MethodGet, "/guarded", nil, "manager-token")

		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *AuthMiddlewareTestSuite) TestAdminOnly() {
	r := s.newRouter(s.mw.AdminOnly())

	cases := []struct {
		name string
		role user.Role
		code int
	}{
		{name: "admin", role: user.RoleAdmin, code: http.StatusOK},
		{name: "manager", role: user.RoleManager, code: http.StatusForbidden},
		{name: "client", role: user.RoleClient, code: http.StatusForbidden},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockValidator.EXPECT().ValidateToken("token").
				Return(&access.Principal{UserID: uuid.New(), Role: tc.role}, nil)

			rec := httptest.PerformRequest(s.T(), r, http.MethodGet, "/guarded", nil, "token")

			s.Equal(tc.code, rec.Code)
		})
	}
}
