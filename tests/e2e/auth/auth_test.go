//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/handler/dto/response"
	"hotel-booking/tests/common/authtest"
	"hotel-booking/tests/common/dbtest"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "guest@example.com", string(user.RoleClient))
	dbtest.CreateTestUser(s.T(), s.DB, "manager@example.com", string(user.RoleManager))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleClient))
	dbtest.DeactivateUser(s.T(), s.DB, "inactive@example.com")
}

func (s *authSuite) TestRegister() {
	s.Run("new client can register and log in", func() {
		body := request.RegisterRequest{
			Email:        "new@example.com",
			Password:     "password123",
			Name:         "New Guest",
			ContactPhone: "+81 80-0000-0000",
		}

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, body, "")

		var created response.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		s.Equal("client", created.Role)
		s.NotEmpty(authtest.LoginUser(s.T(), s.Router, "new@example.com", "password123"))
	})

	s.Run("duplicate email is a conflict", func() {
		body := request.RegisterRequest{Email: "guest@example.com", Password: "password123", Name: "Again"}

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already exists")
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "guest@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "guest@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive user", email: "inactive@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusUnauthorized},
		{name: "empty email", email: "", password: dbtest.TestPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "guest@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var me response.UserResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &me))
				require.Equal(t, tt.email, me.Email)
				require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
				require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("valid refresh cookie rotates the session", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "guest@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(s.T(), http.StatusOK, w.Code)
		refresh := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(s.T(), refresh)

		w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, refreshURL, nil, []*http.Cookie{refresh}, "")

		s.Equal(http.StatusNoContent, w.Code)
		s.NotNil(httptest.ExtractCookie(w, "access_token"))
	})

	s.Run("malformed refresh cookie is rejected", func() {
		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, refreshURL, nil,
			[]*http.Cookie{{Name: "refresh_token", Value: "invalid-refresh-token"}}, "")

		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("access token cannot be used to refresh", func() {
		id := dbtest.CreateTestUser(s.T(), s.DB, "other@example.com", string(user.RoleClient))
		token := s.jwt.GenerateToken(s.T(), id, user.RoleClient)

		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, refreshURL, nil,
			[]*http.Cookie{{Name: "refresh_token", Value: token}}, "")

		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("returns the current user", func() {
		token := authtest.LoginUser(s.T(), s.Router, "manager@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		var me response.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
		s.Equal("manager", me.Role)
	})

	s.Run("anonymous request is unauthenticated", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("expired token is unauthenticated", func() {
		id := dbtest.CreateTestUser(s.T(), s.DB, "expired@example.com", string(user.RoleClient))
		token := s.jwt.CreateExpiredToken(s.T(), id, user.RoleClient)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears both cookies", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")

		s.Equal(http.StatusNoContent, w.Code)
		access := httptest.ExtractCookie(w, "access_token")
		require.NotNil(s.T(), access)
		s.Less(access.MaxAge, 0)
	})
}
