//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"event-coupon-admin/internal/handler/dto/request"
	"event-coupon-admin/tests/common/httptest"
	"event-coupon-admin/tests/e2e"
	sessionHelper "event-coupon-admin/tests/e2e/common/helper"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL    = "/api/auth/login"
	registerURL = "/api/auth/register"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	session *sessionHelper.SessionHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.session = sessionHelper.NewSessionHelper(s.DB)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.session.CreateTestAdmin(s.T(), "Grace Hopper", "grace@example.com")
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "valid credentials",
			email:          "grace@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
			description:    "login should succeed with valid credentials",
		},
		{
			name:           "unknown email",
			email:          "nobody@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			description:    "unknown accounts must not log in",
		},
		{
			name:           "wrong password",
			email:          "grace@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "wrong passwords must be rejected",
		},
		{
			name:           "empty email",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
			description:    "an empty email must fail validation",
		},
		{
			name:           "short password",
			email:          "grace@example.com",
			password:       "short",
			expectedStatus: http.StatusBadRequest,
			description:    "passwords under 8 characters must fail validation",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				cookie := httptest.ExtractCookie(w, "admin_session")
				require.NotNil(t, cookie, "session cookie missing")
				require.NotEmpty(t, cookie.Value, "session cookie empty")
				require.True(t, cookie.HttpOnly, "session cookie must be HttpOnly")

				responseBody := w.Body.String()
				require.Contains(t, responseBody, "access_token")
				require.Contains(t, responseBody, tt.email)
				require.NotContains(t, responseBody, "password")

				var lastLogin any
				err := s.DB.QueryRow(t.Context(),
					"SELECT last_login_at FROM admins WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login_at was not updated")
			}
		})
	}
}

func (s *authSuite) TestRegisterAdmin() {
	secret := s.Config.Admin.RegistrationSecret

	s.Run("first admin seeds settings", func() {
		t := s.T()

		_, err := s.DB.Exec(t.Context(), "DELETE FROM admins")
		require.NoError(t, err)
		_, err = s.DB.Exec(t.Context(), "DELETE FROM app_settings")
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterAdminRequest{
			Name:               "Ada Lovelace",
			Email:              "ada@example.com",
			Password:           "password123",
			RegistrationSecret: secret,
		}, "")

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), `"first_admin":true`)

		var cityName string
		err = s.DB.QueryRow(t.Context(), "SELECT city_name FROM app_settings WHERE id = 1").Scan(&cityName)
		require.NoError(t, err, "first admin registration should create the settings row")
		require.NotEmpty(t, cityName)
	})

	s.Run("later admins are not first", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterAdminRequest{
			Name:               "Alan Turing",
			Email:              "alan@example.com",
			Password:           "password123",
			RegistrationSecret: secret,
		}, "")

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), `"first_admin":false`)
	})

	s.Run("wrong secret is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterAdminRequest{
			Name:               "Mallory",
			Email:              "mallory@example.com",
			Password:           "password123",
			RegistrationSecret: "not-the-secret",
		}, "")

		require.Equal(t, http.StatusForbidden, w.Code)

		var count int
		err := s.DB.QueryRow(t.Context(),
			"SELECT COUNT(*) FROM admins WHERE email = 'mallory@example.com'").Scan(&count)
		require.NoError(t, err)
		require.Zero(t, count, "rejected registration must not create an admin")
	})

	s.Run("duplicate email conflicts", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterAdminRequest{
			Name:               "Grace Again",
			Email:              "grace@example.com",
			Password:           "password123",
			RegistrationSecret: secret,
		}, "")

		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("registered admin can log in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterAdminRequest{
			Name:               "Margaret Hamilton",
			Email:              "margaret@example.com",
			Password:           "apollo11go",
			RegistrationSecret: secret,
		}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, request.LoginRequest{
			Email:    "margaret@example.com",
			Password: "apollo11go",
		}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestMe() {
	s.Run("returns the authenticated admin", func() {
		t := s.T()

		token := s.session.LoginAdmin(t, s.Router, "grace@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		responseBody := w.Body.String()
		require.Contains(t, responseBody, "grace@example.com")
		require.Contains(t, responseBody, "Grace Hopper")
		require.NotContains(t, responseBody, "password")
	})

	s.Run("invalid token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "invalid-token")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("missing token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears the session cookie", func() {
		t := s.T()

		token := s.session.LoginAdmin(t, s.Router, "grace@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		cookie := httptest.ExtractCookie(w, "admin_session")
		require.NotNil(t, cookie, "logout should rewrite the session cookie")
		require.Empty(t, cookie.Value, "logout should blank the session cookie")
		require.Negative(t, cookie.MaxAge, "logout should expire the session cookie")
	})

	s.Run("requires authentication", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestAuthenticationRequired() {
	s.Run("admin endpoints reject anonymous requests", func() {
		t := s.T()

		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodGet, "/api/attendees"},
			{http.MethodGet, "/api/coupons"},
			{http.MethodGet, "/api/coupons/stats"},
			{http.MethodGet, "/api/guests"},
			{http.MethodPost, "/api/sync/guests"},
			{http.MethodGet, "/api/sync/logs"},
			{http.MethodGet, "/api/settings"},
			{http.MethodGet, meURL},
		}

		for _, endpoint := range endpoints {
			w := httptest.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code,
				"%s %s should require authentication", endpoint.method, endpoint.path)
		}
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("independent sessions stay valid", func() {
		t := s.T()

		token1 := s.session.LoginAdmin(t, s.Router, "grace@example.com", "password123")
		token2 := s.session.LoginAdmin(t, s.Router, "grace@example.com", "password123")

		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2)

		require.Equal(t, http.StatusOK, w1.Code, "first session token rejected")
		require.Equal(t, http.StatusOK, w2.Code, "second session token rejected")
	})
}
