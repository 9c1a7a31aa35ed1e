//go:build e2e

package helper

import (
	"net/http"
	"testing"

	"event-coupon-admin/internal/handler/dto/request"
	"event-coupon-admin/tests/common/dbtest"
	commonhttp "event-coupon-admin/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SessionHelper creates admin accounts and logs them in through the
// real login endpoint, returning the session token for use as a
// Bearer header in subsequent requests.
type SessionHelper struct {
	pool *pgxpool.Pool
}

func NewSessionHelper(pool *pgxpool.Pool) *SessionHelper {
	return &SessionHelper{pool: pool}
}

func (h *SessionHelper) CreateTestAdmin(t *testing.T, name, email string) uuid.UUID {
	t.Helper()
	return dbtest.CreateTestAdmin(t, h.pool, name, email)
}

// LoginAdmin logs in through the API and returns the session token
// from the admin_session cookie. All fixture admins share the
// password "password123".
func (h *SessionHelper) LoginAdmin(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cookie := commonhttp.ExtractCookie(w, "admin_session")
	require.NotNil(t, cookie, "session cookie not found in login response")
	require.NotEmpty(t, cookie.Value, "session cookie is empty")

	return cookie.Value
}

func (h *SessionHelper) CreateAndLogin(t *testing.T, router *gin.Engine, name, email string) string {
	t.Helper()
	h.CreateTestAdmin(t, name, email)
	return h.LoginAdmin(t, router, email, "password123")
}
