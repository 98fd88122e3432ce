package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "middleware-test-secret"

func protectedEcho(t *testing.T, wantUserID string, wantRole string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok, "user ID missing from context")
		assert.Equal(t, wantUserID, userID.String())

		role, ok := utils.GetRoleFromContext(r.Context())
		require.True(t, ok, "role missing from context")
		assert.Equal(t, wantRole, role)

		w.WriteHeader(http.StatusOK)
	})
}

func TestProtect_NoToken(t *testing.T) {
	t.Parallel()

	handler := Protect(testSecret, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestProtect_InvalidToken(t *testing.T) {
	t.Parallel()

	handler := Protect(testSecret, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtect_ValidCookie(t *testing.T) {
	t.Parallel()

	userID := utils.GenerateUUID()
	token, err := utils.GenerateToken(userID.String(), "customer", testSecret, time.Hour)
	require.NoError(t, err)

	handler := Protect(testSecret, zap.NewNop())(protectedEcho(t, userID.String(), "customer"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtect_BearerHeader(t *testing.T) {
	t.Parallel()

	userID := utils.GenerateUUID()
	token, err := utils.GenerateToken(userID.String(), "admin", testSecret, time.Hour)
	require.NoError(t, err)

	handler := Protect(testSecret, zap.NewNop())(protectedEcho(t, userID.String(), "admin"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtect_CookiePreferredOverHeader(t *testing.T) {
	t.Parallel()

	userID := utils.GenerateUUID()
	cookieToken, err := utils.GenerateToken(userID.String(), "customer", testSecret, time.Hour)
	require.NoError(t, err)

	handler := Protect(testSecret, zap.NewNop())(protectedEcho(t, userID.String(), "customer"))

	// Header token is garbage; the valid cookie must win.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookieToken})
	req.Header.Set("Authorization", "Bearer garbage")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		role     string
		wantCode int
	}{
		{name: "admin passes", role: "admin", wantCode: http.StatusOK},
		{name: "customer is forbidden", role: "customer", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			userID := utils.GenerateUUID()
			token, err := utils.GenerateToken(userID.String(), tt.role, testSecret, time.Hour)
			require.NoError(t, err)

			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			handler := Protect(testSecret, zap.NewNop())(AdminOnly(zap.NewNop())(inner))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestAdminOnly_WithoutProtect(t *testing.T) {
	t.Parallel()

	handler := AdminOnly(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
