package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/dto/request"
	"storefront/internal/dto/response"
	"storefront/internal/usecase"
	"storefront/pkg/middleware"
	"storefront/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeNewsletterService struct {
	subscribeErr   error
	unsubscribeErr error
}

func (f *fakeNewsletterService) Subscribe(ctx context.Context, req *request.Subscribe) error {
	return f.subscribeErr
}

func (f *fakeNewsletterService) Unsubscribe(ctx context.Context, req *request.Unsubscribe) error {
	return f.unsubscribeErr
}

type fakeAuthService struct {
	registerFn func(ctx context.Context, req *request.Register) (*response.Auth, error)
	loginFn    func(ctx context.Context, req *request.Login) (*response.Auth, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req *request.Register) (*response.Auth, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req *request.Login) (*response.Auth, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.Profile, error) {
	return nil, nil
}

func (f *fakeAuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfile) (*response.Profile, error) {
	return nil, nil
}

func (f *fakeAuthService) DeactivateAccount(ctx context.Context, userID uuid.UUID) error {
	return nil
}

func decodeEnvelope(t *testing.T, body string) utils.Response {
	t.Helper()
	var envelope utils.Response
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	return envelope
}

func TestNewsletterSubscribe_UnavailableEnvelope(t *testing.T) {
	t.Parallel()

	svc := &fakeNewsletterService{
		subscribeErr: fmt.Errorf("%w: newsletter is not configured", usecase.ErrUnavailable),
	}
	h := NewNewsletterHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe",
		strings.NewReader(`{"email":"reader@example.com"}`))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	envelope := decodeEnvelope(t, rec.Body.String())
	assert.False(t, envelope.Success)
	assert.Contains(t, envelope.Message, "not configured")
}

func TestNewsletterSubscribe_ConflictEnvelope(t *testing.T) {
	t.Parallel()

	svc := &fakeNewsletterService{
		subscribeErr: fmt.Errorf("%w: email is already subscribed", usecase.ErrConflict),
	}
	h := NewNewsletterHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe",
		strings.NewReader(`{"email":"dup@example.com"}`))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, decodeEnvelope(t, rec.Body.String()).Success)
}

func TestNewsletterUnsubscribe_NotFoundEnvelope(t *testing.T) {
	t.Parallel()

	svc := &fakeNewsletterService{
		unsubscribeErr: fmt.Errorf("%w: email is not subscribed", usecase.ErrNotFound),
	}
	h := NewNewsletterHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/unsubscribe",
		strings.NewReader(`{"email":"ghost@example.com"}`))
	rec := httptest.NewRecorder()
	h.Unsubscribe(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewsletterSubscribe_InvalidBody(t *testing.T) {
	t.Parallel()

	h := NewNewsletterHandler(&fakeNewsletterService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe",
		strings.NewReader(`{broken`))
	rec := httptest.NewRecorder()
	h.Subscribe(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func devAuthHandler(svc usecase.AuthService) *AuthHandler {
	config := &utils.Config{
		App: utils.AppConfig{Env: "development"},
		JWT: utils.JWTConfig{Secret: "s", ExpiryHours: 24},
	}
	return NewAuthHandler(svc, config, zap.NewNop())
}

func sessionCookie(res *http.Response) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestRegister_SetsSessionCookie(t *testing.T) {
	t.Parallel()

	svc := &fakeAuthService{
		registerFn: func(ctx context.Context, req *request.Register) (*response.Auth, error) {
			return &response.Auth{Token: "signed-token"}, nil
		},
	}
	h := devAuthHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"strong-password"}`))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	cookie := sessionCookie(rec.Result())
	require.NotNil(t, cookie, "session cookie missing")
	assert.Equal(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	// Development: Lax, not Secure
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestLogin_FailureDoesNotSetCookie(t *testing.T) {
	t.Parallel()

	svc := &fakeAuthService{
		loginFn: func(ctx context.Context, req *request.Login) (*response.Auth, error) {
			return nil, fmt.Errorf("%w: invalid credentials", usecase.ErrUnauthorized)
		},
	}
	h := devAuthHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"ada@example.com","password":"wrong"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, sessionCookie(rec.Result()))
}

func TestLogout_ClearsCookie(t *testing.T) {
	t.Parallel()

	h := devAuthHandler(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(rec.Result())
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
