package emmisor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDisabledClient(t *testing.T) {
	t.Parallel()

	c := NewClient(utils.EmmisorConfig{}, zap.NewNop())
	require.NotNil(t, c)
	assert.False(t, c.Enabled())

	err := c.SendEmail(context.Background(), EmailMessage{To: []string{"a@b.c"}})
	assert.ErrorIs(t, err, ErrDisabled)

	err = c.SubscribeContact(context.Background(), "shop", Contact{Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestSubscribeContact_SendsKeyAndPath(t *testing.T) {
	t.Parallel()

	var gotPath, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	c := NewClient(utils.EmmisorConfig{
		APIKey:      "test-key",
		BaseURL:     server.URL,
		ServiceSlug: "apple-treats",
	}, zap.NewNop())

	err := c.SubscribeContact(context.Background(), c.ServiceSlug(), Contact{Email: "reader@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/external/apple-treats/contacts/subscribe", gotPath)
	assert.Equal(t, "test-key", gotKey)
}

func TestAPIError_CarriesUpstreamCode(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"Contact already subscribed","code":"ALREADY_SUBSCRIBED"}`))
	}))
	defer server.Close()

	c := NewClient(utils.EmmisorConfig{APIKey: "k", BaseURL: server.URL}, zap.NewNop())

	err := c.SubscribeContact(context.Background(), "shop", Contact{Email: "dup@example.com"})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok, "expected *APIError, got %T", err)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, CodeAlreadySubscribed, apiErr.Code)
	assert.Contains(t, apiErr.Message, "already subscribed")
}

func TestBuildOrderConfirmationEmail(t *testing.T) {
	t.Parallel()

	subject, html, err := BuildOrderConfirmationEmail(OrderEmailData{
		OrderID:      "AT-TESTABCD",
		CustomerName: "Ada Lovelace",
		Date:         "August 28, 2026",
		Items: []OrderEmailItem{
			{Name: "iPhone 15", Quantity: 2, Price: decimal.RequireFromString("799.00"), SelectedOptions: []string{"Midnight", "256GB"}},
		},
		Subtotal:     decimal.RequireFromString("1598.00"),
		ShippingCost: decimal.Zero,
		Tax:          decimal.Zero,
		Total:        decimal.RequireFromString("1598.00"),
		Address:      "1 Infinite Loop",
		City:         "Cupertino",
		Region:       "CA",
		ZipCode:      "95014",
		Country:      "USA",
	})
	require.NoError(t, err)

	assert.Contains(t, subject, "AT-TESTABCD")
	assert.Contains(t, html, "Ada Lovelace")
	assert.Contains(t, html, "iPhone 15")
	assert.Contains(t, html, "1598.00")
	assert.Contains(t, html, "Cupertino")
	assert.Contains(t, html, "Midnight")
}
