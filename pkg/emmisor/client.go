package emmisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storefront/pkg/utils"

	"go.uber.org/zap"
)

// ErrDisabled is returned by every call when the collaborator is not
// configured. Callers decide whether that is a 503 (newsletter) or a
// silent skip (order confirmation).
var ErrDisabled = errors.New("emmisor client is disabled")

// Error codes the Emmisor API reports in its error payload.
const (
	CodeAlreadySubscribed = "ALREADY_SUBSCRIBED"
	CodeContactNotFound   = "CONTACT_NOT_FOUND"
	CodeValidationError   = "VALIDATION_ERROR"
)

// APIError is a non-2xx response from the Emmisor API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("emmisor: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("emmisor: request failed with status %d: %s", e.StatusCode, e.Message)
}

// Client is a keyed HTTP client for the Emmisor email service. A client
// built from empty config is the explicit disabled variant: non-nil,
// every call returns ErrDisabled.
type Client struct {
	apiKey      string
	baseURL     string
	serviceSlug string
	httpClient  *http.Client
	log         *zap.Logger
}

func NewClient(config utils.EmmisorConfig, log *zap.Logger) *Client {
	c := &Client{
		serviceSlug: config.ServiceSlug,
		log:         log.With(zap.String("client", "emmisor")),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	if config.Enabled() {
		c.apiKey = config.APIKey
		c.baseURL = strings.TrimSuffix(config.BaseURL, "/") + "/api/v1/external"
	}

	return c
}

func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

func (c *Client) ServiceSlug() string {
	return c.serviceSlug
}

type EmailMessage struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text,omitempty"`
}

type Contact struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
}

// SendEmail delivers a single transactional email.
func (c *Client) SendEmail(ctx context.Context, msg EmailMessage) error {
	return c.request(ctx, http.MethodPost, "/email/send", msg)
}

// SubscribeContact adds a contact to the mailing list behind serviceSlug.
func (c *Client) SubscribeContact(ctx context.Context, serviceSlug string, contact Contact) error {
	endpoint := fmt.Sprintf("/%s/contacts/subscribe", serviceSlug)
	return c.request(ctx, http.MethodPost, endpoint, contact)
}

// UnsubscribeContact removes a contact from the mailing list.
func (c *Client) UnsubscribeContact(ctx context.Context, serviceSlug, email string) error {
	endpoint := fmt.Sprintf("/%s/contacts/unsubscribe", serviceSlug)
	return c.request(ctx, http.MethodPost, endpoint, map[string]string{"email": email})
}

func (c *Client) request(ctx context.Context, method, endpoint string, body any) error {
	if !c.Enabled() {
		return ErrDisabled
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal emmisor request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create emmisor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("emmisor %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read emmisor response: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(respBody)),
	}

	// Error payloads are {"error": "...", "code": "..."}; anything else
	// keeps the raw body as the message.
	var parsed struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if json.Unmarshal(respBody, &parsed) == nil && parsed.Error != "" {
		apiErr.Message = parsed.Error
		apiErr.Code = parsed.Code
	}

	c.log.Warn("Emmisor request failed",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.String("code", apiErr.Code),
	)

	return apiErr
}
