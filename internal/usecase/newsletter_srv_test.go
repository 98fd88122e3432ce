package usecase

import (
	"context"
	"testing"

	"storefront/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewsletter_DisabledClient(t *testing.T) {
	t.Parallel()

	svc := NewNewsletterService(disabledMailer(), zap.NewNop())

	err := svc.Subscribe(context.Background(), &request.Subscribe{Email: "reader@example.com"})
	assert.ErrorIs(t, err, ErrUnavailable)

	err = svc.Unsubscribe(context.Background(), &request.Unsubscribe{Email: "reader@example.com"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNewsletter_Validation(t *testing.T) {
	t.Parallel()

	svc := NewNewsletterService(disabledMailer(), zap.NewNop())

	err := svc.Subscribe(context.Background(), &request.Subscribe{Email: "not-an-email"})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Unsubscribe(context.Background(), &request.Unsubscribe{})
	assert.ErrorIs(t, err, ErrValidation)
}
