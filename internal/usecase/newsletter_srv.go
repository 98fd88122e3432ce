package usecase

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/dto/request"
	"storefront/pkg/emmisor"
	"storefront/pkg/utils"

	"go.uber.org/zap"
)

type NewsletterService interface {
	Subscribe(ctx context.Context, req *request.Subscribe) error
	Unsubscribe(ctx context.Context, req *request.Unsubscribe) error
}

type newsletterService struct {
	mailer *emmisor.Client
	log    *zap.Logger
}

func NewNewsletterService(mailer *emmisor.Client, log *zap.Logger) NewsletterService {
	return &newsletterService{
		mailer: mailer,
		log:    log.With(zap.String("service", "newsletter")),
	}
}

func (s *newsletterService) Subscribe(ctx context.Context, req *request.Subscribe) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	contact := emmisor.Contact{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	err := s.mailer.SubscribeContact(ctx, s.mailer.ServiceSlug(), contact)
	if err == nil {
		s.log.Info("Newsletter subscription", zap.String("email", req.Email))
		return nil
	}

	return s.mapMailerError(err)
}

func (s *newsletterService) Unsubscribe(ctx context.Context, req *request.Unsubscribe) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	err := s.mailer.UnsubscribeContact(ctx, s.mailer.ServiceSlug(), req.Email)
	if err == nil {
		s.log.Info("Newsletter unsubscription", zap.String("email", req.Email))
		return nil
	}

	return s.mapMailerError(err)
}

// mapMailerError translates upstream error codes into the service
// error taxonomy.
func (s *newsletterService) mapMailerError(err error) error {
	if errors.Is(err, emmisor.ErrDisabled) {
		return fmt.Errorf("%w: newsletter is not configured", ErrUnavailable)
	}

	var apiErr *emmisor.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case emmisor.CodeAlreadySubscribed:
			return fmt.Errorf("%w: email is already subscribed", ErrConflict)
		case emmisor.CodeContactNotFound:
			return fmt.Errorf("%w: email is not subscribed", ErrNotFound)
		case emmisor.CodeValidationError:
			return fmt.Errorf("%w: %s", ErrValidation, apiErr.Message)
		}
	}

	s.log.Error("Newsletter request failed", zap.Error(err))
	return fmt.Errorf("newsletter request failed")
}
