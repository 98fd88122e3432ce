package usecase

import (
	"storefront/internal/data/repository"
	"storefront/pkg/emmisor"
	"storefront/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	Catalog    CatalogService
	Order      OrderService
	Admin      AdminService
	Newsletter NewsletterService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	mailer *emmisor.Client,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(repo, config, log),
		Catalog:    NewCatalogService(repo, log),
		Order:      NewOrderService(repo, mailer, log),
		Admin:      NewAdminService(repo, log),
		Newsletter: NewNewsletterService(mailer, log),
	}
}
