package wire

import (
	"storefront/internal/adaptor"
	"storefront/pkg/middleware"
	"storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(middleware.Protect(config.JWT.Secret, log))

		r.Post("/", orderHandler.Create)
		r.Get("/my", orderHandler.ListMine)
		r.Get("/{id}", orderHandler.GetMine)
	})
}
