package wire

import (
	"storefront/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePublic(r chi.Router, publicHandler *adaptor.PublicHandler) {
	r.Route("/api/public", func(r chi.Router) {
		r.Get("/landing-page", publicHandler.GetLandingPage)
		r.Get("/categories", publicHandler.ListCategories)
		r.Get("/products", publicHandler.ListProducts)
		r.Get("/products/{id}", publicHandler.GetProduct)
		r.Get("/orders/{id}/tracking", publicHandler.GetOrderTracking)
	})
}
