package wire

import (
	"storefront/internal/adaptor"
	"storefront/pkg/middleware"
	"storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.Protect(config.JWT.Secret, log))
		r.Use(middleware.AdminOnly(log))

		// Products
		r.Get("/products", adminHandler.ListProducts)
		r.Post("/products", adminHandler.CreateProduct)
		r.Put("/products/{id}", adminHandler.UpdateProduct)
		r.Delete("/products/{id}", adminHandler.DeleteProduct)

		// Categories
		r.Get("/categories", adminHandler.ListCategories)
		r.Post("/categories", adminHandler.CreateCategory)
		r.Put("/categories/{id}", adminHandler.UpdateCategory)
		r.Delete("/categories/{id}", adminHandler.DeleteCategory)

		// Hero slides
		r.Get("/hero-slides", adminHandler.ListHeroSlides)
		r.Post("/hero-slides", adminHandler.CreateHeroSlide)
		r.Put("/hero-slides/{id}", adminHandler.UpdateHeroSlide)
		r.Delete("/hero-slides/{id}", adminHandler.DeleteHeroSlide)

		// Promo banners
		r.Get("/promo-banners", adminHandler.ListPromoBanners)
		r.Post("/promo-banners", adminHandler.CreatePromoBanner)
		r.Put("/promo-banners/{id}", adminHandler.UpdatePromoBanner)
		r.Delete("/promo-banners/{id}", adminHandler.DeletePromoBanner)

		// Customers & orders
		r.Get("/customers", adminHandler.ListCustomers)
		r.Get("/orders", adminHandler.ListOrders)
		r.Put("/orders/{id}/status", adminHandler.UpdateOrderStatus)
	})
}
