package repository

import (
	"storefront/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Address     AddressRepository
	Category    CategoryRepository
	Product     ProductRepository
	Order       OrderRepository
	OrderItem   OrderItemRepository
	HeroSlide   HeroSlideRepository
	PromoBanner PromoBannerRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Address:     NewAddressRepository(db, log),
		Category:    NewCategoryRepository(db, log),
		Product:     NewProductRepository(db, log),
		Order:       NewOrderRepository(db, log),
		OrderItem:   NewOrderItemRepository(db, log),
		HeroSlide:   NewHeroSlideRepository(db, log),
		PromoBanner: NewPromoBannerRepository(db, log),
	}
}
