package usecase

import (
	"context"
	"fmt"

	"storefront/internal/data/repository"
	"storefront/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// featuredListCap bounds the derived landing-page lists.
const featuredListCap = 4

type CatalogService interface {
	GetLandingPage(ctx context.Context) (*response.LandingPage, error)
	ListCategories(ctx context.Context) ([]response.Category, error)
	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]response.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*response.Product, error)
	GetOrderTracking(ctx context.Context, orderID string) (*response.OrderTracking, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

// GetLandingPage assembles the storefront home view from three reads.
// The featured, best-seller and latest lists are sliced out of the one
// product fetch rather than queried separately.
func (s *catalogService) GetLandingPage(ctx context.Context) (*response.LandingPage, error) {
	slides, err := s.repo.HeroSlide.FindAll(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load hero slides")
	}

	banners, err := s.repo.PromoBanner.FindAll(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load promo banners")
	}

	products, err := s.repo.Product.FindActive(ctx, repository.ProductFilter{Sort: repository.SortNewest})
	if err != nil {
		return nil, fmt.Errorf("failed to load products")
	}

	all := response.FromProducts(products)

	featured := make([]response.Product, 0, featuredListCap)
	bestSellers := make([]response.Product, 0, featuredListCap)
	latest := make([]response.Product, 0, featuredListCap)
	for _, p := range all {
		if p.IsFeatured && len(featured) < featuredListCap {
			featured = append(featured, p)
		}
		if p.IsBestSeller && len(bestSellers) < featuredListCap {
			bestSellers = append(bestSellers, p)
		}
		if p.IsNew && len(latest) < featuredListCap {
			latest = append(latest, p)
		}
	}

	return &response.LandingPage{
		HeroSlides:       response.FromHeroSlides(slides),
		PromoBanners:     response.FromPromoBanners(banners),
		Products:         all,
		FeaturedProducts: featured,
		BestSellers:      bestSellers,
		LatestProducts:   latest,
	}, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]response.Category, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories")
	}
	return response.FromCategories(categories), nil
}

func (s *catalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]response.Product, error) {
	products, err := s.repo.Product.FindActive(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load products")
	}
	return response.FromProducts(products), nil
}

func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*response.Product, error) {
	pc, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load product")
	}
	if pc == nil {
		return nil, fmt.Errorf("%w: product not found", ErrNotFound)
	}

	product := response.FromProduct(pc)
	return &product, nil
}

// GetOrderTracking is unauthenticated. The order code is the access
// credential, so only non-sensitive fields go out.
func (s *catalogService) GetOrderTracking(ctx context.Context, orderID string) (*response.OrderTracking, error) {
	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order")
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order not found", ErrNotFound)
	}

	tracking := response.FromOrderTracking(order)
	return &tracking, nil
}
