package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"storefront/internal/data/entity"
	"storefront/internal/data/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func activeProduct(name string, featured, bestSeller, isNew bool) *repository.ProductWithCategory {
	return &repository.ProductWithCategory{
		Product: entity.Product{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			Name:         name,
			Price:        decimal.RequireFromString("99.00"),
			IsFeatured:   featured,
			IsBestSeller: bestSeller,
			IsNew:        isNew,
			IsActive:     true,
		},
	}
}

func TestGetLandingPage_DerivedListsAreCapped(t *testing.T) {
	t.Parallel()

	// 6 featured, 6 best-seller and 6 new products out of 18.
	var products []*repository.ProductWithCategory
	for i := 0; i < 6; i++ {
		products = append(products, activeProduct(fmt.Sprintf("featured-%d", i), true, false, false))
	}
	for i := 0; i < 6; i++ {
		products = append(products, activeProduct(fmt.Sprintf("seller-%d", i), false, true, false))
	}
	for i := 0; i < 6; i++ {
		products = append(products, activeProduct(fmt.Sprintf("new-%d", i), false, false, true))
	}

	repo := newFakeRepository()
	repo.Product = &fakeProductRepo{
		findActiveFn: func(ctx context.Context, filter repository.ProductFilter) ([]*repository.ProductWithCategory, error) {
			return products, nil
		},
	}
	repo.HeroSlide = &fakeHeroSlideRepo{
		findAllFn: func(ctx context.Context, activeOnly bool) ([]*entity.HeroSlide, error) {
			assert.True(t, activeOnly, "landing page must only show active slides")
			return []*entity.HeroSlide{{ID: 1, Content: "<h1>Hello</h1>", IsActive: true}}, nil
		},
	}
	repo.PromoBanner = &fakePromoBannerRepo{
		findAllFn: func(ctx context.Context, activeOnly bool) ([]*entity.PromoBanner, error) {
			assert.True(t, activeOnly, "landing page must only show active banners")
			return []*entity.PromoBanner{{ID: 1, Content: "Sale", IsActive: true}}, nil
		},
	}

	svc := NewCatalogService(repo, zap.NewNop())
	page, err := svc.GetLandingPage(context.Background())
	require.NoError(t, err)

	assert.Len(t, page.Products, 18)
	assert.Len(t, page.FeaturedProducts, 4)
	assert.Len(t, page.BestSellers, 4)
	assert.Len(t, page.LatestProducts, 4)
	assert.Len(t, page.HeroSlides, 1)
	assert.Len(t, page.PromoBanners, 1)

	for _, p := range page.FeaturedProducts {
		assert.True(t, p.IsFeatured)
	}
	for _, p := range page.BestSellers {
		assert.True(t, p.IsBestSeller)
	}
	for _, p := range page.LatestProducts {
		assert.True(t, p.IsNew)
	}
}

func TestGetLandingPage_LatestFiltersNewFlag(t *testing.T) {
	t.Parallel()

	// Recency alone does not qualify: four recent products without the
	// flag and one older flagged product.
	products := []*repository.ProductWithCategory{
		activeProduct("old-stock-a", false, false, false),
		activeProduct("old-stock-b", false, false, false),
		activeProduct("old-stock-c", false, false, false),
		activeProduct("old-stock-d", false, false, false),
		activeProduct("just-launched", false, false, true),
	}

	repo := newFakeRepository()
	repo.Product = &fakeProductRepo{
		findActiveFn: func(ctx context.Context, filter repository.ProductFilter) ([]*repository.ProductWithCategory, error) {
			return products, nil
		},
	}

	svc := NewCatalogService(repo, zap.NewNop())
	page, err := svc.GetLandingPage(context.Background())
	require.NoError(t, err)

	require.Len(t, page.LatestProducts, 1)
	assert.Equal(t, "just-launched", page.LatestProducts[0].Name)
}

func TestGetLandingPage_FewProducts(t *testing.T) {
	t.Parallel()

	repo := newFakeRepository()
	repo.Product = &fakeProductRepo{
		findActiveFn: func(ctx context.Context, filter repository.ProductFilter) ([]*repository.ProductWithCategory, error) {
			return []*repository.ProductWithCategory{activeProduct("only-one", false, false, true)}, nil
		},
	}

	svc := NewCatalogService(repo, zap.NewNop())
	page, err := svc.GetLandingPage(context.Background())
	require.NoError(t, err)

	assert.Len(t, page.Products, 1)
	assert.Empty(t, page.FeaturedProducts)
	assert.Empty(t, page.BestSellers)
	assert.Len(t, page.LatestProducts, 1)
}

func TestGetProduct_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewCatalogService(newFakeRepository(), zap.NewNop())
	_, err := svc.GetProduct(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetOrderTracking_OnlyNonSensitiveFields(t *testing.T) {
	t.Parallel()

	trackingNum := "TRK-123"
	placedAt := time.Date(2026, time.August, 28, 10, 30, 0, 0, time.UTC)
	repo := newFakeRepository()
	repo.Order = &fakeOrderRepo{
		findByIDFn: func(ctx context.Context, id string) (*entity.Order, error) {
			return &entity.Order{
				ID:             id,
				CustomerID:     uuid.New(),
				Status:         entity.OrderStatusShipped,
				PaymentStatus:  entity.PaymentStatusPaid,
				TrackingNumber: &trackingNum,
				Total:          decimal.RequireFromString("999.00"),
				CreatedAt:      placedAt,
			}, nil
		},
	}

	svc := NewCatalogService(repo, zap.NewNop())
	tracking, err := svc.GetOrderTracking(context.Background(), "AT-TRACKME2")
	require.NoError(t, err)

	assert.Equal(t, "AT-TRACKME2", tracking.ID)
	assert.Equal(t, "Shipped", tracking.Status)
	assert.Equal(t, "Paid", tracking.PaymentStatus)
	require.NotNil(t, tracking.TrackingNumber)
	assert.Equal(t, trackingNum, *tracking.TrackingNumber)
	assert.Equal(t, placedAt, tracking.CreatedAt)
	assert.Equal(t, "Aug 28, 2026", tracking.Date)
}

func TestGetOrderTracking_UnknownCode(t *testing.T) {
	t.Parallel()

	svc := NewCatalogService(newFakeRepository(), zap.NewNop())
	_, err := svc.GetOrderTracking(context.Background(), "AT-NOPENOPE")
	assert.ErrorIs(t, err, ErrNotFound)
}
