package usecase

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/data/entity"
	"storefront/internal/data/repository"
	"storefront/internal/dto/request"
	"storefront/internal/dto/response"
	"storefront/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminService interface {
	ListProducts(ctx context.Context) ([]response.Product, error)
	CreateProduct(ctx context.Context, req *request.CreateProduct) (*response.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *request.UpdateProduct) (*response.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	ListCategories(ctx context.Context) ([]response.Category, error)
	CreateCategory(ctx context.Context, req *request.CreateCategory) (*response.Category, error)
	UpdateCategory(ctx context.Context, id int, req *request.UpdateCategory) (*response.Category, error)
	DeleteCategory(ctx context.Context, id int) error

	ListHeroSlides(ctx context.Context) ([]response.HeroSlide, error)
	CreateHeroSlide(ctx context.Context, req *request.CreateHeroSlide) (*response.HeroSlide, error)
	UpdateHeroSlide(ctx context.Context, id int, req *request.UpdateHeroSlide) (*response.HeroSlide, error)
	DeleteHeroSlide(ctx context.Context, id int) error

	ListPromoBanners(ctx context.Context) ([]response.PromoBanner, error)
	CreatePromoBanner(ctx context.Context, req *request.CreatePromoBanner) (*response.PromoBanner, error)
	UpdatePromoBanner(ctx context.Context, id int, req *request.UpdatePromoBanner) (*response.PromoBanner, error)
	DeletePromoBanner(ctx context.Context, id int) error

	ListCustomers(ctx context.Context) ([]response.Customer, error)
	ListOrders(ctx context.Context) ([]response.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, req *request.UpdateOrderStatus) error
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

// ==================== PRODUCTS ====================

func (s *adminService) ListProducts(ctx context.Context) ([]response.Product, error) {
	products, err := s.repo.Product.FindAllWithCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products")
	}
	return response.FromProducts(products), nil
}

func (s *adminService) CreateProduct(ctx context.Context, req *request.CreateProduct) (*response.Product, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	category, err := s.repo.Category.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category")
	}
	if category == nil {
		return nil, fmt.Errorf("%w: category not found", ErrValidation)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	originalPrice := req.OriginalPrice
	if originalPrice.IsZero() {
		originalPrice = req.Price
	}

	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           req.Name,
		CategoryID:     req.CategoryID,
		Price:          req.Price,
		OriginalPrice:  originalPrice,
		Image:          req.Image,
		Condition:      entity.ProductCondition(req.Condition),
		IsNew:          req.IsNew,
		IsBestSeller:   req.IsBestSeller,
		IsFeatured:     req.IsFeatured,
		IsActive:       isActive,
		Stock:          req.Stock,
		Description:    req.Description,
		Colors:         req.Colors,
		StorageOptions: req.StorageOpts,
		MemoryOptions:  req.MemoryOpts,
		Grades:         req.Grades,
		Specs:          req.Specs,
		Images:         req.Images,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product")
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name),
	)

	out := response.FromProduct(&repository.ProductWithCategory{Product: *product, Category: category})
	return &out, nil
}

func (s *adminService) UpdateProduct(ctx context.Context, id uuid.UUID, req *request.UpdateProduct) (*response.Product, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	pc, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load product")
	}
	if pc == nil {
		return nil, fmt.Errorf("%w: product not found", ErrNotFound)
	}

	product := pc.Product
	category := pc.Category

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.CategoryID != nil && *req.CategoryID != product.CategoryID {
		category, err = s.repo.Category.FindByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to check category")
		}
		if category == nil {
			return nil, fmt.Errorf("%w: category not found", ErrValidation)
		}
		product.CategoryID = *req.CategoryID
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		product.OriginalPrice = *req.OriginalPrice
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Condition != nil {
		product.Condition = entity.ProductCondition(*req.Condition)
	}
	if req.IsNew != nil {
		product.IsNew = *req.IsNew
	}
	if req.IsBestSeller != nil {
		product.IsBestSeller = *req.IsBestSeller
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Colors != nil {
		product.Colors = req.Colors
	}
	if req.StorageOpts != nil {
		product.StorageOptions = req.StorageOpts
	}
	if req.MemoryOpts != nil {
		product.MemoryOptions = req.MemoryOpts
	}
	if req.Grades != nil {
		product.Grades = req.Grades
	}
	if req.Specs != nil {
		product.Specs = req.Specs
	}
	if req.Images != nil {
		product.Images = req.Images
	}

	if err := s.repo.Product.Update(ctx, &product); err != nil {
		return nil, fmt.Errorf("failed to update product")
	}

	s.log.Info("Product updated", zap.String("product_id", id.String()))

	out := response.FromProduct(&repository.ProductWithCategory{Product: product, Category: category})
	return &out, nil
}

func (s *adminService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	pc, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load product")
	}
	if pc == nil {
		return fmt.Errorf("%w: product not found", ErrNotFound)
	}

	if err := s.repo.Product.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product")
	}
	return nil
}

// ==================== CATEGORIES ====================

func (s *adminService) ListCategories(ctx context.Context) ([]response.Category, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories")
	}
	return response.FromCategories(categories), nil
}

func (s *adminService) CreateCategory(ctx context.Context, req *request.CreateCategory) (*response.Category, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Category.FindByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name")
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: category name already exists", ErrConflict)
	}

	category := &entity.Category{
		Name:      req.Name,
		Slug:      req.Slug,
		Image:     req.Image,
		Href:      req.Href,
		SortOrder: req.SortOrder,
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category")
	}

	s.log.Info("Category created", zap.Int("category_id", category.ID), zap.String("name", category.Name))

	out := response.FromCategory(category)
	return &out, nil
}

func (s *adminService) UpdateCategory(ctx context.Context, id int, req *request.UpdateCategory) (*response.Category, error) {
	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load category")
	}
	if category == nil {
		return nil, fmt.Errorf("%w: category not found", ErrNotFound)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil {
		category.Slug = *req.Slug
	}
	if req.Image != nil {
		category.Image = req.Image
	}
	if req.Href != nil {
		category.Href = req.Href
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}

	if err := s.repo.Category.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category")
	}

	out := response.FromCategory(category)
	return &out, nil
}

// DeleteCategory refuses while products still reference the category.
// The check is an explicit pre-delete query, not an FK error translation.
func (s *adminService) DeleteCategory(ctx context.Context, id int) error {
	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load category")
	}
	if category == nil {
		return fmt.Errorf("%w: category not found", ErrNotFound)
	}

	count, err := s.repo.Product.CountByCategoryID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check category usage")
	}
	if count > 0 {
		return fmt.Errorf("%w: category has %d products", ErrConflict, count)
	}

	if err := s.repo.Category.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category")
	}
	return nil
}

// ==================== HERO SLIDES ====================

func (s *adminService) ListHeroSlides(ctx context.Context) ([]response.HeroSlide, error) {
	slides, err := s.repo.HeroSlide.FindAll(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load hero slides")
	}
	return response.FromHeroSlides(slides), nil
}

func (s *adminService) CreateHeroSlide(ctx context.Context, req *request.CreateHeroSlide) (*response.HeroSlide, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	slide := &entity.HeroSlide{
		Content:   req.Content,
		Image:     req.Image,
		CTA:       req.CTA,
		Href:      req.Href,
		SortOrder: req.SortOrder,
		IsActive:  isActive,
	}

	if err := s.repo.HeroSlide.Create(ctx, slide); err != nil {
		return nil, fmt.Errorf("failed to create hero slide")
	}

	out := response.FromHeroSlide(slide)
	return &out, nil
}

func (s *adminService) UpdateHeroSlide(ctx context.Context, id int, req *request.UpdateHeroSlide) (*response.HeroSlide, error) {
	slide, err := s.repo.HeroSlide.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load hero slide")
	}
	if slide == nil {
		return nil, fmt.Errorf("%w: hero slide not found", ErrNotFound)
	}

	if req.Content != nil {
		slide.Content = *req.Content
	}
	if req.Image != nil {
		slide.Image = *req.Image
	}
	if req.CTA != nil {
		slide.CTA = *req.CTA
	}
	if req.Href != nil {
		slide.Href = *req.Href
	}
	if req.SortOrder != nil {
		slide.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		slide.IsActive = *req.IsActive
	}

	if err := s.repo.HeroSlide.Update(ctx, slide); err != nil {
		return nil, fmt.Errorf("failed to update hero slide")
	}

	out := response.FromHeroSlide(slide)
	return &out, nil
}

func (s *adminService) DeleteHeroSlide(ctx context.Context, id int) error {
	slide, err := s.repo.HeroSlide.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load hero slide")
	}
	if slide == nil {
		return fmt.Errorf("%w: hero slide not found", ErrNotFound)
	}

	if err := s.repo.HeroSlide.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete hero slide")
	}
	return nil
}

// ==================== PROMO BANNERS ====================

func (s *adminService) ListPromoBanners(ctx context.Context) ([]response.PromoBanner, error) {
	banners, err := s.repo.PromoBanner.FindAll(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load promo banners")
	}
	return response.FromPromoBanners(banners), nil
}

func (s *adminService) CreatePromoBanner(ctx context.Context, req *request.CreatePromoBanner) (*response.PromoBanner, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	banner := &entity.PromoBanner{
		Content:   req.Content,
		CTAText:   req.CTAText,
		CTALink:   req.CTALink,
		BgColor:   req.BgColor,
		Image:     req.Image,
		SortOrder: req.SortOrder,
		IsActive:  isActive,
	}

	if err := s.repo.PromoBanner.Create(ctx, banner); err != nil {
		return nil, fmt.Errorf("failed to create promo banner")
	}

	out := response.FromPromoBanner(banner)
	return &out, nil
}

func (s *adminService) UpdatePromoBanner(ctx context.Context, id int, req *request.UpdatePromoBanner) (*response.PromoBanner, error) {
	banner, err := s.repo.PromoBanner.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load promo banner")
	}
	if banner == nil {
		return nil, fmt.Errorf("%w: promo banner not found", ErrNotFound)
	}

	if req.Content != nil {
		banner.Content = *req.Content
	}
	if req.CTAText != nil {
		banner.CTAText = *req.CTAText
	}
	if req.CTALink != nil {
		banner.CTALink = *req.CTALink
	}
	if req.BgColor != nil {
		banner.BgColor = *req.BgColor
	}
	if req.Image != nil {
		banner.Image = *req.Image
	}
	if req.SortOrder != nil {
		banner.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	if err := s.repo.PromoBanner.Update(ctx, banner); err != nil {
		return nil, fmt.Errorf("failed to update promo banner")
	}

	out := response.FromPromoBanner(banner)
	return &out, nil
}

func (s *adminService) DeletePromoBanner(ctx context.Context, id int) error {
	banner, err := s.repo.PromoBanner.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load promo banner")
	}
	if banner == nil {
		return fmt.Errorf("%w: promo banner not found", ErrNotFound)
	}

	if err := s.repo.PromoBanner.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete promo banner")
	}
	return nil
}

// ==================== CUSTOMERS & ORDERS ====================

func (s *adminService) ListCustomers(ctx context.Context) ([]response.Customer, error) {
	summaries, err := s.repo.User.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers")
	}
	return response.FromCustomerSummaries(summaries), nil
}

func (s *adminService) ListOrders(ctx context.Context) ([]response.Order, error) {
	orders, err := s.repo.Order.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders")
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	itemsByOrder, err := s.repo.OrderItem.FindByOrderIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load order items")
	}

	out := make([]response.Order, 0, len(orders))
	for _, o := range orders {
		var address *entity.Address
		if o.ShippingAddressID != nil {
			address, err = s.repo.Address.FindByID(ctx, *o.ShippingAddressID)
			if err != nil {
				return nil, fmt.Errorf("failed to load shipping address")
			}
		}

		resp := response.FromOrder(o, itemsByOrder[o.ID], address)

		customer, err := s.repo.User.FindByID(ctx, o.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("failed to load customer")
		}
		if customer != nil {
			resp.Customer = &response.OrderCustomer{
				ID:        customer.ID.String(),
				FirstName: customer.FirstName,
				LastName:  customer.LastName,
				Email:     customer.Email,
				Phone:     customer.PhoneNumber,
			}
		}

		out = append(out, resp)
	}

	return out, nil
}

// UpdateOrderStatus rejects statuses outside the declared enum.
func (s *adminService) UpdateOrderStatus(ctx context.Context, orderID string, req *request.UpdateOrderStatus) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}
	if !entity.ValidOrderStatus(req.Status) {
		return fmt.Errorf("%w: unknown order status %q", ErrValidation, req.Status)
	}

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to load order")
	}
	if order == nil {
		return fmt.Errorf("%w: order not found", ErrNotFound)
	}

	if err := s.repo.Order.UpdateStatus(ctx, orderID, entity.OrderStatus(req.Status)); err != nil {
		return fmt.Errorf("failed to update order status")
	}

	return nil
}
