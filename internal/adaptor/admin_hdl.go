package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"storefront/internal/dto/request"
	"storefront/internal/usecase"
	"storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log,
	}
}

func intParam(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, false
	}
	return id, true
}

// ==================== PRODUCTS ====================

// ListProducts handles GET /api/admin/products
func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "admin list products")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved", products)
}

// CreateProduct handles POST /api/admin/products
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProduct
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create product")
		return
	}

	utils.ResponseCreated(w, "Product created", product)
}

// UpdateProduct handles PUT /api/admin/products/{id}
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product ID", nil)
		return
	}

	var req request.UpdateProduct
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update product")
		return
	}

	utils.ResponseSuccess(w, "Product updated", product)
}

// DeleteProduct handles DELETE /api/admin/products/{id}
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product ID", nil)
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete product")
		return
	}

	utils.ResponseSuccess(w, "Product deleted", nil)
}

// ==================== CATEGORIES ====================

// ListCategories handles GET /api/admin/categories
func (h *AdminHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "admin list categories")
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved", categories)
}

// CreateCategory handles POST /api/admin/categories
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCategory
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create category")
		return
	}

	utils.ResponseCreated(w, "Category created", category)
}

// UpdateCategory handles PUT /api/admin/categories/{id}
func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid category ID", nil)
		return
	}

	var req request.UpdateCategory
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update category")
		return
	}

	utils.ResponseSuccess(w, "Category updated", category)
}

// DeleteCategory handles DELETE /api/admin/categories/{id}
func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid category ID", nil)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete category")
		return
	}

	utils.ResponseSuccess(w, "Category deleted", nil)
}

// ==================== HERO SLIDES ====================

// ListHeroSlides handles GET /api/admin/hero-slides
func (h *AdminHandler) ListHeroSlides(w http.ResponseWriter, r *http.Request) {
	slides, err := h.service.ListHeroSlides(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list hero slides")
		return
	}

	utils.ResponseSuccess(w, "Hero slides retrieved", slides)
}

// CreateHeroSlide handles POST /api/admin/hero-slides
func (h *AdminHandler) CreateHeroSlide(w http.ResponseWriter, r *http.Request) {
	var req request.CreateHeroSlide
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	slide, err := h.service.CreateHeroSlide(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create hero slide")
		return
	}

	utils.ResponseCreated(w, "Hero slide created", slide)
}

// UpdateHeroSlide handles PUT /api/admin/hero-slides/{id}
func (h *AdminHandler) UpdateHeroSlide(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid hero slide ID", nil)
		return
	}

	var req request.UpdateHeroSlide
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	slide, err := h.service.UpdateHeroSlide(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update hero slide")
		return
	}

	utils.ResponseSuccess(w, "Hero slide updated", slide)
}

// DeleteHeroSlide handles DELETE /api/admin/hero-slides/{id}
func (h *AdminHandler) DeleteHeroSlide(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid hero slide ID", nil)
		return
	}

	if err := h.service.DeleteHeroSlide(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete hero slide")
		return
	}

	utils.ResponseSuccess(w, "Hero slide deleted", nil)
}

// ==================== PROMO BANNERS ====================

// ListPromoBanners handles GET /api/admin/promo-banners
func (h *AdminHandler) ListPromoBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.service.ListPromoBanners(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list promo banners")
		return
	}

	utils.ResponseSuccess(w, "Promo banners retrieved", banners)
}

// CreatePromoBanner handles POST /api/admin/promo-banners
func (h *AdminHandler) CreatePromoBanner(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePromoBanner
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	banner, err := h.service.CreatePromoBanner(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create promo banner")
		return
	}

	utils.ResponseCreated(w, "Promo banner created", banner)
}

// UpdatePromoBanner handles PUT /api/admin/promo-banners/{id}
func (h *AdminHandler) UpdatePromoBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid promo banner ID", nil)
		return
	}

	var req request.UpdatePromoBanner
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	banner, err := h.service.UpdatePromoBanner(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update promo banner")
		return
	}

	utils.ResponseSuccess(w, "Promo banner updated", banner)
}

// DeletePromoBanner handles DELETE /api/admin/promo-banners/{id}
func (h *AdminHandler) DeletePromoBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		utils.ResponseBadRequest(w, "Invalid promo banner ID", nil)
		return
	}

	if err := h.service.DeletePromoBanner(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete promo banner")
		return
	}

	utils.ResponseSuccess(w, "Promo banner deleted", nil)
}

// ==================== CUSTOMERS & ORDERS ====================

// ListCustomers handles GET /api/admin/customers
func (h *AdminHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.ListCustomers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list customers")
		return
	}

	utils.ResponseSuccess(w, "Customers retrieved", customers)
}

// ListOrders handles GET /api/admin/orders
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "admin list orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved", orders)
}

// UpdateOrderStatus handles PUT /api/admin/orders/{id}/status
func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateOrderStatus
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateOrderStatus(r.Context(), chi.URLParam(r, "id"), &req); err != nil {
		handleServiceError(w, h.log, err, "update order status")
		return
	}

	utils.ResponseSuccess(w, "Order status updated", nil)
}
