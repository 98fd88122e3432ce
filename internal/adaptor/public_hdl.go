package adaptor

import (
	"net/http"
	"strings"

	"storefront/internal/data/repository"
	"storefront/internal/usecase"
	"storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PublicHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewPublicHandler(service usecase.CatalogService, log *zap.Logger) *PublicHandler {
	return &PublicHandler{
		service: service,
		log:     log,
	}
}

// GetLandingPage handles GET /api/public/landing-page
func (h *PublicHandler) GetLandingPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.GetLandingPage(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "landing page")
		return
	}

	utils.ResponseSuccess(w, "Landing page retrieved", page)
}

// ListCategories handles GET /api/public/categories
func (h *PublicHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list categories")
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved", categories)
}

// ListProducts handles GET /api/public/products with the filter query
// parameters: category, q, condition (CSV), minPrice, maxPrice, sort.
func (h *PublicHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := repository.ProductFilter{
		CategorySlug: r.URL.Query().Get("category"),
		Query:        r.URL.Query().Get("q"),
		Sort:         r.URL.Query().Get("sort"),
	}

	if conditions := r.URL.Query().Get("condition"); conditions != "" {
		for _, c := range strings.Split(conditions, ",") {
			if c = strings.TrimSpace(c); c != "" {
				filter.Conditions = append(filter.Conditions, c)
			}
		}
	}

	// Unparseable price bounds are ignored rather than rejected.
	if raw := r.URL.Query().Get("minPrice"); raw != "" {
		if min, err := decimal.NewFromString(raw); err == nil {
			filter.MinPrice = &min
		}
	}
	if raw := r.URL.Query().Get("maxPrice"); raw != "" {
		if max, err := decimal.NewFromString(raw); err == nil {
			filter.MaxPrice = &max
		}
	}

	products, err := h.service.ListProducts(r.Context(), filter)
	if err != nil {
		handleServiceError(w, h.log, err, "list products")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved", products)
}

// GetProduct handles GET /api/public/products/{id}
func (h *PublicHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product ID", nil)
		return
	}

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get product")
		return
	}

	utils.ResponseSuccess(w, "Product retrieved", product)
}

// GetOrderTracking handles GET /api/public/orders/{id}/tracking
func (h *PublicHandler) GetOrderTracking(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	tracking, err := h.service.GetOrderTracking(r.Context(), orderID)
	if err != nil {
		handleServiceError(w, h.log, err, "order tracking")
		return
	}

	utils.ResponseSuccess(w, "Order tracking retrieved", tracking)
}
