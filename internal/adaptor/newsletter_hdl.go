package adaptor

import (
	"encoding/json"
	"net/http"

	"storefront/internal/dto/request"
	"storefront/internal/usecase"
	"storefront/pkg/utils"

	"go.uber.org/zap"
)

type NewsletterHandler struct {
	service usecase.NewsletterService
	log     *zap.Logger
}

func NewNewsletterHandler(service usecase.NewsletterService, log *zap.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		service: service,
		log:     log,
	}
}

// Subscribe handles POST /api/newsletter/subscribe
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req request.Subscribe
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Subscribe(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "newsletter subscribe")
		return
	}

	utils.ResponseSuccess(w, "Subscribed to newsletter", nil)
}

// Unsubscribe handles POST /api/newsletter/unsubscribe
func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req request.Unsubscribe
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Unsubscribe(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "newsletter unsubscribe")
		return
	}

	utils.ResponseSuccess(w, "Unsubscribed from newsletter", nil)
}
