package wire

import (
	"storefront/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireNewsletter(r chi.Router, newsletterHandler *adaptor.NewsletterHandler) {
	r.Route("/api/newsletter", func(r chi.Router) {
		r.Post("/subscribe", newsletterHandler.Subscribe)
		r.Post("/unsubscribe", newsletterHandler.Unsubscribe)
	})
}
