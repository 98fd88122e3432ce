package wire

import (
	"net/http"
	"time"

	"storefront/internal/adaptor"
	"storefront/internal/data/repository"
	"storefront/internal/usecase"
	"storefront/pkg/emmisor"
	"storefront/pkg/middleware"
	"storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service and handler graph and assembles the router.
func Wiring(repo *repository.Repository, config *utils.Config, mailer *emmisor.Client, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, mailer, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.Origin))

	// Feature routes
	wireAuth(r, handler.Auth, config, logger)
	wirePublic(r, handler.Public)
	wireOrder(r, handler.Order, config, logger)
	wireAdmin(r, handler.Admin, config, logger)
	wireNewsletter(r, handler.Newsletter)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "ok", map[string]any{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	return r
}
