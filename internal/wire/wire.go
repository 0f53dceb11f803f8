package wire

import (
	"net/http"

	"pizza-delivery/internal/adaptor"
	"pizza-delivery/internal/data/repository"
	"pizza-delivery/internal/provider"
	"pizza-delivery/internal/router"
	"pizza-delivery/internal/usecase"
	"pizza-delivery/pkg/middleware"
	"pizza-delivery/pkg/utils"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// App holds the fully wired HTTP surface.
type App struct {
	Handler http.Handler
}

// Wiring initializes services and handlers and assembles the immutable
// route tables the dispatcher runs on.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	fs afero.Fs,
	payment provider.PaymentProvider,
	email provider.EmailSender,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, payment, email, logger)
	handler := adaptor.NewHandler(service, logger)

	routes := buildRoutes(handler, service, repo, config, fs, logger)
	dispatcher := router.NewServer(routes, logger)

	return &App{
		Handler: middleware.Logger(logger)(dispatcher),
	}
}

func buildRoutes(
	handler *adaptor.Handler,
	service *usecase.Service,
	repo *repository.Repository,
	config *utils.Config,
	fs afero.Fs,
	logger *zap.Logger,
) *router.Routes {
	guard := middleware.WithAuthentication(service.Auth, repo.User, logger)

	renderer := router.NewRenderer(fs, config.Assets.PublicDir, config.Assets.TemplateDir,
		map[string]string{
			"baseUrl": "http://localhost:" + config.App.HTTPPort + "/",
			"appName": config.App.Name,
		}, logger)

	return &router.Routes{
		API: handler.APIRoutes(guard),
		Pages: map[string]router.PageHandler{
			"":         renderer.Page("home"),
			"login":    renderer.Page("login"),
			"signup":   renderer.Page("signup"),
			"menu":     renderer.Page("menu"),
			"cart":     renderer.Page("cart"),
			"checkout": renderer.Page("checkout"),
		},
		Assets: router.NewAssetResolver(fs, config.Assets.PublicDir, logger),
	}
}
