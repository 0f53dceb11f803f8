package main

import (
	"context"
	"log"

	"pizza-delivery/cmd"
	"pizza-delivery/internal/data/repository"
	"pizza-delivery/internal/data/store"
	"pizza-delivery/internal/provider"
	"pizza-delivery/internal/wire"
	"pizza-delivery/internal/worker"
	"pizza-delivery/pkg/utils"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("http_port", config.App.HTTPPort),
		zap.String("https_port", config.App.HTTPSPort),
		zap.Bool("debug", config.App.Debug),
	)

	// Open the record store
	fs := afero.NewOsFs()
	db := store.New(fs, config.Store.DataDir, logger)

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Bootstrap collections and seed the menu
	if err := worker.New(fs, db, repos, config, logger).Init(context.Background()); err != nil {
		logger.Fatal("Failed to initialize data stores", zap.Error(err))
	}

	logger.Info("Record store ready", zap.String("data_dir", config.Store.DataDir))

	// External providers
	payment := provider.NewStripeClient(config.Stripe, logger)
	email := provider.NewMailgunClient(config.Mailgun, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, fs, payment, email, logger)

	// Start server
	logger.Info("Starting HTTP server",
		zap.String("http_port", config.App.HTTPPort),
		zap.String("https_port", config.App.HTTPSPort),
	)

	cmd.APIServer(app.Handler, config)
}
