package main

import (
	"context"
	"net/http"
	"os"

	"github.com/JeanCaicedo/FakeStore/api/routes"
	"github.com/JeanCaicedo/FakeStore/internal/appstate"
	"github.com/JeanCaicedo/FakeStore/internal/auth"
	"github.com/JeanCaicedo/FakeStore/internal/catalog"
	"github.com/JeanCaicedo/FakeStore/internal/checkout"
	"github.com/JeanCaicedo/FakeStore/internal/storage"
	"github.com/JeanCaicedo/FakeStore/pkg/config"
	"github.com/JeanCaicedo/FakeStore/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	persistence, err := storage.NewSQLite(context.Background(), cfg.Storage, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to open state storage", err)
		os.Exit(1)
	}

	state, err := appstate.NewStore(appstate.StoreParams{
		Persistence: persistence,
		Logger:      logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create state store", err)
		os.Exit(1)
	}
	if err := state.Initialize(context.Background()); err != nil {
		logg.Error(context.Background(), "failed to rehydrate state", err)
		os.Exit(1)
	}

	client, err := catalog.NewClient(cfg.Catalog, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog client", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		Gateway: client,
		State:   state,
		Logger:  logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	checkoutService, err := checkout.NewService(checkout.ServiceParams{
		Gateway: client,
		State:   state,
		Logger:  logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(logg, client, state, authService, checkoutService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
