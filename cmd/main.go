package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "users_api/docs"
	"users_api/internal/config"
	"users_api/internal/handlers"
	"users_api/internal/logger"
	"users_api/internal/server"
	"users_api/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title        Users API
// @version      1.0
// @description  Demo API with static health, index and user endpoints.
// @host         127.0.0.1:8000
// @BasePath     /
func main() {
	// load configs/config.yml + USERS_API_* env
	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get(logger.InfoLevel, logger.ConsoleFormat).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	// wire dependencies
	services := service.NewService()
	apiHandler := handlers.NewHandler(services, log, cfg.CORS)

	srv := &server.Server{}
	runHTTPServer(srv, cfg.Server, apiHandler, log)

	waitForShutdown(srv, log)
}

// runHTTPServer binds the listener, then serves in a separate goroutine.
func runHTTPServer(srv *server.Server, sc config.ServerConfig, handler *handlers.Handler, log *logger.Logger) {
	if err := srv.Listen(sc.Host, sc.Port, handler.InitRoutes()); err != nil {
		log.Fatalw("error starting server", "addr", server.Addr(sc.Host, sc.Port), "err", err)
	}
	log.Infow("backend server running", "url", "http://"+srv.ListenAddr())
	go func() {
		if err := srv.Serve(); err != nil {
			log.Fatalw("server stopped unexpectedly", "err", err)
		}
	}()
}

// waitForShutdown blocks until SIGINT/SIGTERM, then drains in-flight requests.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
