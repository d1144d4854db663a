package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freelance-desk/internal/app"
	"freelance-desk/internal/config"
	"freelance-desk/internal/database/seeder"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	container, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 30*time.Second)
	if err := seeder.EnsureSchema(schemaCtx, container.DB); err != nil {
		cancelSchema()
		log.Fatalf("failed to ensure schema: %v", err)
	}
	cancelSchema()

	bootstrap, cleanup, err := app.Bootstrap(container, logger)
	if err != nil {
		log.Fatalf("failed to bootstrap app: %v", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			log.Printf("cleanup error: %v", err)
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		log.Fatalf("invalid HTTP port: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- bootstrap.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(ctx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}
