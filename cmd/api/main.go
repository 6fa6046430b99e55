package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"payfast-store-demo/internal/client"
	"payfast-store-demo/internal/config"
	"payfast-store-demo/internal/logging"
	"payfast-store-demo/internal/repository"
	"payfast-store-demo/internal/server"
	"payfast-store-demo/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Log)

	db := client.InitSqliteClient(cfg.DatabasePath)
	ping := pingFunc(db)

	emailSender := client.NewEmailSender(cfg.SMTP)

	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	eventRepo := repository.NewNotificationEventRepository(db)

	paymentService := service.NewPaymentService(cfg.Payfast, orderRepo, cartRepo, eventRepo, emailSender)
	catalogService := service.NewCatalogService(productRepo, ping)
	cartService := service.NewCartService(cartRepo, productRepo, ping)
	orderService := service.NewOrderService(orderRepo, cartRepo)
	contactService := service.NewContactService(emailSender)

	catalogService.EnsureSeeded(context.Background())

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(cfg, paymentService, catalogService, cartService, orderService, contactService, ping)

	slog.Info("starting HTTP server",
		"addr", serverAddr,
		"environment", cfg.Environment.Name,
		"sandbox", cfg.Payfast.Sandbox,
	)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	slog.Info("signal received, starting graceful shutdown")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
		os.Exit(1)
	}
}

func pingFunc(db *gorm.DB) service.PingFunc {
	return func(ctx context.Context) error {
		return client.PingDB(ctx, db)
	}
}
