package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"neonburro-api/internal/cart"
	"neonburro-api/internal/catalog"
	"neonburro-api/internal/checkout"
	"neonburro-api/internal/config"
	"neonburro-api/internal/db"
	"neonburro-api/internal/forms"
	"neonburro-api/internal/httpserver"
	"neonburro-api/internal/logger"
	"neonburro-api/internal/payment"
	"neonburro-api/internal/receipt"
	cartrepo "neonburro-api/internal/repository/cart"
	orderrepo "neonburro-api/internal/repository/order"
)

func main() {
	cfg := config.FromEnv()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()
	pool, err := db.ConnectPostgres(ctx, cfg.DBConnString)
	if err != nil {
		zlog.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	redisClient, err := db.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		zlog.Fatal("connect redis", zap.Error(err))
	}
	defer redisClient.Close()

	registry := catalog.Default()
	cartRepo := cartrepo.NewRedis(redisClient, cfg.CartTTL, zlog)
	cartService := cart.New(cartRepo, registry)
	sessions := cart.NewSessionManager(cfg.CartTTL)

	orderRepo := orderrepo.NewPostgres(pool)
	stripeProvider := payment.NewStripe(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	formsClient := forms.NewClient(cfg.FormsEndpointURL, zlog)
	checkoutService := checkout.New(stripeProvider, cartService, orderRepo, formsClient, zlog, cfg.HourlyRateCents)
	mailer := receipt.NewMailer(formsClient)

	srv := httpserver.New(cfg.HTTPAddr, zlog, httpserver.Deps{
		Catalog:     registry,
		CartSvc:     cartService,
		Sessions:    sessions,
		CheckoutSvc: checkoutService,
		OrderRepo:   orderRepo,
		Mailer:      mailer,
		Stripe:      stripeProvider,
		DB:          pool,
		CORSOrigins: cfg.CORSAllowOrigins,
	})

	serverErr := make(chan error, 1)
	go func() {
		zlog.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		zlog.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		zlog.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	} else {
		zlog.Info("server stopped")
	}
}
