package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/corray333/storefront/internal/dal/postgres"
	"github.com/corray333/storefront/internal/dal/redis"
	brandrepo "github.com/corray333/storefront/internal/dal/repositories/brand/postgres"
	cartrepo "github.com/corray333/storefront/internal/dal/repositories/cart/redis"
	orderrepo "github.com/corray333/storefront/internal/dal/repositories/order/postgres"
	orderitemrepo "github.com/corray333/storefront/internal/dal/repositories/orderitem/postgres"
	productrepo "github.com/corray333/storefront/internal/dal/repositories/product/postgres"
	profilerepo "github.com/corray333/storefront/internal/dal/repositories/profile/postgres"
	"github.com/corray333/storefront/internal/otel"
	"github.com/corray333/storefront/internal/service/services/cartsvc"
	"github.com/corray333/storefront/internal/service/services/catalogsvc"
	"github.com/corray333/storefront/internal/service/services/checkoutsvc"
	"github.com/corray333/storefront/internal/service/services/invoicesvc"
	"github.com/corray333/storefront/internal/service/services/ordersvc"
	httptransport "github.com/corray333/storefront/internal/transport/http"
)

// App represents the application.
type App struct {
	transport      *httptransport.HTTPTransport
	postgresClient *postgres.Client
	redisClient    *redis.Client
	otelController *otel.OtelController
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	otelController := otel.MustInitOtel()

	postgresClient := postgres.MustNewClient()
	redisClient := redis.MustNewClient()

	orderRepo := orderrepo.NewPostgresOrderRepository(postgresClient.Pool())
	orderItemRepo := orderitemrepo.NewPostgresOrderItemRepository(postgresClient.Pool())
	productRepo := productrepo.NewPostgresProductRepository(postgresClient.Pool())
	brandRepo := brandrepo.NewPostgresBrandRepository(postgresClient.Pool())
	profileRepo := profilerepo.NewPostgresProfileRepository(postgresClient.Pool())
	cartStore := cartrepo.NewRedisCartStore(redisClient.Redis())

	catalogSvc := catalogsvc.MustNewCatalogService(
		catalogsvc.WithProductRepository(productRepo),
		catalogsvc.WithBrandRepository(brandRepo),
	)

	cartSvc := cartsvc.MustNewCartService(
		cartsvc.WithCartStore(cartStore),
		cartsvc.WithProductRepository(productRepo),
	)

	checkoutSvc := checkoutsvc.MustNewCheckoutService(
		checkoutsvc.WithPostgresClient(postgresClient),
		checkoutsvc.WithCartStore(cartStore),
		checkoutsvc.WithOrderRepository(orderRepo),
		checkoutsvc.WithProductRepository(productRepo),
		checkoutsvc.WithProfileRepository(profileRepo),
	)

	orderSvc := ordersvc.MustNewOrderService(
		ordersvc.WithOrderRepository(orderRepo),
		ordersvc.WithOrderItemRepository(orderItemRepo),
		ordersvc.WithProductRepository(productRepo),
	)

	invoiceSvc := invoicesvc.MustNewInvoiceService(
		invoicesvc.WithOrderRepository(orderRepo),
		invoicesvc.WithOrderItemRepository(orderItemRepo),
		invoicesvc.WithProductRepository(productRepo),
	)

	transport := httptransport.NewHTTPTransport(catalogSvc, cartSvc, checkoutSvc, orderSvc, invoiceSvc)
	transport.RegisterRoutes()

	return &App{
		transport:      transport,
		postgresClient: postgresClient,
		redisClient:    redisClient,
		otelController: otelController,
	}
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	<-stop
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	a.postgresClient.Close()
	slog.Info("Database connection closed gracefully")

	if err := a.redisClient.Close(); err != nil {
		slog.Error("Redis connection close error", "error", err)
	} else {
		slog.Info("Redis connection closed gracefully")
	}

	if err := a.otelController.Shutdown(); err != nil {
		slog.Error("Trace provider shutdown error", "error", err)
	}

	slog.Info("Application shutdown complete")
}
