package main

import (
	"context"

	apiConfig "pos/src/api/config"
	authUsecase "pos/src/auth/application/usecase"
	authClient "pos/src/auth/infrastructure/client"
	authController "pos/src/auth/infrastructure/controller"
	checkoutUsecase "pos/src/checkout/application/usecase"
	checkoutCache "pos/src/checkout/infrastructure/cache"
	checkoutClient "pos/src/checkout/infrastructure/client"
	checkoutController "pos/src/checkout/infrastructure/controller"
	checkoutPersistence "pos/src/checkout/infrastructure/persistence"
	dashboardUsecase "pos/src/dashboard/application/usecase"
	dashboardClient "pos/src/dashboard/infrastructure/client"
	dashboardController "pos/src/dashboard/infrastructure/controller"
	inventoryUsecase "pos/src/inventory/application/usecase"
	inventoryClient "pos/src/inventory/infrastructure/client"
	inventoryController "pos/src/inventory/infrastructure/controller"
	invoicesUsecase "pos/src/invoices/application/usecase"
	invoicesClient "pos/src/invoices/infrastructure/client"
	invoicesController "pos/src/invoices/infrastructure/controller"
	providersUsecase "pos/src/providers/application/usecase"
	providersClient "pos/src/providers/infrastructure/client"
	providersController "pos/src/providers/infrastructure/controller"
	"pos/src/shared/infrastructure/config"
	"pos/src/shared/infrastructure/middleware"
	"pos/src/shared/infrastructure/token"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	// .env es opcional; en producción todo llega por variables de entorno
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Error loading configuration")
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	config.SetupSharedMiddleware(router, config.DefaultSharedConfig())

	if cfg.PrometheusEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
		logrus.Info("📊 Prometheus metrics habilitadas en /metrics")
	}

	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)

	v1 := router.Group("/api/v1")
	apiConfig.SetupAPIModule(router, v1, apiConfig.DefaultAPIConfig())

	setupAuthModule(v1, cfg, tokens)

	// Todo lo demás exige el token de sesión del vendedor
	protected := v1.Group("")
	protected.Use(middleware.RequireSeller(tokens))

	invClient := inventoryClient.NewInventoryAPIClient(cfg.BackendAPIURL, cfg.BackendTimeout)
	catalog := checkoutCache.NewCatalogCache(invClient)

	// Precarga best-effort del catálogo; si el API remoto no responde ahora,
	// la caché se recarga en el primer uso
	if err := catalog.Refresh(context.Background()); err != nil {
		logrus.WithError(err).Warn("⚠️  Could not warm up catalog cache")
	} else {
		logrus.Infof("📦 Catálogo precargado: %d productos", catalog.Len())
	}

	setupCheckoutModule(protected, cfg, catalog)
	setupInventoryModule(protected, invClient)
	setupProvidersModule(protected, cfg)
	setupInvoicesModule(protected, cfg)
	setupDashboardModule(protected, cfg)

	logrus.Infof("🚀 POS service escuchando en el puerto %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("Error starting server")
	}
}

// setupAuthModule registra login y registro de vendedores (rutas abiertas)
func setupAuthModule(v1 *gin.RouterGroup, cfg config.Config, tokens *token.Service) {
	client := authClient.NewAuthAPIClient(cfg.BackendAPIURL, cfg.BackendTimeout)
	controller := authController.NewAuthController(
		authUsecase.NewLoginUseCase(client, tokens),
		authUsecase.NewRegisterUseCase(client),
	)
	controller.RegisterRoutes(v1)
}

// setupCheckoutModule registra el punto de venta: sesiones, carrito y venta
func setupCheckoutModule(router *gin.RouterGroup, cfg config.Config, catalog *checkoutCache.CatalogCache) {
	sessionRepo := checkoutPersistence.NewSessionMemoryRepository()
	billing := checkoutClient.NewBillingClient(cfg.BackendAPIURL, cfg.BackendTimeout)

	controller := checkoutController.NewCheckoutController(
		checkoutUsecase.NewListCatalogUseCase(catalog),
		checkoutUsecase.NewCreateSessionUseCase(sessionRepo),
		checkoutUsecase.NewGetCartUseCase(sessionRepo),
		checkoutUsecase.NewAddItemUseCase(sessionRepo, catalog),
		checkoutUsecase.NewUpdateQuantityUseCase(sessionRepo),
		checkoutUsecase.NewRemoveItemUseCase(sessionRepo),
		checkoutUsecase.NewSetCustomerUseCase(sessionRepo),
		checkoutUsecase.NewSetPaymentMethodUseCase(sessionRepo),
		checkoutUsecase.NewFinalizeSaleUseCase(sessionRepo, billing, catalog),
		checkoutUsecase.NewDiscardSessionUseCase(sessionRepo),
	)
	controller.RegisterRoutes(router)
}

// setupInventoryModule registra el CRUD de productos del inventario remoto
func setupInventoryModule(router *gin.RouterGroup, client *inventoryClient.InventoryAPIClient) {
	controller := inventoryController.NewInventoryController(
		inventoryUsecase.NewListProductsUseCase(client),
		inventoryUsecase.NewSaveProductUseCase(client),
		inventoryUsecase.NewDeleteProductUseCase(client),
	)
	controller.RegisterRoutes(router)
}

// setupProvidersModule registra el CRUD de proveedores
func setupProvidersModule(router *gin.RouterGroup, cfg config.Config) {
	client := providersClient.NewProviderAPIClient(cfg.BackendAPIURL, cfg.BackendTimeout)
	controller := providersController.NewProviderController(
		providersUsecase.NewListProvidersUseCase(client),
		providersUsecase.NewSaveProviderUseCase(client),
		providersUsecase.NewDeleteProviderUseCase(client),
	)
	controller.RegisterRoutes(router)
}

// setupInvoicesModule registra el historial de facturas
func setupInvoicesModule(router *gin.RouterGroup, cfg config.Config) {
	client := invoicesClient.NewInvoiceAPIClient(cfg.BackendAPIURL, cfg.BackendTimeout)
	controller := invoicesController.NewInvoiceController(
		invoicesUsecase.NewListInvoicesUseCase(client),
	)
	controller.RegisterRoutes(router)
}

// setupDashboardModule registra el tablero de indicadores
func setupDashboardModule(router *gin.RouterGroup, cfg config.Config) {
	client := dashboardClient.NewDashboardAPIClient(cfg.BackendAPIURL, cfg.BackendTimeout)
	controller := dashboardController.NewDashboardController(
		dashboardUsecase.NewGetDashboardUseCase(client),
	)
	controller.RegisterRoutes(router)
}
