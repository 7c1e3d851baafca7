package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adiwira/kasirpos/internal/application/service"
	"github.com/adiwira/kasirpos/internal/config"
	"github.com/adiwira/kasirpos/internal/infrastructure/database"
	infraRepo "github.com/adiwira/kasirpos/internal/infrastructure/repository"
	"github.com/adiwira/kasirpos/internal/presentation/http/handler"
	"github.com/adiwira/kasirpos/internal/presentation/http/routes"
	"github.com/adiwira/kasirpos/pkg/utils"
)

func main() {
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedDefaultData(db, cfg); err != nil {
		log.Fatalf("Failed to seed default data: %v", err)
	}

	ctx := context.Background()
	store := infraRepo.NewKVStore(db)

	inventoryRepo := infraRepo.NewInventoryRepository(store)
	salesRepo := infraRepo.NewSalesRepository(store)
	sequenceRepo := infraRepo.NewSequenceRepository(store)
	userRepo := infraRepo.NewUserRepository(store)
	sessionRepo := infraRepo.NewSessionRepository(store)
	settingsRepo := infraRepo.NewSettingsRepository(store)
	themeRepo := infraRepo.NewThemeRepository(store)

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	catalogService, err := service.NewCatalogService(ctx, inventoryRepo)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	ledgerService, err := service.NewLedgerService(ctx, salesRepo)
	if err != nil {
		log.Fatalf("Failed to load sales ledger: %v", err)
	}
	sequenceService, err := service.NewSequenceService(ctx, sequenceRepo, cfg.Shop.InitialOrderNo)
	if err != nil {
		log.Fatalf("Failed to load order sequence: %v", err)
	}
	authService, err := service.NewAuthService(ctx, userRepo, sessionRepo, jwtManager)
	if err != nil {
		log.Fatalf("Failed to load users: %v", err)
	}
	settingsService, err := service.NewSettingsService(ctx, settingsRepo, themeRepo)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	cartService := service.NewCartService(catalogService)
	checkoutService := service.NewCheckoutService(cartService, catalogService, sequenceService, ledgerService)
	backupService := service.NewBackupService(catalogService, ledgerService, authService, settingsService)
	reportService := service.NewReportService(ledgerService)
	dashboardService := service.NewDashboardService(catalogService, ledgerService, sequenceService)

	h := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Inventory: handler.NewInventoryHandler(catalogService),
		Cart:      handler.NewCartHandler(cartService, checkoutService),
		Checkout:  handler.NewCheckoutHandler(checkoutService, settingsService),
		Sales:     handler.NewSalesHandler(ledgerService, settingsService),
		Report:    handler.NewReportHandler(reportService),
		Backup:    handler.NewBackupHandler(backupService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	router := routes.Setup(h, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Starting %s on port %s", cfg.App.Name, cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
