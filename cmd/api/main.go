package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ledgerUseCase "github.com/voyagehub/payment-ledger/internal/domain/usecase/ledger"
	walletUseCase "github.com/voyagehub/payment-ledger/internal/domain/usecase/wallet"

	"github.com/voyagehub/payment-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/voyagehub/payment-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/voyagehub/payment-ledger/internal/infrastructure/adapter/database"
	"github.com/voyagehub/payment-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/voyagehub/payment-ledger/internal/infrastructure/adapter/logger"
	"github.com/voyagehub/payment-ledger/internal/infrastructure/adapter/payment"
	"github.com/voyagehub/payment-ledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/voyagehub/payment-ledger/internal/infrastructure/adapter/time"
	"github.com/voyagehub/payment-ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)

	dbConfig := &database.Config{
		Driver:          "postgres",
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay.Seconds()),
	}

	tp := timeProvider.NewRealTimeProvider()

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	migrationMgr := migration.NewMigrationManagerWithTimeProvider(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	ledgerService := ledgerUseCase.NewLedgerService(uow, tp, appLogger, ledgerUseCase.Config{
		CommissionRatePercent: cfg.Ledger.CommissionRatePercent,
		SyncBookingStatus:     cfg.Ledger.SyncBookingStatus,
		CreditVendorOnSuccess: cfg.Ledger.CreditVendorOnSuccess,
	})

	walletRepo := repository.NewWalletRepository(dbManager.DB(), tp, appLogger)
	walletService := walletUseCase.NewWalletService(walletRepo, tp, appLogger)

	stripeGateway := payment.NewStripeGateway(cfg.Stripe.WebhookSecret, appLogger)

	webhookHandler := handler.NewWebhookHandler(stripeGateway, ledgerService, appLogger)
	transactionHandler := handler.NewTransactionHandler(ledgerService, appLogger)
	walletHandler := handler.NewWalletHandler(walletService, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, webhookHandler, transactionHandler, walletHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	_ = appLogger.Flush()
	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or PL_DB_HOST environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or PL_DB_USERNAME environment variable)")
	}
	if cfg.Database.Password == "" {
		missingConfigs = append(missingConfigs, "database.password (or PL_DB_PASSWORD environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or PL_DB_NAME environment variable)")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Stripe.WebhookSecret == "" {
		missingConfigs = append(missingConfigs, "stripe.webhookSecret (PL_STRIPE_WEBHOOK_SECRET environment variable)")
	}

	if cfg.Ledger.CommissionRatePercent < 0 || cfg.Ledger.CommissionRatePercent > 100 {
		return fmt.Errorf("invalid ledger.commissionRatePercent: %d, must be between 0 and 100",
			cfg.Ledger.CommissionRatePercent)
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
