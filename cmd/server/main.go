package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/finbridge/cardproc/internal/adapter/cobol"
	httpAdapter "github.com/finbridge/cardproc/internal/adapter/http"
	"github.com/finbridge/cardproc/internal/adapter/http/handler"
	"github.com/finbridge/cardproc/internal/adapter/repository/flatfile"
	"github.com/finbridge/cardproc/internal/infrastructure/config"
	"github.com/finbridge/cardproc/internal/infrastructure/logger"
	"github.com/finbridge/cardproc/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	// Initialize stores
	cardStore := flatfile.NewCardStore(cfg.CardDataFile)
	customerLog := flatfile.NewCustomerLog(cfg.CustomerLogFile)
	statementFile := flatfile.NewStatementFile(cfg.StatementFile)
	idGen := flatfile.NewULIDGenerator()

	// Initialize batch program driver
	runner := cobol.NewRunner(cobol.Config{
		BinaryPath:     cfg.CobolBinary,
		InputDelay:     cfg.CobolInputDelay,
		SessionTimeout: cfg.CobolSessionTimeout,
	}, appLogger)
	driver := cobol.NewDriver(runner, statementFile, cfg.CardDataFile, appLogger)

	// Initialize use cases
	validateUC := usecase.NewValidateUseCase(driver, appLogger)
	interestUC := usecase.NewInterestUseCase(driver, cardStore, appLogger)
	statementUC := usecase.NewStatementUseCase(driver, cardStore, nil, appLogger)
	listUC := usecase.NewListUseCase(driver, cardStore, appLogger)
	signupUC := usecase.NewSignupUseCase(cardStore, customerLog, idGen, nil, appLogger)
	statusUC := usecase.NewStatusUseCase(driver)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		CardHandler:   handler.NewCardHandler(validateUC, interestUC, statementUC, listUC),
		SignupHandler: handler.NewSignupHandler(signupUC),
		StatusHandler: handler.NewStatusHandler(statusUC),
		HealthHandler: handler.NewHealthHandler(),
		Logger:        appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().
			Str("port", cfg.HTTPPort).
			Str("cobol_binary", cfg.CobolBinary).
			Bool("cobol_available", driver.Available()).
			Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
