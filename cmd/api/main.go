package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "mortgage-rates/internal/adapter/http"
	"mortgage-rates/internal/adapter/middleware"
	"mortgage-rates/internal/adapter/repository/mysql"
	"mortgage-rates/internal/config"
	"mortgage-rates/internal/infrastructure/cache"
	"mortgage-rates/internal/infrastructure/db"
	"mortgage-rates/internal/logging"
	lenderuc "mortgage-rates/internal/usecase/lender"
	quoteuc "mortgage-rates/internal/usecase/quote"
	rateuc "mortgage-rates/internal/usecase/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.AppEnv)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	gdb, err := db.OpenGorm(cfg.MySQLDSN(), cfg.IsDevelopment(), logger)
	if err != nil {
		return err
	}
	if sqlDB, err := gdb.DB(); err == nil {
		defer sqlDB.Close()
	}
	if cfg.AutoMigrate {
		if err := db.AutoMigrate(gdb); err != nil {
			return err
		}
		logger.Info("schema migrated")
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		return err
	}
	defer rdb.Close()

	lenderRepo := mysql.NewLenderRepository(gdb)
	rateRepo := mysql.NewRateRepository(gdb)
	catalog := mysql.NewCatalogRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	handlers := httpadp.Handlers{
		Health:  httpadp.NewHandler(),
		Quotes:  httpadp.NewQuoteHandler(quoteuc.NewUsecase(catalog, logger), logger),
		Lenders: httpadp.NewLenderHandler(lenderuc.NewUsecase(lenderRepo, tx), logger),
		Rates:   httpadp.NewRateHandler(rateuc.NewUsecase(rateRepo, lenderRepo, tx), logger),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.Use(
		echomw.Recover(),
		echomw.RequestID(),
		middleware.RequestLogger(logger),
		echomw.ContextTimeout(cfg.RequestTimeout),
	)

	httpadp.RegisterRoutes(e, handlers, httpadp.RouteMiddleware{
		QuoteLimiter: middleware.RateLimit(rdb, cfg.QuoteRateLimit, cfg.QuoteRateWindow, logger),
		Admin: []echo.MiddlewareFunc{
			middleware.AdminAuth([]byte(cfg.AdminJWTSecret)),
			middleware.IdempotencyMiddleware(rdb, cfg.IdempTTL(), logger),
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.AppPort
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.AppEnv))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
