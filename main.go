package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"kajianku_backend/internals/configs"
	"kajianku_backend/internals/features/kajian/service"
	"kajianku_backend/internals/features/kajian/views"
	middlewares "kajianku_backend/internals/middlewares"
	routes "kajianku_backend/internals/route"
	routeDetails "kajianku_backend/internals/route/details"
)

func main() {
	cfg := configs.LoadEnv()

	logger, err := configs.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("✅ Config dimuat", zap.String("source", cfg.EnvSource), zap.String("sheet", cfg.SheetURL))

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		Views:                 views.NewEngine(),
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          cfg.SheetTimeout + 15*time.Second,
		IdleTimeout:           90 * time.Second,
	})

	middlewares.SetupMiddlewares(app, cfg, logger)

	// 📄 Sheet remote + sesi view per browser
	store := service.NewSheetClient(cfg.SheetURL, cfg.SheetTimeout)
	registry := service.NewSessionRegistry(store, logger.Named("view"), cfg.SessionIdleTTL)
	if err := registry.StartReaper(cfg.SessionReaperCron); err != nil {
		logger.Fatal("❌ Gagal menjadwalkan session reaper", zap.Error(err))
	}

	sessions := session.New(session.Config{
		Expiration:     cfg.SessionIdleTTL,
		KeyLookup:      "cookie:" + cfg.SessionCookieName,
		KeyGenerator:   uuid.NewString,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.SessionCookieHTTPS,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})

	// ✅ Routes
	routes.SetupRoutes(app, routeDetails.KajianDeps{
		Store:        store,
		Registry:     registry,
		Sessions:     sessions,
		MapsBase:     cfg.MapsSearchBase,
		Logger:       logger,
		WriteLimiter: middlewares.WriteRateLimiter(10, time.Minute),
		PageLimiter:  middlewares.PageRateLimiter(30, time.Minute),
	})

	// Start server non-blocking
	go func() {
		logger.Info("✅ Listening", zap.String("port", cfg.Port))
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown + tutup semua view
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	registry.Stop()
	logger.Info("👋 Server berhenti")
}
