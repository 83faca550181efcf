package main

import (
	"net/http"
	"os"

	"kacameta/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"kacameta/internal/auth"
	"kacameta/internal/cache"
	"kacameta/internal/config"
	"kacameta/internal/db"
	"kacameta/internal/handler"
	"kacameta/internal/model"
	"kacameta/internal/repository"
	"kacameta/internal/router"
	"kacameta/internal/service"
	"kacameta/internal/upload"
)

// @title KacaMeta API
// @version 1.0
// @description Eyewear storefront with a public catalog and a role-gated admin back office.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(
		&model.Admin{},
		&model.Category{},
		&model.Product{},
		&model.Customer{},
		&model.Order{},
		&model.OrderItem{},
		&model.BotpressSession{},
		&model.PrescriptionConsultation{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	imageStore := upload.NewStore(cfg.UploadDir)

	// Repositories
	adminRepo := repository.NewAdminRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	botpressRepo := repository.NewBotpressRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.SessionTTL)

	// Services
	authService := service.NewAuthService(adminRepo, jwtService)
	adminService := service.NewAdminService(adminRepo)
	productService := service.NewProductService(productRepo, orderRepo, imageStore, cacheClient)
	categoryService := service.NewCategoryService(categoryRepo, productRepo)
	statsService := service.NewStatsService(productRepo, categoryRepo, orderRepo, cacheClient)
	botpressService := service.NewBotpressService(botpressRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, cfg.SessionTTL)
	adminHandler := handler.NewAdminHandler(adminService)
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	statsHandler := handler.NewStatsHandler(statsService)
	botpressHandler := handler.NewBotpressHandler(botpressService)
	configHandler := handler.NewConfigHandler(cfg.WhatsAppNumber)
	pageHandler := handler.NewPageHandler()

	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		adminHandler,
		productHandler,
		categoryHandler,
		statsHandler,
		botpressHandler,
		configHandler,
		pageHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
