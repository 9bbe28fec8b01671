package main // Entry point package

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/geoshapes/shape-api/internal/config"
	"github.com/geoshapes/shape-api/internal/database"
	"github.com/geoshapes/shape-api/internal/handler"
	"github.com/geoshapes/shape-api/internal/logger"
	"github.com/geoshapes/shape-api/internal/middleware"
	"github.com/geoshapes/shape-api/internal/queue"
	"github.com/geoshapes/shape-api/internal/repository"
	"github.com/geoshapes/shape-api/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load()
	log := logger.New(cfg.Env)

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	rects := repository.NewRectangleRepo(db)
	triangles := repository.NewTriangleRepo(db)
	diamonds := repository.NewDiamondRepo(db)

	events := queue.NewPublisher(log)

	h := router.Handlers{
		Auth:       handler.NewAuthHandler(cfg, users),
		Users:      handler.NewUserHandler(cfg, users),
		Rectangles: handler.NewRectangleHandler(rects, events),
		Squares:    handler.NewSquareHandler(rects, events),
		Triangles:  handler.NewTriangleHandler(triangles, events),
		Diamonds:   handler.NewDiamondHandler(diamonds, events),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLogger(log))
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), config.NewRedisClient()))

	router.RegisterRoutes(e)
	router.RegisterAPI(e, h, users, users)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("shape API startup")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
