package main // Entry point package

import (
	"context"
	"log" // Logging library
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework
	emw "github.com/labstack/echo/v4/middleware"

	"github.com/medman/medman/internal/config"
	"github.com/medman/medman/internal/database"
	"github.com/medman/medman/internal/handler"
	"github.com/medman/medman/internal/middleware"
	"github.com/medman/medman/internal/queue"
	"github.com/medman/medman/internal/repository"
	"github.com/medman/medman/internal/router"
	"github.com/medman/medman/internal/service"
)

func main() {
	_ = godotenv.Load() // Load .env if present; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("mongodb: %v", err)
	}

	users := repository.NewUserRepo(db)
	plans := repository.NewPlanRepo(db)
	reviews := repository.NewReviewRepo(db)

	// Username uniqueness lives in the schema; refuse to start without it.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}
	cancel()

	authSvc := service.NewAuthService(users, cfg.JWTSecret, cfg.AccessTTLMin, cfg.BcryptCost)
	planner := service.NewMistralPlanner(cfg.MistralAPIKey, cfg.MistralModel)
	medSvc := service.NewMedicationService(plans, reviews, planner, queue.Publisher{})

	e := echo.New()
	e.Use(emw.Logger())  // request logging
	e.Use(emw.Recover()) // panic recovery
	e.Use(emw.CORSWithConfig(emw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Redis is optional; with no client the cache middleware is a pass-through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, response cache disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e, handler.NewAuthHandler(authSvc), handler.NewMedicationHandler(medSvc), cfg.JWTSecret, cacheMW)

	// Optional background consumer that mirrors domain events into a log file.
	if strings.EqualFold(os.Getenv("EVENTS_CONSUMER"), "true") {
		go queue.StartEventConsumer()
	}

	addr := ":" + cfg.Port
	log.Printf("starting MedMan on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
