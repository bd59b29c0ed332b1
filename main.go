package main

import (
	"crypto/sha256"
	"encoding/base64"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"gocafe/internal/database"
	"gocafe/internal/handlers"
	"gocafe/internal/middleware"
	"gocafe/internal/repositories"
	"gocafe/internal/services"
	"gocafe/pkg/staticmap"
	"gocafe/templates"
)

// NewApp builds the Fiber application: configuration, database, session
// store, map client, and all routes. Configuration comes from environment
// variables with documented defaults.
func NewApp() (*fiber.App, error) {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_URL", "cafe.db") // sqlite file; a postgres DSN switches drivers
	viper.SetDefault("SECRET_KEY", "shhhh")
	viper.SetDefault("MAPQUEST_API_KEY", "")
	viper.SetDefault("STATIC_ROOT", "./static")
	viper.AutomaticEnv()

	// --- Database ---
	db, err := database.Open(viper.GetString("DATABASE_URL"))
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	// --- Repositories ---
	cityRepo := repositories.NewGORMCityRepository(db)
	cafeRepo := repositories.NewGORMCafeRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	likeRepo := repositories.NewGORMLikeRepository(db)

	// --- Static map client ---
	staticRoot := viper.GetString("STATIC_ROOT")
	mapClient, err := staticmap.NewClient(staticmap.Config{
		APIKey:     viper.GetString("MAPQUEST_API_KEY"),
		StaticRoot: staticRoot,
	})
	if err != nil {
		return nil, err
	}

	// --- Services ---
	cafeService := services.NewCafeService(cafeRepo, cityRepo, mapClient)
	authService := services.NewAuthService(userRepo)
	likeService := services.NewLikeService(likeRepo, userRepo, cafeRepo)

	// --- Views ---
	engine := html.NewFileSystem(http.FS(templates.FS), ".html")
	engine.AddFunc("hasID", func(ids []uint, id uint) bool {
		for _, v := range ids {
			if v == id {
				return true
			}
		}
		return false
	})

	// --- Fiber app ---
	app := fiber.New(fiber.Config{
		Views: engine,
	})

	// --- Middleware ---
	app.Use(logger.New()) // Request logger
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: cookieKey(viper.GetString("SECRET_KEY")),
	}))

	store := middleware.NewStore()
	// Resolve the current user once per request, before any handler runs.
	app.Use(middleware.LoadUser(store, userRepo))

	// --- Static files (images, generated maps, scripts) ---
	app.Static("/static", staticRoot)

	// --- Routes ---
	handlers.NewHomeHandler(store).RegisterRoutes(app)
	handlers.NewCafeHandler(cafeService, likeService, store).RegisterRoutes(app)
	handlers.NewAuthHandler(authService, store).RegisterRoutes(app)
	handlers.NewProfileHandler(authService, likeService, store).RegisterRoutes(app)
	handlers.NewLikeAPIHandler(likeService).RegisterRoutes(app)

	// Any unmatched path gets the 404 page.
	app.Use(handlers.NotFound(store))

	return app, nil
}

// cookieKey derives the cookie-encryption key from the configured session
// secret.
func cookieKey(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app, err := NewApp()
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	appPort := viper.GetString("APP_PORT")
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
