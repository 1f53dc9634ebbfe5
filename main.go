package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/stzheng716/sharebnb-backend/config"
	"github.com/stzheng716/sharebnb-backend/controllers"
	"github.com/stzheng716/sharebnb-backend/repositories"
	"github.com/stzheng716/sharebnb-backend/routes"
	"github.com/stzheng716/sharebnb-backend/services"
	"github.com/stzheng716/sharebnb-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Println("warning: JWT_SECRET is not set, using insecure default")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("Database connection established and migrations applied")

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	listingRepo := repositories.NewListingRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	fileRepo := repositories.NewFileRepository(db)
	geoCacheRepo := repositories.NewGeocodeCacheRepository(db)

	// Image storage: remote bucket endpoint when configured, local disk otherwise.
	var store services.FileStore
	uploadDir := ""
	if endpoint := os.Getenv("UPLOAD_URL"); endpoint != "" {
		store = services.NewRemoteStore(endpoint, utils.EnvOrDefault("UPLOAD_REGION", "us-west-1"))
	} else {
		uploadDir = utils.EnvOrDefault("UPLOAD_DIR", "uploads")
		store = services.NewDiskStore(uploadDir, utils.EnvOrDefault("PUBLIC_BASE_URL", "http://localhost:8080"))
	}

	geocoder := services.NewGeocodeService(
		geoCacheRepo,
		utils.EnvOrDefault("GEOCODE_URL", "https://nominatim.openstreetmap.org"),
	)

	// Services
	userService := services.NewUserService(userRepo, listingRepo, bookingRepo, messageRepo)
	listingService := services.NewListingService(listingRepo, userRepo, bookingRepo, messageRepo, fileRepo, store, geocoder)
	bookingService := services.NewBookingService(bookingRepo, userRepo, listingRepo)
	messageService := services.NewMessageService(messageRepo, userRepo, listingRepo)

	// Controllers
	authController := controllers.NewAuthController(userService)
	userController := controllers.NewUserController(userService)
	listingController := controllers.NewListingController(listingService)
	bookingController := controllers.NewBookingController(bookingService)
	messageController := controllers.NewMessageController(messageService)

	router := routes.SetupRouter(
		authController,
		userController,
		listingController,
		bookingController,
		messageController,
		uploadDir,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
