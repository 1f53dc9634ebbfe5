package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/stzheng716/sharebnb-backend/controllers"
	"github.com/stzheng716/sharebnb-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires all controllers onto the gin engine. uploadDir, when
// non-empty, is served statically at /uploads for the disk file store.
func SetupRouter(
	ac *controllers.AuthController,
	uc *controllers.UserController,
	lc *controllers.ListingController,
	bc *controllers.BookingController,
	mc *controllers.MessageController,
	uploadDir string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	if uploadDir != "" {
		r.Static("/uploads", uploadDir)
	}

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/signup", ac.Signup)
		auth.POST("/login", ac.Login)
	}

	users := r.Group("/users")
	{
		users.GET("", uc.GetUsers)
		users.GET("/:username", uc.GetUser)
		users.PATCH("/:username", middleware.RequireAuth(), uc.UpdateUser)
		users.DELETE("/:username", middleware.RequireAuth(), uc.DeleteUser)
	}

	listings := r.Group("/listings")
	{
		listings.GET("", lc.GetListings)
		listings.POST("", lc.CreateListing)
		listings.GET("/:id", lc.GetListing)
		listings.PATCH("/:id", lc.UpdateListing)
		listings.DELETE("/:id", middleware.RequireAuth(), lc.DeleteListing)
	}

	bookings := r.Group("/bookings")
	{
		bookings.GET("", bc.GetBookings)
		bookings.POST("", bc.CreateBooking)
		bookings.GET("/:id", bc.GetBooking)
		bookings.DELETE("/:id", middleware.RequireAuth(), bc.DeleteBooking)
	}

	messages := r.Group("/messages")
	{
		messages.POST("", mc.CreateMessage)
		messages.GET("/:id", mc.GetMessage)
	}

	return r
}
