package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/carhive/storefront/internal/checkout"
	"github.com/carhive/storefront/internal/handlers"
	"github.com/carhive/storefront/internal/middleware"
	"github.com/carhive/storefront/internal/rental"
	"github.com/carhive/storefront/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not loaded: %v", err)
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	apiURL := os.Getenv("RENTAL_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080/api"
	}
	api := rental.NewClient(apiURL)

	// Initialize Redis for session storage
	if err := services.InitRedis(); err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}

	// Initialize WebSocket hub for booking event pushes
	hub := services.NewHub()
	go hub.Run()

	initiator := checkout.NewInitiator(api, checkout.CardProvider{})

	// Initialize router
	r := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Routes
	apiGroup := r.Group("/api")
	{
		// Public routes
		auth := apiGroup.Group("/auth")
		{
			auth.POST("/register", handlers.Register(api))
			auth.POST("/login", handlers.Login(api))
		}

		// Catalog is browsable without a session
		cars := apiGroup.Group("/cars")
		{
			cars.GET("", handlers.ListCars(api))
			cars.GET("/home", handlers.Home(api))
			cars.GET("/:id", handlers.CarDetail(api))
		}

		// Protected routes
		protected := apiGroup.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/auth/logout", handlers.Logout())

			// WebSocket connection for booking event pushes
			protected.GET("/ws", handlers.WebSocketHandler(hub))

			profile := protected.Group("/profile")
			{
				profile.GET("", handlers.Profile())
				profile.POST("/licence", handlers.UploadLicence(api))
			}

			bookings := protected.Group("/bookings")
			{
				bookings.POST("", handlers.CreateBooking(api))
				bookings.GET("/my", handlers.MyBookings(api))
				bookings.GET("/:id", handlers.BookingDetail(api))
				bookings.PUT("/:id/cancel", handlers.CancelBooking(api, hub))
			}

			co := protected.Group("/checkout")
			{
				co.GET("/:bookingId", handlers.CheckoutSummary(api))
				co.POST("/:bookingId/pay", handlers.Pay(api, initiator, hub))
			}

			// Admin moderation
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/bookings", handlers.AllBookings(api))
				admin.PUT("/bookings/:id/status/:status", handlers.UpdateBookingStatus(api, hub))
				admin.GET("/pending-admins", handlers.PendingAdmins(api))
				admin.POST("/approve-admin/:id", handlers.ApproveAdmin(api))
			}
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
