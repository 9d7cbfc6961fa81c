package main

import (
	"log"
	"strings"
	"time"

	"github.com/JoWinner/car-rental/internal/config"
	"github.com/JoWinner/car-rental/internal/database"
	"github.com/JoWinner/car-rental/internal/handlers"
	"github.com/JoWinner/car-rental/internal/middleware"
	"github.com/JoWinner/car-rental/internal/migrations"
	"github.com/JoWinner/car-rental/internal/redis"
	"github.com/JoWinner/car-rental/internal/repository"
	"github.com/JoWinner/car-rental/internal/s3"
	"github.com/JoWinner/car-rental/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Initialize S3 uploader
	uploader, err := s3.NewUploader(cfg.S3)
	if err != nil {
		log.Fatal("Failed to initialize S3 uploader:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	carRepo := repository.NewCarRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	saleOrderRepo := repository.NewSaleOrderRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	carService := services.NewCarService(carRepo, redisClient)
	bookingService := services.NewBookingService(bookingRepo, carRepo, redisClient)
	saleOrderService := services.NewSaleOrderService(saleOrderRepo, carRepo)
	analyticsService := services.NewAnalyticsService(bookingRepo, carRepo, userRepo, redisClient)

	// Initialize handlers
	jwtSecret := []byte(cfg.JWTSecret)
	tokenTTL := time.Duration(cfg.JWTExpiryHours) * time.Hour
	authHandler := handlers.NewAuthHandler(userService, jwtSecret, tokenTTL)
	carHandler := handlers.NewCarHandler(carService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	shopHandler := handlers.NewShopHandler(carService, saleOrderService)
	profileHandler := handlers.NewProfileHandler(userService, bookingService)
	adminHandler := handlers.NewAdminHandler(userService, bookingService, saleOrderService, analyticsService)
	uploadHandler := handlers.NewUploadHandler(uploader)

	// Setup routes
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authenticate := middleware.Authenticate(jwtSecret, userService)
	optionalAuth := middleware.OptionalAuthenticate(jwtSecret, userService)

	api := router.Group("/api/v1")
	{
		// Authentication
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public fleet browsing
		api.GET("/cars", carHandler.ListCars)
		api.GET("/cars/:carId", carHandler.GetCar)

		// Public shop
		api.GET("/shop", shopHandler.ListCarsForSale)
		api.GET("/shop/:carId", shopHandler.GetCarForSale)
		api.POST("/shop/orders", optionalAuth, shopHandler.CreateOrder)
		api.GET("/shop/orders", authenticate, shopHandler.GetOrders)

		// Bookings
		bookings := api.Group("/bookings", authenticate)
		{
			bookings.POST("", bookingHandler.CreateBooking)
			bookings.GET("", bookingHandler.GetBookings)
			bookings.GET("/:bookingId", bookingHandler.GetBooking)
			bookings.PATCH("/:bookingId", bookingHandler.UpdateStatus)
			bookings.PATCH("/:bookingId/payment", middleware.RequireAdmin(), bookingHandler.UpdatePayment)
		}

		// Profile
		profile := api.Group("/profile", authenticate)
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PATCH("", profileHandler.UpdateProfile)
		}

		// Admin back-office
		admin := api.Group("/admin", authenticate, middleware.RequireAdmin())
		{
			admin.GET("/dashboard", adminHandler.Dashboard)
			admin.GET("/bookings", adminHandler.GetAllBookings)
			admin.GET("/users", adminHandler.GetAllUsers)
			admin.PATCH("/users/:userId", adminHandler.UpdateUser)
			admin.GET("/sale-orders", adminHandler.GetAllOrders)
			admin.PATCH("/sale-orders/:orderId", adminHandler.UpdateOrderStatus)

			admin.POST("/cars", carHandler.CreateCar)
			admin.PATCH("/cars/:carId", carHandler.UpdateCar)
			admin.DELETE("/cars/:carId", carHandler.DeleteCar)

			admin.POST("/uploads/image", uploadHandler.UploadImage)
			admin.POST("/uploads/video", uploadHandler.UploadVideo)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
