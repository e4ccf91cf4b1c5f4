package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"foodbridge/internal/api/handlers"
	"foodbridge/internal/api/routes"
	"foodbridge/internal/middleware"
	"foodbridge/internal/utils"
	"foodbridge/internal/utils/storage"
	"foodbridge/pkg/charity"
	"foodbridge/pkg/donation"
	"foodbridge/pkg/jwt"
	"foodbridge/pkg/reservation"
	"foodbridge/pkg/restaurant"
	"foodbridge/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	restaurantRepository := restaurant.NewRestaurantRepository(db)
	charityRepository := charity.NewCharityRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	reservationRepository := reservation.NewReservationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	restaurantService := restaurant.NewRestaurantService(restaurantRepository, s3)
	charityService := charity.NewCharityService(charityRepository, s3)
	donationService := donation.NewDonationService(
		donationRepository,
		restaurantRepository,
		charityRepository,
		s3,
	)
	reservationService := reservation.NewReservationService(
		reservationRepository,
		charityRepository,
		restaurantRepository,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService, validator)
	charityHandler := handlers.NewCharityHandler(charityService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	reservationHandler := handlers.NewReservationHandler(reservationService, validator)

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		RestaurantHandler:  restaurantHandler,
		CharityHandler:     charityHandler,
		DonationHandler:    donationHandler,
		ReservationHandler: reservationHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
