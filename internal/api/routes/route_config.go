package routes

import (
	"github.com/gofiber/fiber/v2"

	"foodbridge/domain"
	"foodbridge/internal/api/handlers"
	"foodbridge/internal/middleware"
	"foodbridge/pkg/jwt"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	RestaurantHandler  handlers.RestaurantHandler
	CharityHandler     handlers.CharityHandler
	DonationHandler    handlers.DonationHandler
	ReservationHandler handlers.ReservationHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Restaurant()
	c.Charity()
	c.Donation()
	c.Reservation()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Restaurant() {
	restaurant := c.App.Group("/api/v1/restaurants", c.Middleware.AuthMiddleware(c.JWTService))
	{
		restaurant.Post("", c.Middleware.OnlyRole(domain.RoleRestaurant), c.RestaurantHandler.CreateRestaurant)
		restaurant.Get("/me", c.Middleware.OnlyRole(domain.RoleRestaurant), c.RestaurantHandler.GetMyRestaurant)
	}
}

func (c *Config) Charity() {
	charity := c.App.Group("/api/v1/charities", c.Middleware.AuthMiddleware(c.JWTService))
	{
		charity.Post("", c.Middleware.OnlyRole(domain.RoleCharity), c.CharityHandler.CreateCharity)
		charity.Get("/me", c.Middleware.OnlyRole(domain.RoleCharity), c.CharityHandler.GetMyCharity)
		charity.Get("/nearby", c.CharityHandler.GetNearbyCharities)
	}
}

func (c *Config) Donation() {
	donation := c.App.Group("/api/v1/donations", c.Middleware.AuthMiddleware(c.JWTService))
	{
		// Discovery comes before the id route so "nearby" and "available"
		// are not swallowed by ":id".
		donation.Get("/available", c.DonationHandler.GetAvailableDonations)
		donation.Get("/nearby", c.DonationHandler.GetNearbyDonations)
		donation.Get("/my-donations", c.Middleware.OnlyRole(domain.RoleRestaurant), c.DonationHandler.GetMyDonations)

		donation.Post("", c.Middleware.OnlyRole(domain.RoleRestaurant), c.DonationHandler.CreateDonation)
		donation.Get("/:id", c.DonationHandler.GetDonationDetails)
		donation.Put("/:id", c.Middleware.OnlyRole(domain.RoleRestaurant), c.DonationHandler.UpdateDonation)
		donation.Delete("/:id", c.Middleware.OnlyRole(domain.RoleRestaurant), c.DonationHandler.DeleteDonation)

		donation.Post("/:id/images", c.Middleware.OnlyRole(domain.RoleRestaurant), c.DonationHandler.AddDonationImage)
		donation.Delete("/:id/images/:imageId", c.Middleware.OnlyRole(domain.RoleRestaurant), c.DonationHandler.RemoveDonationImage)
	}
}

func (c *Config) Reservation() {
	reservation := c.App.Group("/api/v1/reservations", c.Middleware.AuthMiddleware(c.JWTService))
	{
		reservation.Post("", c.Middleware.OnlyRole(domain.RoleCharity), c.ReservationHandler.CreateReservation)
		reservation.Get("/my-reservations", c.Middleware.OnlyRole(domain.RoleCharity), c.ReservationHandler.GetMyReservations)
		reservation.Get("/restaurant-reservations", c.Middleware.OnlyRole(domain.RoleRestaurant), c.ReservationHandler.GetRestaurantReservations)
		reservation.Delete("/:id", c.Middleware.OnlyRole(domain.RoleCharity), c.ReservationHandler.CancelReservation)
		reservation.Put("/:id/complete", c.Middleware.OnlyRole(domain.RoleRestaurant), c.ReservationHandler.CompleteReservation)
	}
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/v1/admin",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.OnlyRole(domain.RoleAdmin))
	{
		admin.Get("/donations", c.DonationHandler.AdminGetDonations)
		admin.Patch("/donations/:id/status", c.DonationHandler.AdminUpdateDonationStatus)
		admin.Delete("/donations/:id", c.DonationHandler.AdminDeleteDonation)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
