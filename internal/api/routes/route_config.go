package routes

import (
	"rotasol-backend/internal/api/handlers"
	"rotasol-backend/internal/middleware"
	"rotasol-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	DonationHandler  handlers.DonationHandler
	InventoryHandler handlers.InventoryHandler
	ContactHandler   handlers.ContactHandler
	LocationHandler  handlers.LocationHandler
	AdminHandler     handlers.AdminHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Donations()
	c.Inventory()
	c.Locations()
	c.Contacts()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetMe)
		user.Put("/photo", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdatePhoto)
		user.Delete("/photo", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.RemovePhoto)
	}
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/v1/donations", c.Middleware.AuthMiddleware(c.JWTService))
	donations.Post("", c.DonationHandler.SubmitDonation)
	donations.Get("", c.DonationHandler.GetMyDonations)
}

func (c *Config) Inventory() {
	c.App.Get("/api/v1/inventory", c.InventoryHandler.GetInventory)
	c.App.Get("/api/v1/conversions", c.InventoryHandler.GetConversions)
}

func (c *Config) Locations() {
	c.App.Get("/api/v1/collection-points", c.LocationHandler.GetCollectionPoints)

	locations := c.App.Group("/api/v1/locations", c.Middleware.AuthMiddleware(c.JWTService))
	locations.Post("", c.LocationHandler.SaveLocation)
	locations.Get("", c.LocationHandler.GetMyLocations)
}

func (c *Config) Contacts() {
	c.App.Post("/api/v1/contacts", c.ContactHandler.SubmitContact)
}

func (c *Config) Admin() {
	c.App.Post("/api/v1/admin/login", c.AdminHandler.Login)

	admin := c.App.Group(
		"/api/v1/admin",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.AdminMiddleware(),
	)
	admin.Get("/me", c.AdminHandler.GetMe)
	admin.Get("/stats", c.AdminHandler.GetStats)
	admin.Get("/charts", c.AdminHandler.GetCharts)
	admin.Get("/users", c.AdminHandler.GetUsers)
	admin.Get("/users/:id", c.AdminHandler.GetUserDetail)
	admin.Get("/donations", c.DonationHandler.GetAllDonations)
	admin.Delete("/donations/:id", c.DonationHandler.ConfirmDonation)
	admin.Get("/contacts", c.ContactHandler.GetContacts)
	admin.Put("/contacts/:id/reply", c.ContactHandler.ReplyContact)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
