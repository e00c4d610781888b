package config

import (
	"os"
	"time"

	"rotasol-backend/internal/api/handlers"
	"rotasol-backend/internal/api/routes"
	"rotasol-backend/internal/middleware"
	"rotasol-backend/internal/utils"
	"rotasol-backend/internal/utils/storage"
	"rotasol-backend/pkg/contact"
	"rotasol-backend/pkg/donation"
	"rotasol-backend/pkg/inventory"
	"rotasol-backend/pkg/jwt"
	"rotasol-backend/pkg/location"
	"rotasol-backend/pkg/report"
	"rotasol-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
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
		TimeZone:   "America/Sao_Paulo",
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
	donationRepository := donation.NewDonationRepository(db)
	stockRepository := inventory.NewStockRepository(db)
	locationRepository := location.NewLocationRepository(db)
	contactRepository := contact.NewContactRepository(db)
	reportRepository := report.NewReportRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, donationRepository, jwtService, s3)
	donationService := donation.NewDonationService(donationRepository, stockRepository)
	inventoryService := inventory.NewInventoryService(stockRepository)
	locationService := location.NewLocationService(locationRepository)
	contactService := contact.NewContactService(contactRepository)
	reportService := report.NewReportService(reportRepository, stockRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	locationHandler := handlers.NewLocationHandler(locationService, validator)
	contactHandler := handlers.NewContactHandler(contactService, validator)
	adminHandler := handlers.NewAdminHandler(userService, reportService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		DonationHandler:  donationHandler,
		InventoryHandler: inventoryHandler,
		LocationHandler:  locationHandler,
		ContactHandler:   contactHandler,
		AdminHandler:     adminHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
