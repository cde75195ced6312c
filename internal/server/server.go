// Package server assembles the HTTP application from its repositories,
// services and handlers.
package server

import (
	"errors"
	"time"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/config"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/handlers"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/identity"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/middleware"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/repositories"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/internal/services"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/pkg/metrics"
	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/pkg/payment"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Deps are the external collaborators of the application.
type Deps struct {
	DB *gorm.DB
	// Verifier checks Google credentials. Nil disables Google login.
	Verifier identity.Verifier
	// Gateway processes payments. Nil uses the demo simulator.
	Gateway payment.Gateway
	// Publisher receives domain events. Nil disables events.
	Publisher services.EventPublisher
	// AccessLog enables the per-request access log.
	AccessLog bool
}

// New builds the Fiber application with every route mounted under /api.
func New(cfg config.Config, deps Deps) *fiber.App {
	// --- Initialize Repositories ---
	userRepo := repositories.NewGORMUserRepository(deps.DB)
	shelterRepo := repositories.NewGORMShelterRepository(deps.DB)
	petRepo := repositories.NewGORMPetRepository(deps.DB)
	volunteerRepo := repositories.NewGORMVolunteerRepository(deps.DB)
	donationRepo := repositories.NewGORMDonationRepository(deps.DB)
	medicalRepo := repositories.NewGORMMedicalRecordRepository(deps.DB)

	gateway := deps.Gateway
	if gateway == nil {
		gateway = payment.NewSimulator(cfg.PaymentDemoDelay)
	}

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, deps.Verifier)
	shelterService := services.NewShelterService(shelterRepo, petRepo)
	petService := services.NewPetService(petRepo, shelterRepo, deps.Publisher)
	volunteerService := services.NewVolunteerService(volunteerRepo, shelterRepo, deps.Publisher)
	donationService := services.NewDonationService(donationRepo, deps.Publisher, cfg.PaymentCurrency)
	medicalService := services.NewMedicalRecordService(medicalRepo, petRepo)
	paymentService := services.NewPaymentService(gateway, donationService, cfg.PaymentCurrency)
	adminService := services.NewAdminService(userRepo, shelterRepo, petRepo, volunteerRepo, donationRepo)

	// --- Initialize Fiber App ---
	app := fiber.New(fiber.Config{
		AppName:      "pet-adoption-api",
		ErrorHandler: errorHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New())
	if deps.AccessLog {
		app.Use(logger.New())
	}
	app.Use(middleware.Metrics())

	app.Get("/health", func(c *fiber.Ctx) error {
		status := fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"events": deps.Publisher != nil,
		}
		if sqlDB, err := deps.DB.DB(); err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			status["status"] = "degraded"
			return c.Status(fiber.StatusServiceUnavailable).JSON(status)
		}
		return c.JSON(status)
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// --- API Routes ---
	guards := handlers.Guards{
		Auth:     middleware.AuthRequired(authService),
		Admin:    middleware.AdminOnly(),
		Optional: middleware.OptionalAuth(authService),
	}
	var limiter fiber.Handler
	if cfg.AuthRateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst).Handler()
	}

	api := app.Group("/api")
	handlers.NewAuthHandler(authService, limiter).RegisterRoutes(api, guards)
	handlers.NewShelterHandler(shelterService).RegisterRoutes(api, guards)
	handlers.NewPetHandler(petService).RegisterRoutes(api, guards)
	handlers.NewMedicalRecordHandler(medicalService).RegisterRoutes(api, guards)
	handlers.NewVolunteerHandler(volunteerService).RegisterRoutes(api, guards)
	handlers.NewDonationHandler(donationService).RegisterRoutes(api, guards)
	handlers.NewPaymentHandler(paymentService).RegisterRoutes(api, guards)
	handlers.NewAdminHandler(adminService).RegisterRoutes(api, guards)

	return app
}

// errorHandler renders errors that escape the handlers, including recovered
// panics and unknown routes, as {"msg": ...}.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"msg": fe.Message})
	}
	log.WithFields(log.Fields{
		"method":     c.Method(),
		"path":       c.Path(),
		"request_id": c.GetRespHeader(fiber.HeaderXRequestID),
	}).Errorf("Unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": "Server error"})
}
