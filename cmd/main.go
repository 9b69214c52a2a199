package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/fleetdesk/FleetDesk/internal/config"
	"github.com/fleetdesk/FleetDesk/internal/db"
	"github.com/fleetdesk/FleetDesk/internal/handlers"
	"github.com/fleetdesk/FleetDesk/internal/logger"
	"github.com/fleetdesk/FleetDesk/internal/mail"
	"github.com/fleetdesk/FleetDesk/internal/middleware"
	"github.com/fleetdesk/FleetDesk/internal/services"
	"github.com/fleetdesk/FleetDesk/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.LogLevel, !cfg.IsDevelopment())

	stop := make(chan struct{})
	defer close(stop)
	logger.StartMemorySampler(log, cfg.MemSampleInterval, stop)

	database, err := db.Connect(cfg.MongoURI, cfg.MongoDB, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.WithError(err).Fatal("failed to create indexes")
	}
	cancel()

	images, err := storage.NewImageStore(cfg, log)
	if err != nil {
		log.WithError(err).Warn("image storage unavailable, driver photo uploads disabled")
		images = nil
	}

	var sender mail.Sender
	switch {
	case cfg.MailEnabled() && cfg.UseOAuth2Mail():
		ts := mail.NewGmailTokenSource(context.Background(),
			cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRefreshToken)
		sender = mail.NewOAuth2Sender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPFrom, ts)
		log.Info("mail transport: SMTP with XOAUTH2")
	case cfg.MailEnabled():
		sender = mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
		log.Info("mail transport: SMTP")
	default:
		sender = mail.Nop{}
		log.Warn("mail transport disabled, booking notifications will not be sent")
	}
	mailer := &mail.BookingMailer{Sender: sender, AdminEmail: cfg.AdminEmail, Log: log}

	authService := services.NewAuthService(database, cfg.JWTSecret, cfg.TokenTTL, cfg.ResetTokenTTL)
	vehicleService := services.NewVehicleService(database)
	billingService := services.NewBillingService(database, vehicleService)
	driverService := services.NewDriverService(database, images, log)
	bookingService := services.NewBookingService(database, mailer)
	settingsService := services.NewSettingsService(database)

	dev := cfg.IsDevelopment()
	authHandler := handlers.NewAuthHandler(authService, dev)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService, dev)
	billingHandler := handlers.NewBillingHandler(billingService, dev)
	driverHandler := handlers.NewDriverHandler(driverService, dev)
	bookingHandler := handlers.NewBookingHandler(bookingService, dev)
	settingsHandler := handlers.NewSettingsHandler(settingsService, dev)
	adminHandler := handlers.NewAdminHandler(authService, bookingService, dev)
	healthHandler := handlers.NewHealthHandler(cfg.AppEnv)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New())

	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.Health)

	api := app.Group("/api")
	authMW := middleware.Auth(authService, dev)
	adminMW := middleware.AdminOnly(dev)

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Get("/me", authMW, authHandler.Me)
	auth.Post("/logout", authMW, authHandler.Logout)

	vehicles := api.Group("/vehicles", authMW)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Get("/stats", vehicleHandler.Stats)
	vehicles.Get("/types", vehicleHandler.Types)
	vehicles.Get("/:id", vehicleHandler.Get)
	vehicles.Put("/:id", vehicleHandler.Update)
	vehicles.Delete("/:id", vehicleHandler.Delete)

	billings := api.Group("/billings", authMW)
	billings.Post("/", billingHandler.Create)
	billings.Get("/", billingHandler.List)
	billings.Get("/stats", billingHandler.Stats)
	billings.Post("/calculate", billingHandler.Calculate)
	billings.Get("/:id", billingHandler.Get)
	billings.Put("/:id", billingHandler.Update)
	billings.Delete("/:id", billingHandler.Delete)

	drivers := api.Group("/drivers", authMW)
	drivers.Post("/", driverHandler.Create)
	drivers.Get("/", driverHandler.List)
	drivers.Get("/:id", driverHandler.Get)
	drivers.Put("/:id", driverHandler.Update)
	drivers.Delete("/:id", driverHandler.Delete)
	drivers.Post("/:id/image", driverHandler.UploadImage)

	settings := api.Group("/settings", authMW)
	settings.Post("/", settingsHandler.Create)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)
	settings.Delete("/", settingsHandler.Delete)

	bookings := api.Group("/bookings")
	bookings.Post("/", bookingHandler.Create)
	bookings.Get("/", bookingHandler.List)
	bookings.Get("/range", bookingHandler.Range)
	bookings.Get("/month/:monthYear", bookingHandler.Month)
	bookings.Patch("/:id/status", bookingHandler.UpdateStatus)

	admin := api.Group("/admin", authMW, adminMW)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/bookings", adminHandler.ListBookings)

	app.Use(handlers.NotFound)

	log.WithField("port", cfg.Port).WithField("environment", cfg.AppEnv).Info("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
