package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"eventboard/config"
	_ "eventboard/docs"
	authadapter "eventboard/internal/adapters/auth"
	emailadapter "eventboard/internal/adapters/email"
	delivery "eventboard/internal/delivery/http"
	"eventboard/internal/delivery/http/controllers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/repository/mongodb"
	"eventboard/internal/services"
)

const serviceTimeout = 10 * time.Second

// @title EventBoard API
// @version 1.0
// @description Event management API with JWT authentication.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	store, err := mongodb.NewStore(cfg.MongoURI, cfg.MongoDB, logger)
	if err != nil {
		logger.Error("failed to connect to mongodb", "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close store", "err", err)
		}
	}()

	eventRepo := mongodb.NewEventRepository(store)
	userRepo := mongodb.NewUserRepository(store)

	hasher := authadapter.NewBcryptHasher(cfg.BcryptCost)
	tokens := authadapter.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)
	mailer := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	}, logger)

	eventService := services.NewEventService(eventRepo, serviceTimeout)
	emailService := services.NewEmailService(mailer)
	authService := services.NewAuthService(userRepo, hasher, tokens, emailService, logger, serviceTimeout)

	eventController := controllers.NewEventController(logger, eventService)
	authController := controllers.NewAuthController(logger, authService)

	mux := delivery.NewRouter(eventController, authController, tokens)
	handler := middleware.CORS(strings.Split(cfg.CORSOrigin, ","),
		middleware.Metrics(
			middleware.Logging(logger, mux)))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
