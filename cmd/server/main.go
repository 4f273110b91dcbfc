package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"funlet/config"
	"funlet/internal/adapters/auth"
	"funlet/internal/adapters/dispatch"
	"funlet/internal/adapters/email"
	"funlet/internal/adapters/sms"
	delivery "funlet/internal/delivery/http"
	"funlet/internal/delivery/http/controllers"
	"funlet/internal/delivery/http/middleware"
	"funlet/internal/repository/postgres"
	"funlet/internal/services"
)

const serviceTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	profileRepo := postgres.NewProfileRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	contactRepo := postgres.NewContactRepository(db)
	invitationRepo := postgres.NewInvitationRepository(db)
	userActionRepo := postgres.NewUserActionRepository(db)

	smsSender := sms.NewSender(cfg.Twilio)
	mailer, err := email.NewMailer(cfg.Email)
	if err != nil {
		log.Fatalf("failed to initialize mailer: %v", err)
	}
	tokens := auth.NewServiceTokenIssuer(cfg.ServiceTokenSecret)
	dispatcher := dispatch.NewHTTPDispatcher(&http.Client{Timeout: 10 * time.Second}, cfg.SMSHandlerURL, tokens)

	inboundService := services.NewInboundSMSService(
		profileRepo, eventRepo, invitationRepo, userActionRepo,
		smsSender, dispatcher, logger, cfg.AppBaseURL, serviceTimeout,
	)
	rsvpService := services.NewRSVPService(
		invitationRepo, contactRepo, eventRepo, profileRepo, logger, serviceTimeout,
	)
	invitationService := services.NewInvitationService(
		eventRepo, profileRepo, contactRepo, invitationRepo,
		smsSender, mailer, logger, cfg.AppBaseURL, serviceTimeout,
	)

	smsWebhookController := controllers.NewSMSWebhookController(logger, inboundService)
	rsvpController := controllers.NewRSVPController(logger, rsvpService)
	invitationController := controllers.NewInvitationController(logger, invitationService)

	mux := delivery.NewRouter(smsWebhookController, rsvpController, invitationController)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
