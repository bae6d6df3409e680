package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ideas26/leadflow-api/internal/auth"
	"github.com/ideas26/leadflow-api/internal/infra/database"
	"github.com/ideas26/leadflow-api/internal/infra/http/handlers"
	appmiddleware "github.com/ideas26/leadflow-api/internal/infra/http/middleware"
	"github.com/ideas26/leadflow-api/internal/infra/integration/n8n"
	"github.com/ideas26/leadflow-api/internal/infra/mail"
	"github.com/ideas26/leadflow-api/internal/infra/queue"
	"github.com/ideas26/leadflow-api/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal(err)
	}

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		panic(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	userRepo := database.NewUserRepository(db)

	// 2. Gateways and adapters
	gateway := n8n.NewClient(os.Getenv("INTAKE_WEBHOOK_URL"), os.Getenv("OUTREACH_WEBHOOK_URL"))
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		envOr("MAIL_FROM", "no-reply@leadflow.local"),
		os.Getenv("ADMIN_NOTIFY_EMAIL"),
	)

	// 3. Worker (consumes lead events and mails the admin inbox)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	// 4. Auth
	jwtTTL := time.Duration(envIntOr("JWT_TTL_HOURS", 12)) * time.Hour
	jwtManager := auth.NewJWTManager(os.Getenv("JWT_SECRET"), jwtTTL)

	// 5. UseCases. Stats is both a reader and an event sink: every lead
	// event bumps its generation so the next read recomputes.
	statsUC := usecase.NewLeadStatsUseCase(leadRepo)
	events := usecase.NewLeadEventFanout(producer, statsUC)

	captureUC := usecase.NewCaptureLeadUseCase(leadRepo, gateway, events)
	listUC := usecase.NewListLeadsUseCase(leadRepo)
	outreachUC := usecase.NewSendOutreachUseCase(leadRepo, gateway, events)
	scoreUC := usecase.NewScoreLeadUseCase(leadRepo, events)
	loginUC := usecase.NewLoginUseCase(userRepo, jwtManager)

	// 6. Handlers
	leadHandler := handlers.NewLeadHandler(captureUC)
	adminHandler := handlers.NewAdminHandler(listUC, statsUC, outreachUC, leadRepo)
	authHandler := handlers.NewAuthHandler(loginUC)
	scoringHandler := handlers.NewScoringWebhookHandler(scoreUC, os.Getenv("SCORING_WEBHOOK_TOKEN"))
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 7. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.Use(appmiddleware.Metrics)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/leads", leadHandler.CaptureLead)
	r.Post("/webhooks/scoring", scoringHandler.Handle)
	r.Post("/auth/login", authHandler.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.RequireAuth(jwtManager))

		r.Get("/auth/session", authHandler.HandleSession)
		r.Post("/auth/logout", authHandler.HandleLogout)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/leads", adminHandler.HandleListLeads)
			r.Get("/leads/{leadID}", adminHandler.HandleGetLead)
			r.Post("/leads/{leadID}/outreach", adminHandler.HandleSendOutreach)
			r.Get("/stats", adminHandler.HandleStats)
		})
	})

	port := ":" + envOr("PORT", "8080")
	log.Printf("🔥 Leadflow API listening on %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
