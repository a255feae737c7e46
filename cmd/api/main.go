package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/wacloud/internal/config"
	"github.com/xavierca1/wacloud/internal/infra/http/handlers"
	inframiddleware "github.com/xavierca1/wacloud/internal/infra/http/middleware"
	"github.com/xavierca1/wacloud/internal/webhook"
	"github.com/xavierca1/wacloud/internal/whatsapp"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// 1. Client and verifier
	client := whatsapp.NewClientWithVersion(cfg.PhoneNumberID, cfg.AccessToken, cfg.APIVersion)
	verifier := webhook.NewVerifier(cfg.AppSecret, cfg.VerifyToken)

	// 2. Inbound callbacks
	onMessage := func(event *webhook.Event) {
		if event.Type == "text" {
			log.Printf("📩 %s (%s): %s", event.From, event.ProfileName, event.Text)
		} else {
			log.Printf("📩 %s (%s): %s message", event.From, event.ProfileName, event.Type)
		}
		if cfg.CanSend() {
			if err := client.MarkAsRead(event.MessageID); err != nil {
				log.Printf("⚠️ MarkAsRead: %v", err)
			}
		}
	}
	onStatus := func(status *webhook.StatusUpdate) {
		log.Printf("📬 message %s: %s", status.MessageID, status.Status)
	}

	// 3. Handlers
	webhookHandler := handlers.NewWebhookHandler(verifier, onMessage, onStatus)
	messageHandler := handlers.NewMessageHandler(client)
	healthHandler := handlers.NewHealthHandler(cfg)

	// 4. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(inframiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Get("/webhook", webhookHandler.HandleVerify)
	r.Post("/webhook", webhookHandler.Handle)
	r.Post("/messages", messageHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("🔥 WhatsApp webhook service listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
