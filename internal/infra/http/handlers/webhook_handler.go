package handlers

import (
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/xavierca1/wacloud/internal/infra/http/middleware"
	"github.com/xavierca1/wacloud/internal/webhook"
)

const signatureHeader = "X-Hub-Signature-256"

type MessageFunc func(event *webhook.Event)
type StatusFunc func(status *webhook.StatusUpdate)

// WebhookHandler serves the two webhook endpoints: the GET handshake the
// provider runs when the URL is registered, and the signed POST deliveries
// afterwards. Parsed events are handed to the configured callbacks.
type WebhookHandler struct {
	Verifier  *webhook.Verifier
	OnMessage MessageFunc
	OnStatus  StatusFunc
}

func NewWebhookHandler(verifier *webhook.Verifier, onMessage MessageFunc, onStatus StatusFunc) *WebhookHandler {
	return &WebhookHandler{
		Verifier:  verifier,
		OnMessage: onMessage,
		OnStatus:  onStatus,
	}
}

// HandleVerify answers the hub.challenge handshake.
func (h *WebhookHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	challenge, ok := h.Verifier.VerifyToken(
		query.Get("hub.mode"),
		query.Get("hub.verify_token"),
		query.Get("hub.challenge"),
	)
	if !ok {
		log.Printf("❌ Webhook: handshake rejected (mode=%s)", query.Get("hub.mode"))
		writeErrorResponse(w, http.StatusForbidden, "verification_failed", "verify token mismatch")
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(challenge))
}

// Handle processes one signed delivery. Signature mismatch is a hard 401;
// deliveries that verify but carry nothing we understand are still 200 so
// the provider does not retry them forever.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "read_error", "could not read request body")
		return
	}

	if err := h.Verifier.VerifySignature(r.Header.Get(signatureHeader), body); err != nil {
		middleware.RecordSignatureRejection()
		log.Printf("❌ Webhook: %v", err)
		writeErrorResponse(w, http.StatusUnauthorized, "invalid_signature", "signature verification failed")
		return
	}

	deliveryID := uuid.New().String()

	event, err := webhook.ParseMessage(body)
	if err != nil {
		log.Printf("⚠️ Webhook [%s]: %v", deliveryID, err)
		writeErrorResponse(w, http.StatusBadRequest, "invalid_payload", "could not parse event payload")
		return
	}
	if event != nil {
		middleware.RecordWebhookEvent(event.Type)
		log.Printf("✅ Webhook [%s]: %s message from %s", deliveryID, event.Type, event.From)
		if h.OnMessage != nil {
			h.OnMessage(event)
		}
		w.WriteHeader(http.StatusOK)
		return
	}

	status, err := webhook.ParseStatus(body)
	if err == nil && status != nil {
		middleware.RecordWebhookEvent("status")
		log.Printf("✅ Webhook [%s]: message %s is %s", deliveryID, status.MessageID, status.Status)
		if h.OnStatus != nil {
			h.OnStatus(status)
		}
	}

	w.WriteHeader(http.StatusOK)
}
