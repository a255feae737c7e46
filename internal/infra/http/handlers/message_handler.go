package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/xavierca1/wacloud/internal/infra/http/middleware"
	"github.com/xavierca1/wacloud/internal/whatsapp"
)

// MessageSender is the slice of the WhatsApp client this handler needs.
type MessageSender interface {
	SendTextInput(input whatsapp.TextInput) (*whatsapp.SendResponse, error)
	SendTemplate(input whatsapp.TemplateInput) (*whatsapp.SendResponse, error)
}

// MessageHandler exposes outbound sending over HTTP, so the service can be
// used as a small gateway and not only as a webhook sink.
type MessageHandler struct {
	Sender MessageSender
}

func NewMessageHandler(sender MessageSender) *MessageHandler {
	return &MessageHandler{Sender: sender}
}

type sendMessageInput struct {
	To           string   `json:"to"`
	Type         string   `json:"type"`
	Body         string   `json:"body,omitempty"`
	PreviewURL   bool     `json:"preview_url,omitempty"`
	TemplateName string   `json:"template_name,omitempty"`
	Language     string   `json:"language,omitempty"`
	Parameters   []string `json:"parameters,omitempty"`
}

type sendMessageOutput struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
}

func (h *MessageHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input sendMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON")
		return
	}

	if !whatsapp.ValidPhoneNumber(input.To) {
		writeErrorResponse(w, http.StatusBadRequest, "invalid_recipient", "to must be a phone number with country code")
		return
	}

	var (
		resp *whatsapp.SendResponse
		err  error
	)

	switch input.Type {
	case "", "text":
		input.Type = "text"
		resp, err = h.Sender.SendTextInput(whatsapp.TextInput{
			To:         input.To,
			Body:       input.Body,
			PreviewURL: input.PreviewURL,
		})
	case "template":
		tpl := whatsapp.TemplateInput{
			To:       input.To,
			Name:     input.TemplateName,
			Language: input.Language,
		}
		if len(input.Parameters) > 0 {
			tpl.Components = []whatsapp.Component{whatsapp.BodyParameters(input.Parameters...)}
		}
		resp, err = h.Sender.SendTemplate(tpl)
	default:
		writeErrorResponse(w, http.StatusBadRequest, "unsupported_type", "type must be text or template")
		return
	}

	if err != nil {
		middleware.RecordMessageSent(input.Type, "error")
		middleware.RecordIntegrationError("whatsapp")
		log.Printf("❌ Send: %v", err)

		switch {
		case whatsapp.IsValidationError(err):
			writeErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		case whatsapp.IsRateLimitError(err):
			writeErrorResponse(w, http.StatusTooManyRequests, "rate_limited", err.Error())
		default:
			writeErrorResponse(w, http.StatusBadGateway, "provider_error", err.Error())
		}
		return
	}

	middleware.RecordMessageSent(input.Type, "sent")
	log.Printf("✅ Send: %s message to %s (id %s)", input.Type, input.To, resp.MessageID())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sendMessageOutput{
		MessageID: resp.MessageID(),
		Status:    "sent",
	})
}
