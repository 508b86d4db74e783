package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/cfcpush/chatbot-backend/internal/models"
	"github.com/cfcpush/chatbot-backend/internal/services"
	"github.com/cfcpush/chatbot-backend/internal/storage"
)

// Twilio sandbox number; traffic from it is the gateway echoing itself.
const twilioSandboxNumber = "+14155238886"

const emptyTwiML = `<?xml version="1.0" encoding="UTF-8"?>
<Response>
</Response>`

// WebhookHandler receives Twilio WhatsApp webhooks, runs the
// conversation engine and sends the reply back out of band. The webhook
// itself always answers with empty TwiML.
type WebhookHandler struct {
	conversation *services.ConversationService
	twilio       *services.TwilioService
}

// NewWebhookHandler creates the webhook handler. A nil Twilio service is
// allowed: replies are then only logged, which keeps local development
// working without credentials.
func NewWebhookHandler(store storage.Store, twilio *services.TwilioService) *WebhookHandler {
	return &WebhookHandler{
		conversation: services.NewConversationService(store),
		twilio:       twilio,
	}
}

// TwilioWebhookPayload is the form-encoded message Twilio posts.
type TwilioWebhookPayload struct {
	MessageSid          string `form:"MessageSid"`
	AccountSid          string `form:"AccountSid"`
	MessagingServiceSid string `form:"MessagingServiceSid"`
	From                string `form:"From"` // whatsapp:+258841234567
	To                  string `form:"To"`
	Body                string `form:"Body"`
	NumMedia            string `form:"NumMedia"`
	MediaUrl0           string `form:"MediaUrl0"`
	MediaContentType0   string `form:"MediaContentType0"`
}

// HandleWebhook processes an incoming WhatsApp message.
func (h *WebhookHandler) HandleWebhook(c *fiber.Ctx) error {
	var payload TwilioWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("❌ Error parsing webhook: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid webhook payload",
		})
	}

	phone := strings.TrimPrefix(payload.From, "whatsapp:")
	log.Printf("📱 Mensagem de %s: %q", phone, payload.Body)

	// Filter sandbox echoes, status callbacks and the literal
	// "undefined" some clients send for empty bodies.
	if phone == twilioSandboxNumber || payload.Body == "undefined" || strings.TrimSpace(payload.Body) == "" {
		log.Printf("⚠️ Mensagem inválida ignorada de: %s", phone)
		c.Type("xml")
		return c.SendString(emptyTwiML)
	}

	response := h.safeProcess(phone, payload.Body)

	if h.twilio != nil {
		if !h.twilio.SendResponse(phone, response) {
			log.Printf("❌ Falha ao enviar resposta para %s", phone)
		}
	} else {
		log.Printf("📤 Resposta (Twilio não configurado): %s", services.RenderResponseText(response))
	}

	c.Type("xml")
	return c.SendString(emptyTwiML)
}

// safeProcess shields the webhook from panics inside the engine: the
// user gets a generic error instead of a dropped message.
func (h *WebhookHandler) safeProcess(phone, body string) (response *models.Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Panic ao processar mensagem de %s: %v", phone, r)
			response = &models.Response{
				Text: "❌ Desculpe, ocorreu um erro no servidor. Por favor, tente novamente.",
			}
		}
	}()
	return h.conversation.ProcessMessage(phone, body)
}

// TestWebhookPayload is the JSON body of the development endpoint.
type TestWebhookPayload struct {
	From    string `json:"from"`
	Message string `json:"message"`
}

// HandleTestWebhook runs the engine without Twilio and returns the reply
// as JSON, for exercising flows from curl.
func (h *WebhookHandler) HandleTestWebhook(c *fiber.Ctx) error {
	var payload TestWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid test payload",
		})
	}

	log.Printf("🧪 Test webhook de %s: %s", payload.From, payload.Message)
	response := h.safeProcess(payload.From, payload.Message)

	return c.JSON(fiber.Map{
		"success":  true,
		"response": services.RenderResponseText(response),
		"choices":  response.Choices,
	})
}
