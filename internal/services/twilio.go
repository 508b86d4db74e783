package services

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/cfcpush/chatbot-backend/internal/models"
)

// TwilioConfig carries the gateway credentials. It is filled from the
// environment in main and passed in explicitly; the service itself never
// reads env vars.
type TwilioConfig struct {
	AccountSID     string
	AuthToken      string
	WhatsAppFrom   string // Format: "whatsapp:+14155238886"
	RequestTimeout time.Duration
}

// TwilioService sends outbound WhatsApp messages through Twilio.
type TwilioService struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioService creates a new Twilio service instance.
func NewTwilioService(cfg TwilioConfig) (*TwilioService, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.WhatsAppFrom == "" {
		return nil, fmt.Errorf("missing Twilio credentials")
	}

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	// Custom base client so sends cannot hang the webhook indefinitely.
	baseClient := &twilioclient.Client{
		Credentials: twilioclient.NewCredentials(cfg.AccountSID, cfg.AuthToken),
		HTTPClient:  &http.Client{Timeout: timeout},
	}
	baseClient.SetAccountSid(cfg.AccountSID)

	restClient := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
		Client:   baseClient,
	})

	from := cfg.WhatsAppFrom
	if !strings.HasPrefix(from, "whatsapp:") {
		from = "whatsapp:" + from
	}

	return &TwilioService{
		client: restClient,
		from:   from,
	}, nil
}

// SendWhatsAppMessage sends a plain WhatsApp text message.
func (t *TwilioService) SendWhatsAppMessage(to string, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(t.from)
	params.SetTo(fmt.Sprintf("whatsapp:%s", to))
	params.SetBody(message)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("❌ Failed to send WhatsApp message to %s: %v", to, err)
		return err
	}

	if resp.Sid != nil {
		log.Printf("✅ WhatsApp message sent to %s, SID: %s", to, *resp.Sid)
	}
	return nil
}

// SendResponse delivers an engine response. Choices are rendered as a
// numbered plain-text list because the SMS-gateway channel has no native
// interactive buttons. Returns whether the send succeeded; failures are
// logged, never propagated, so the webhook can still acknowledge.
func (t *TwilioService) SendResponse(to string, response *models.Response) bool {
	if response == nil || response.Text == "" {
		return false
	}
	if err := t.SendWhatsAppMessage(to, RenderResponseText(response)); err != nil {
		return false
	}
	return true
}

// RenderResponseText flattens a response into the text actually sent:
// the prompt plus, when present, the choice list with a reply
// instruction.
func RenderResponseText(response *models.Response) string {
	if len(response.Choices) == 0 {
		return response.Text
	}

	var b strings.Builder
	b.WriteString(response.Text)
	b.WriteString("\n")
	for i, choice := range response.Choices {
		b.WriteString(fmt.Sprintf("\n%d. %s", i+1, choice.Label))
	}
	b.WriteString("\n\n💡 *Responda com o número da opção*")
	return b.String()
}
