package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/cfcpush/chatbot-backend/internal/storage"
)

func newTestApp() (*fiber.App, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	handler := NewWebhookHandler(store, nil)

	app := fiber.New()
	app.Post("/webhook/whatsapp", handler.HandleWebhook)
	app.Post("/test/whatsapp", handler.HandleTestWebhook)
	return app, store
}

func postForm(app *fiber.App, path string, form url.Values) (int, string, error) {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", err
	}
	return resp.StatusCode, string(body), nil
}

func TestWebhookAcknowledgesWithEmptyTwiML(t *testing.T) {
	app, store := newTestApp()

	status, body, err := postForm(app, "/webhook/whatsapp", url.Values{
		"From": {"whatsapp:+258843000001"},
		"Body": {"shalom"},
	})
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if status != fiber.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if !strings.Contains(body, "<Response>") {
		t.Errorf("expected empty TwiML ack, got %q", body)
	}

	// The message still reached the engine: a session now exists.
	session, err := store.GetSession("+258843000001")
	if err != nil {
		t.Fatalf("expected a session after webhook: %v", err)
	}
	if session.Phone != "+258843000001" {
		t.Errorf("session phone = %q", session.Phone)
	}
}

func TestWebhookIgnoresSandboxEcho(t *testing.T) {
	app, store := newTestApp()

	status, body, err := postForm(app, "/webhook/whatsapp", url.Values{
		"From": {"whatsapp:" + twilioSandboxNumber},
		"Body": {"shalom"},
	})
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if status != fiber.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if !strings.Contains(body, "<Response>") {
		t.Errorf("expected empty TwiML ack, got %q", body)
	}
	if _, err := store.GetSession(twilioSandboxNumber); err == nil {
		t.Error("sandbox echo must not create a session")
	}
}

func TestWebhookIgnoresUndefinedBody(t *testing.T) {
	app, store := newTestApp()

	if _, _, err := postForm(app, "/webhook/whatsapp", url.Values{
		"From": {"whatsapp:+258843000002"},
		"Body": {"undefined"},
	}); err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if _, err := store.GetSession("+258843000002"); err == nil {
		t.Error("literal undefined body must not create a session")
	}
}

func TestTestWebhookReturnsRenderedResponse(t *testing.T) {
	app, _ := newTestApp()

	payload := `{"from":"+258843000003","message":"oi"}`
	req := httptest.NewRequest("POST", "/test/whatsapp", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var result struct {
		Success  bool   `json:"success"`
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !result.Success {
		t.Error("expected success")
	}
	if !strings.Contains(result.Response, "CFC PUSH") {
		t.Errorf("expected welcome copy, got %q", result.Response)
	}
	if !strings.Contains(result.Response, "1. 📝 Ser Membro") {
		t.Errorf("expected numbered menu in rendered text, got %q", result.Response)
	}
}
