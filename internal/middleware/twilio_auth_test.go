package middleware

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

const testAuthToken = "test-auth-token"

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Post("/webhook/whatsapp", ValidateTwilioSignature(testAuthToken), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRejectsMissingSignature(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("POST", "/webhook/whatsapp", strings.NewReader("Body=oi"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRejectsInvalidSignature(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("POST", "/webhook/whatsapp", strings.NewReader("Body=oi"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Twilio-Signature", "bogus")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAcceptsValidSignature(t *testing.T) {
	app := newProtectedApp()

	form := url.Values{
		"From": {"whatsapp:+258841234567"},
		"Body": {"shalom"},
	}
	params := map[string]string{
		"From": "whatsapp:+258841234567",
		"Body": "shalom",
	}
	// Path-only target: httptest defaults the host to example.com, and an
	// absolute-form target would end up duplicated by fullURL.
	signature := calculateTwilioSignature(testAuthToken, "http://example.com/webhook/whatsapp", params)

	req := httptest.NewRequest("POST", "/webhook/whatsapp", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Twilio-Signature", signature)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestSignatureCoversSortedParams(t *testing.T) {
	a := calculateTwilioSignature(testAuthToken, "https://host/path", map[string]string{
		"B": "2", "A": "1",
	})
	b := calculateTwilioSignature(testAuthToken, "https://host/path", map[string]string{
		"A": "1", "B": "2",
	})
	if a != b {
		t.Error("signature must not depend on map iteration order")
	}

	c := calculateTwilioSignature(testAuthToken, "https://host/path", map[string]string{
		"A": "1", "B": "3",
	})
	if a == c {
		t.Error("different params must produce different signatures")
	}
}
