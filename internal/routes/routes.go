package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/cfcpush/chatbot-backend/internal/handlers"
	"github.com/cfcpush/chatbot-backend/internal/middleware"
	"github.com/cfcpush/chatbot-backend/internal/services"
	"github.com/cfcpush/chatbot-backend/internal/storage"
)

// SetupRoutes configures all API routes.
func SetupRoutes(app *fiber.App, store storage.Store, twilioService *services.TwilioService) {
	webhookHandler := handlers.NewWebhookHandler(store, twilioService)
	dashboardHandler := handlers.NewDashboardHandler(store)

	// Root endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "CFC PUSH Chatbot Backend",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"health":        "/health",
				"webhook":       "/webhook/whatsapp",
				"test_whatsapp": "/test/whatsapp",
				"dashboard":     "/api/dashboard",
			},
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// ========== WEBHOOK ROUTES ==========
	webhooks := app.Group("/webhook")

	if os.Getenv("ENVIRONMENT") == "development" || os.Getenv("DISABLE_WEBHOOK_VALIDATION") == "true" {
		// Development: skip validation so ngrok tunnels work
		webhooks.Post("/whatsapp", webhookHandler.HandleWebhook)
		log.Println("⚠️  WhatsApp webhook validation DISABLED for development")
	} else {
		webhooks.Post("/whatsapp",
			middleware.ValidateTwilioSignature(os.Getenv("TWILIO_AUTH_TOKEN")),
			webhookHandler.HandleWebhook)
	}

	// ========== TEST ROUTES (Development Only) ==========
	app.Post("/test/whatsapp", webhookHandler.HandleTestWebhook)

	// ========== DASHBOARD ROUTES ==========
	dashboard := app.Group("/api/dashboard")
	dashboard.Get("/prayers", dashboardHandler.GetPrayerRequests)
	dashboard.Get("/assistance", dashboardHandler.GetAssistanceRequests)
	dashboard.Get("/visits", dashboardHandler.GetVisitRequests)
	dashboard.Get("/transfers", dashboardHandler.GetTransferRequests)
	dashboard.Get("/stats", dashboardHandler.GetStats)
}
