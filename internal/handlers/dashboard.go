package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cfcpush/chatbot-backend/internal/storage"
)

const defaultRecentLimit = 20

// DashboardHandler exposes read-only views of the collected records for
// the secretariat dashboard.
type DashboardHandler struct {
	store storage.Store
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(store storage.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// GetPrayerRequests returns the most recent prayer requests.
func (h *DashboardHandler) GetPrayerRequests(c *fiber.Ctx) error {
	requests, err := h.store.GetRecentPrayerRequests(limitParam(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch prayer requests",
		})
	}
	return c.JSON(fiber.Map{
		"count":    len(requests),
		"requests": requests,
	})
}

// GetAssistanceRequests returns the most recent assistance requests.
func (h *DashboardHandler) GetAssistanceRequests(c *fiber.Ctx) error {
	requests, err := h.store.GetRecentAssistanceRequests(limitParam(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch assistance requests",
		})
	}
	return c.JSON(fiber.Map{
		"count":    len(requests),
		"requests": requests,
	})
}

// GetVisitRequests returns the most recent pastoral visit requests.
func (h *DashboardHandler) GetVisitRequests(c *fiber.Ctx) error {
	requests, err := h.store.GetRecentVisitRequests(limitParam(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch visit requests",
		})
	}
	return c.JSON(fiber.Map{
		"count":    len(requests),
		"requests": requests,
	})
}

// GetTransferRequests returns the most recent church transfer requests.
func (h *DashboardHandler) GetTransferRequests(c *fiber.Ctx) error {
	requests, err := h.store.GetRecentTransferRequests(limitParam(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch transfer requests",
		})
	}
	return c.JSON(fiber.Map{
		"count":    len(requests),
		"requests": requests,
	})
}

// GetStats returns member and session counters.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	members, err := h.store.CountMembers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count members",
		})
	}

	sessions, err := h.store.CountActiveSessions()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count sessions",
		})
	}

	return c.JSON(fiber.Map{
		"members":         members,
		"active_sessions": sessions,
	})
}

func limitParam(c *fiber.Ctx) int {
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 && limit <= 100 {
			return limit
		}
	}
	return defaultRecentLimit
}
