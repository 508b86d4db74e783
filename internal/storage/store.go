package storage

import (
	"github.com/cfcpush/chatbot-backend/internal/models"
)

// Store defines the persistence operations the chatbot core depends on.
type Store interface {
	// Session operations. GetSession must not return sessions whose
	// expiry has passed; callers treat any error as "no session yet".
	GetSession(phone string) (*models.UserSession, error)
	SaveSession(session *models.UserSession) error
	DeleteSession(phone string) error
	DeleteExpiredSessions() (int64, error)
	CountActiveSessions() (int64, error)

	// User profile operations (one live record per phone, upserted).
	GetUserByPhone(phone string) (*models.User, error)
	SaveUser(user *models.User) error
	CountMembers() (int64, error)

	// Request records (append-only).
	CreatePrayerRequest(req *models.PrayerRequest) error
	GetRecentPrayerRequests(limit int) ([]*models.PrayerRequest, error)
	CreateAssistanceRequest(req *models.AssistanceRequest) error
	GetRecentAssistanceRequests(limit int) ([]*models.AssistanceRequest, error)
	CreateVisitRequest(req *models.VisitRequest) error
	GetRecentVisitRequests(limit int) ([]*models.VisitRequest, error)
	CreateTransferRequest(req *models.TransferRequest) error
	GetRecentTransferRequests(limit int) ([]*models.TransferRequest, error)
}
