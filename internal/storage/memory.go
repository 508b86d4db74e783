package storage

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cfcpush/chatbot-backend/internal/models"
)

// MemoryStore holds all data in memory. Used for local development
// (USE_MEMORY_STORE=true) and as the test double for the conversation
// engine.
type MemoryStore struct {
	sessions    map[string]*models.UserSession
	users       map[string]*models.User
	prayers     []*models.PrayerRequest
	assistances []*models.AssistanceRequest
	visits      []*models.VisitRequest
	transfers   []*models.TransferRequest

	sessionMu sync.RWMutex
	userMu    sync.RWMutex
	requestMu sync.RWMutex

	idCounter uint64
}

// NewMemoryStore creates a new in-memory storage.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*models.UserSession),
		users:    make(map[string]*models.User),
	}
}

func (m *MemoryStore) nextID() uint {
	return uint(atomic.AddUint64(&m.idCounter, 1))
}

// Session operations

func (m *MemoryStore) GetSession(phone string) (*models.UserSession, error) {
	m.sessionMu.RLock()
	defer m.sessionMu.RUnlock()

	session, exists := m.sessions[phone]
	if !exists {
		return nil, fmt.Errorf("session not found")
	}
	if session.Expired(time.Now()) {
		return nil, fmt.Errorf("session expired")
	}

	copied := *session
	copied.Data = cloneData(session.Data)
	return &copied, nil
}

func (m *MemoryStore) SaveSession(session *models.UserSession) error {
	m.sessionMu.Lock()
	defer m.sessionMu.Unlock()

	copied := *session
	copied.Data = cloneData(session.Data)
	if existing, exists := m.sessions[session.Phone]; exists {
		copied.ID = existing.ID
		copied.CreatedAt = existing.CreatedAt
	} else {
		copied.ID = m.nextID()
		copied.CreatedAt = time.Now()
	}
	copied.UpdatedAt = time.Now()

	m.sessions[session.Phone] = &copied
	return nil
}

func (m *MemoryStore) DeleteSession(phone string) error {
	m.sessionMu.Lock()
	defer m.sessionMu.Unlock()

	delete(m.sessions, phone)
	return nil
}

func (m *MemoryStore) DeleteExpiredSessions() (int64, error) {
	m.sessionMu.Lock()
	defer m.sessionMu.Unlock()

	now := time.Now()
	var removed int64
	for phone, session := range m.sessions {
		if session.Expired(now) {
			delete(m.sessions, phone)
			removed++
		}
	}
	return removed, nil
}

func (m *MemoryStore) CountActiveSessions() (int64, error) {
	m.sessionMu.RLock()
	defer m.sessionMu.RUnlock()

	now := time.Now()
	var count int64
	for _, session := range m.sessions {
		if !session.Expired(now) {
			count++
		}
	}
	return count, nil
}

// User operations

func (m *MemoryStore) GetUserByPhone(phone string) (*models.User, error) {
	m.userMu.RLock()
	defer m.userMu.RUnlock()

	user, exists := m.users[phone]
	if !exists {
		return nil, fmt.Errorf("user not found")
	}
	copied := *user
	return &copied, nil
}

func (m *MemoryStore) SaveUser(user *models.User) error {
	m.userMu.Lock()
	defer m.userMu.Unlock()

	copied := *user
	if existing, exists := m.users[user.Phone]; exists {
		copied.ID = existing.ID
		copied.CreatedAt = existing.CreatedAt
	} else {
		copied.ID = m.nextID()
		copied.CreatedAt = time.Now()
	}
	copied.UpdatedAt = time.Now()

	m.users[user.Phone] = &copied
	return nil
}

func (m *MemoryStore) CountMembers() (int64, error) {
	m.userMu.RLock()
	defer m.userMu.RUnlock()

	var count int64
	for _, user := range m.users {
		if user.IsMember {
			count++
		}
	}
	return count, nil
}

// Request operations

func (m *MemoryStore) CreatePrayerRequest(req *models.PrayerRequest) error {
	m.requestMu.Lock()
	defer m.requestMu.Unlock()

	if err := req.BeforeCreate(nil); err != nil {
		return err
	}
	req.ID = m.nextID()
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	m.prayers = append(m.prayers, req)
	return nil
}

func (m *MemoryStore) GetRecentPrayerRequests(limit int) ([]*models.PrayerRequest, error) {
	m.requestMu.RLock()
	defer m.requestMu.RUnlock()

	result := make([]*models.PrayerRequest, len(m.prayers))
	copy(result, m.prayers)
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MemoryStore) CreateAssistanceRequest(req *models.AssistanceRequest) error {
	m.requestMu.Lock()
	defer m.requestMu.Unlock()

	if err := req.BeforeCreate(nil); err != nil {
		return err
	}
	req.ID = m.nextID()
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	m.assistances = append(m.assistances, req)
	return nil
}

func (m *MemoryStore) GetRecentAssistanceRequests(limit int) ([]*models.AssistanceRequest, error) {
	m.requestMu.RLock()
	defer m.requestMu.RUnlock()

	result := make([]*models.AssistanceRequest, len(m.assistances))
	copy(result, m.assistances)
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MemoryStore) CreateVisitRequest(req *models.VisitRequest) error {
	m.requestMu.Lock()
	defer m.requestMu.Unlock()

	if err := req.BeforeCreate(nil); err != nil {
		return err
	}
	req.ID = m.nextID()
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	m.visits = append(m.visits, req)
	return nil
}

func (m *MemoryStore) GetRecentVisitRequests(limit int) ([]*models.VisitRequest, error) {
	m.requestMu.RLock()
	defer m.requestMu.RUnlock()

	result := make([]*models.VisitRequest, len(m.visits))
	copy(result, m.visits)
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MemoryStore) CreateTransferRequest(req *models.TransferRequest) error {
	m.requestMu.Lock()
	defer m.requestMu.Unlock()

	if err := req.BeforeCreate(nil); err != nil {
		return err
	}
	req.ID = m.nextID()
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	m.transfers = append(m.transfers, req)
	return nil
}

func (m *MemoryStore) GetRecentTransferRequests(limit int) ([]*models.TransferRequest, error) {
	m.requestMu.RLock()
	defer m.requestMu.RUnlock()

	result := make([]*models.TransferRequest, len(m.transfers))
	copy(result, m.transfers)
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func cloneData(data models.SessionData) models.SessionData {
	cloned := models.SessionData{}
	for k, v := range data {
		cloned[k] = v
	}
	return cloned
}
