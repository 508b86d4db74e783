package services

import (
	"log"
	"time"

	"github.com/cfcpush/chatbot-backend/internal/models"
	"github.com/cfcpush/chatbot-backend/internal/storage"
)

// Session lifetime: a conversation abandoned for a day starts over.
const sessionTTL = 24 * time.Hour

// SessionService owns the session lifecycle: lookup with expiry
// filtering, merge-on-write updates, reset and deletion. All step
// handlers go through it; nothing else writes sessions.
type SessionService struct {
	store storage.Store
}

// NewSessionService creates a new session service.
func NewSessionService(store storage.Store) *SessionService {
	return &SessionService{store: store}
}

// Get returns the sender's live session, or nil when there is none.
// Expired sessions and read failures both degrade to nil so the caller
// falls back to the welcome step either way.
func (s *SessionService) Get(phone string) *models.UserSession {
	session, err := s.store.GetSession(phone)
	if err != nil {
		return nil
	}
	if session.Expired(time.Now()) {
		return nil
	}
	if session.Data == nil {
		session.Data = models.SessionData{}
	}
	return session
}

// Set upserts the sender's session: data is merged (new keys win), the
// step is replaced and both timestamps are refreshed.
func (s *SessionService) Set(phone string, step models.Step, data models.SessionData) (*models.UserSession, error) {
	now := time.Now()

	session := s.Get(phone)
	if session == nil {
		session = &models.UserSession{
			Phone: phone,
			Step:  models.StepWelcome,
			Data:  models.SessionData{},
		}
	}

	for key, value := range data {
		session.Data[key] = value
	}
	if session.Step != step {
		session.PreviousStep = session.Step
	}
	session.Step = step
	session.LastInteraction = now
	session.ExpiresAt = now.Add(sessionTTL)

	if err := s.store.SaveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateData merges the given keys into the session data without
// changing the step. Returns nil when no session exists: updating data
// presumes a flow already in progress, so this is a deliberate no-op
// rather than an implicit create.
func (s *SessionService) UpdateData(phone string, data models.SessionData) (*models.UserSession, error) {
	session := s.Get(phone)
	if session == nil {
		return nil, nil
	}

	now := time.Now()
	for key, value := range data {
		session.Data[key] = value
	}
	session.LastInteraction = now
	session.ExpiresAt = now.Add(sessionTTL)

	if err := s.store.SaveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Delete removes the session entirely, ending the interaction.
func (s *SessionService) Delete(phone string) error {
	return s.store.DeleteSession(phone)
}

// ResetToMainMenu puts the sender back at the main menu and clears the
// accumulated data bag. Unlike Set, this replaces the data: a finished
// flow's leftovers must not leak into the next one.
func (s *SessionService) ResetToMainMenu(phone string) error {
	now := time.Now()

	session := s.Get(phone)
	if session == nil {
		session = &models.UserSession{Phone: phone}
	}
	session.PreviousStep = session.Step
	session.Step = models.StepMainMenu
	session.Data = models.SessionData{}
	session.LastInteraction = now
	session.ExpiresAt = now.Add(sessionTTL)

	if err := s.store.SaveSession(session); err != nil {
		log.Printf("❌ Failed to reset session for %s: %v", phone, err)
		return err
	}
	return nil
}
