package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/cfcpush/chatbot-backend/internal/models"
)

// DatabaseStore persists everything through GORM/PostgreSQL.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a store backed by the given GORM connection.
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// Session operations

func (d *DatabaseStore) GetSession(phone string) (*models.UserSession, error) {
	var session models.UserSession
	err := d.db.
		Where("phone = ? AND expires_at > ?", phone, time.Now()).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	if session.Data == nil {
		session.Data = models.SessionData{}
	}
	return &session, nil
}

func (d *DatabaseStore) SaveSession(session *models.UserSession) error {
	var existing models.UserSession
	err := d.db.Where("phone = ?", session.Phone).First(&existing).Error
	if err == nil {
		session.ID = existing.ID
		session.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return d.db.Save(session).Error
}

func (d *DatabaseStore) DeleteSession(phone string) error {
	return d.db.Unscoped().
		Where("phone = ?", phone).
		Delete(&models.UserSession{}).Error
}

func (d *DatabaseStore) DeleteExpiredSessions() (int64, error) {
	result := d.db.Unscoped().
		Where("expires_at <= ?", time.Now()).
		Delete(&models.UserSession{})
	return result.RowsAffected, result.Error
}

func (d *DatabaseStore) CountActiveSessions() (int64, error) {
	var count int64
	err := d.db.Model(&models.UserSession{}).
		Where("expires_at > ?", time.Now()).
		Count(&count).Error
	return count, err
}

// User operations

func (d *DatabaseStore) GetUserByPhone(phone string) (*models.User, error) {
	var user models.User
	if err := d.db.Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *DatabaseStore) SaveUser(user *models.User) error {
	var existing models.User
	err := d.db.Where("phone = ?", user.Phone).First(&existing).Error
	if err == nil {
		user.ID = existing.ID
		user.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return d.db.Save(user).Error
}

func (d *DatabaseStore) CountMembers() (int64, error) {
	var count int64
	err := d.db.Model(&models.User{}).
		Where("is_member = ?", true).
		Count(&count).Error
	return count, err
}

// Request operations

func (d *DatabaseStore) CreatePrayerRequest(req *models.PrayerRequest) error {
	return d.db.Create(req).Error
}

func (d *DatabaseStore) GetRecentPrayerRequests(limit int) ([]*models.PrayerRequest, error) {
	var requests []*models.PrayerRequest
	err := d.db.Order("created_at DESC").Limit(limit).Find(&requests).Error
	return requests, err
}

func (d *DatabaseStore) CreateAssistanceRequest(req *models.AssistanceRequest) error {
	return d.db.Create(req).Error
}

func (d *DatabaseStore) GetRecentAssistanceRequests(limit int) ([]*models.AssistanceRequest, error) {
	var requests []*models.AssistanceRequest
	err := d.db.Order("created_at DESC").Limit(limit).Find(&requests).Error
	return requests, err
}

func (d *DatabaseStore) CreateVisitRequest(req *models.VisitRequest) error {
	return d.db.Create(req).Error
}

func (d *DatabaseStore) GetRecentVisitRequests(limit int) ([]*models.VisitRequest, error) {
	var requests []*models.VisitRequest
	err := d.db.Order("created_at DESC").Limit(limit).Find(&requests).Error
	return requests, err
}

func (d *DatabaseStore) CreateTransferRequest(req *models.TransferRequest) error {
	return d.db.Create(req).Error
}

func (d *DatabaseStore) GetRecentTransferRequests(limit int) ([]*models.TransferRequest, error) {
	var requests []*models.TransferRequest
	err := d.db.Order("created_at DESC").Limit(limit).Find(&requests).Error
	return requests, err
}
