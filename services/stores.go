// services/stores.go
package services

import (
	"context"
	"time"

	"spalounge-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORM-backed implementations of the store contracts the engine reads from.

type gormProfileStore struct{ db *gorm.DB }

func NewProfileStore(db *gorm.DB) ProfileStore { return &gormProfileStore{db: db} }

func (s *gormProfileStore) AllWithPushToken(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Where("push_token IS NOT NULL AND push_token <> '' AND is_active = true").
		Find(&users).Error
	return users, err
}

func (s *gormProfileStore) ByRole(ctx context.Context, role string) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Where("role = ? AND is_active = true", role).
		Find(&users).Error
	return users, err
}

func (s *gormProfileStore) ByID(ctx context.Context, id uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_active = true", id).
		Limit(1).
		Find(&users).Error
	return users, err
}

func (s *gormProfileStore) ByTier(ctx context.Context, tier string) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Joins("JOIN memberships ON memberships.user_id = users.id").
		Where("memberships.tier = ? AND memberships.is_active = true", tier).
		Where("users.push_token IS NOT NULL AND users.push_token <> '' AND users.is_active = true").
		Find(&users).Error
	return users, err
}

func (s *gormProfileStore) ByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

type gormBookingStore struct{ db *gorm.DB }

func NewBookingStore(db *gorm.DB) BookingStore { return &gormBookingStore{db: db} }

func (s *gormBookingStore) ConfirmedOnDates(ctx context.Context, dates []time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Where("booking_date IN ? AND status = ?", dates, "confirmed").
		Find(&bookings).Error
	return bookings, err
}

type TemplateStore interface {
	ActiveByType(ctx context.Context, notificationType string) ([]models.NotificationTemplate, error)
}

type gormTemplateStore struct{ db *gorm.DB }

func NewTemplateStore(db *gorm.DB) TemplateStore { return &gormTemplateStore{db: db} }

func (s *gormTemplateStore) ActiveByType(ctx context.Context, notificationType string) ([]models.NotificationTemplate, error) {
	var templates []models.NotificationTemplate
	err := s.db.WithContext(ctx).
		Where("type = ? AND is_active = true", notificationType).
		Find(&templates).Error
	return templates, err
}

type gormAuditStore struct{ db *gorm.DB }

func NewAuditStore(db *gorm.DB) AuditStore { return &gormAuditStore{db: db} }

// InsertNotifications writes one chunk in a single insert, so a chunk is
// one transaction.
func (s *gormAuditStore) InsertNotifications(ctx context.Context, records []models.Notification) error {
	if len(records) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&records).Error
}
