package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationTemplate struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Type string    `gorm:"type:varchar(32);not null"` // booking_reminder, treatment_update, promotional_offer

	// Signed offset relative to the booking start, e.g. "-1 day", "-1 hour",
	// "+1 hour". Validated when the template is created or edited.
	TriggerOffset string `gorm:"type:varchar(20)"`

	Title    string
	Body     string `gorm:"type:text;not null"`
	IsActive bool   `gorm:"default:true"`

	gorm.Model
}

func (t *NotificationTemplate) BeforeCreate(tx *gorm.DB) (err error) {
	t.ID = uuid.New()
	return
}
