// models/notification.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification is the denormalized in-app audit record, one row per
// recipient the dispatch engine decided to notify. It records the decision
// to send, not delivery confirmation.
type Notification struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Title   string `gorm:"not null"`
	Message string `gorm:"type:text;not null"`
	Type    string `gorm:"type:varchar(32);not null"` // booking_reminder, treatment_update, promotional_offer
	IsRead  bool   `gorm:"default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
