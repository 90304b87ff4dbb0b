package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Membership struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`
	Tier   string    `gorm:"type:varchar(30);not null"` // e.g. 'Silver', 'Gold', 'Elite'

	IsActive bool `gorm:"default:true"`

	gorm.Model
}

func (m *Membership) BeforeCreate(tx *gorm.DB) (err error) {
	m.ID = uuid.New()
	return
}
