package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	ServiceID *uuid.UUID `gorm:"type:uuid;index"`

	// The calendar date and the time of day are stored independently;
	// BookingTime is the raw 'HH:MM' or 'HH:MM:SS' string the booking UI
	// submits.
	BookingDate time.Time `gorm:"type:date;index;not null"`
	BookingTime string    `gorm:"type:varchar(8);not null"`

	Status string `gorm:"type:varchar(20);default:'pending'"` // pending, confirmed, completed, cancelled
	Notes  string

	gorm.Model
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	b.ID = uuid.New()
	return
}
