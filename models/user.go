package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"spalounge-backend/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"not null"`
	Phone    string

	Role string `gorm:"type:varchar(20);not null;default:'customer'"` // 'customer', 'staff' or 'admin'

	// Opaque device token registered by the mobile client. A user without
	// one can never appear in a push delivery batch.
	PushToken *string `gorm:"index"`

	// Per-category notification preferences. A missing key means the
	// category is enabled; only an explicit false opts the user out.
	Preferences JSONB `gorm:"type:jsonb;default:'{}'"`

	Membership *Membership `gorm:"foreignKey:UserID"`
	Bookings   []Booking   `gorm:"foreignKey:UserID"`

	LastLogin *time.Time
	IsActive  bool `gorm:"default:true"`

	gorm.Model
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New()
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

// HasPushToken reports whether the user carries a non-empty device token.
func (u *User) HasPushToken() bool {
	return u.PushToken != nil && *u.PushToken != ""
}

// Custom JSONB type for notification preferences
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &j)
}
