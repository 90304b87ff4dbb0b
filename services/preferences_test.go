// services/preferences_test.go
package services

import (
	"testing"

	"spalounge-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestPreferenceKeyFor(t *testing.T) {
	assert.Equal(t, "bookingReminders", PreferenceKeyFor(TypeBookingReminder))
	assert.Equal(t, "treatmentUpdates", PreferenceKeyFor(TypeTreatmentUpdate))
	assert.Equal(t, "promotionalOffers", PreferenceKeyFor(TypePromotionalOffer))
	assert.Equal(t, "promotionalOffers", PreferenceKeyFor("something_else"))
	assert.Equal(t, "promotionalOffers", PreferenceKeyFor(""))
}

func TestShouldNotify(t *testing.T) {
	tests := []struct {
		name             string
		preferences      models.JSONB
		notificationType string
		want             bool
	}{
		{
			name:             "explicit false excludes",
			preferences:      models.JSONB{"bookingReminders": false},
			notificationType: TypeBookingReminder,
			want:             false,
		},
		{
			name:             "explicit true includes",
			preferences:      models.JSONB{"bookingReminders": true},
			notificationType: TypeBookingReminder,
			want:             true,
		},
		{
			name:             "absent key includes",
			preferences:      models.JSONB{"treatmentUpdates": false},
			notificationType: TypeBookingReminder,
			want:             true,
		},
		{
			name:             "nil preferences map includes",
			preferences:      nil,
			notificationType: TypeBookingReminder,
			want:             true,
		},
		{
			name:             "null value includes",
			preferences:      models.JSONB{"bookingReminders": nil},
			notificationType: TypeBookingReminder,
			want:             true,
		},
		{
			name:             "non-boolean value includes",
			preferences:      models.JSONB{"bookingReminders": "off"},
			notificationType: TypeBookingReminder,
			want:             true,
		},
		{
			name:             "unknown type uses promotional key",
			preferences:      models.JSONB{"promotionalOffers": false},
			notificationType: "flash_sale",
			want:             false,
		},
		{
			name:             "empty type uses promotional key",
			preferences:      models.JSONB{"promotionalOffers": false},
			notificationType: "",
			want:             false,
		},
		{
			name:             "treatment updates disabled",
			preferences:      models.JSONB{"treatmentUpdates": false},
			notificationType: TypeTreatmentUpdate,
			want:             false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := testUser("Ana", nil, tt.preferences)
			assert.Equal(t, tt.want, ShouldNotify(user, tt.notificationType))
		})
	}
}
