// services/preferences.go
package services

import (
	"spalounge-backend/models"
)

// Notification categories understood by the dispatch engine.
const (
	TypeBookingReminder  = "booking_reminder"
	TypeTreatmentUpdate  = "treatment_update"
	TypePromotionalOffer = "promotional_offer"
)

// PreferenceKeyFor maps a notification category to the preference key the
// client stores. Anything that is not a known category falls into the
// promotional bucket.
func PreferenceKeyFor(notificationType string) string {
	switch notificationType {
	case TypeBookingReminder:
		return "bookingReminders"
	case TypeTreatmentUpdate:
		return "treatmentUpdates"
	default:
		return "promotionalOffers"
	}
}

// ShouldNotify reports whether a user receives the given category.
// The policy is opt-out: only an explicit false under the mapped key
// suppresses the notification. A missing key, a null, or any non-boolean
// value counts as consent.
func ShouldNotify(user models.User, notificationType string) bool {
	value, ok := user.Preferences[PreferenceKeyFor(notificationType)]
	if !ok {
		return true
	}
	enabled, isBool := value.(bool)
	return !isBool || enabled
}
