// services/resolver.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spalounge-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Broadcast target types.
const (
	TargetAll  = "all"
	TargetRole = "role"
	TargetUser = "user"
	TargetTier = "tier"
)

// ErrInvalidTarget marks a broadcast target the resolver cannot interpret.
// Callers translate it into a client error.
var ErrInvalidTarget = errors.New("invalid broadcast target")

// Recipient pairs a resolved profile with the per-recipient substitution
// context and push payload data the composer and gateway need.
type Recipient struct {
	Profile models.User
	Context map[string]string
	Data    map[string]interface{}
}

type ProfileStore interface {
	AllWithPushToken(ctx context.Context) ([]models.User, error)
	ByRole(ctx context.Context, role string) ([]models.User, error)
	ByID(ctx context.Context, id uuid.UUID) ([]models.User, error)
	ByTier(ctx context.Context, tier string) ([]models.User, error)
	ByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.User, error)
}

type BookingStore interface {
	ConfirmedOnDates(ctx context.Context, dates []time.Time) ([]models.Booking, error)
}

// Resolver turns a broadcast segment or a reminder window into the list of
// recipients the dispatch engine should consider.
type Resolver struct {
	profiles ProfileStore
	bookings BookingStore
	log      *zap.Logger
}

func NewResolver(profiles ProfileStore, bookings BookingStore, log *zap.Logger) *Resolver {
	return &Resolver{profiles: profiles, bookings: bookings, log: log}
}

// ResolveSegment resolves a broadcast target. An empty result is not an
// error; a broadcast that reaches nobody still succeeds with zero counts.
func (r *Resolver) ResolveSegment(ctx context.Context, targetType, targetValue string) ([]Recipient, error) {
	var (
		users []models.User
		err   error
	)
	switch targetType {
	case TargetAll:
		users, err = r.profiles.AllWithPushToken(ctx)
	case TargetRole:
		users, err = r.profiles.ByRole(ctx, targetValue)
	case TargetUser:
		id, parseErr := uuid.Parse(targetValue)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: user id %q", ErrInvalidTarget, targetValue)
		}
		users, err = r.profiles.ByID(ctx, id)
	case TargetTier:
		users, err = r.profiles.ByTier(ctx, targetValue)
	default:
		return nil, fmt.Errorf("%w: target type %q", ErrInvalidTarget, targetType)
	}
	if err != nil {
		return nil, err
	}

	recipients := make([]Recipient, 0, len(users))
	for _, u := range users {
		recipients = append(recipients, Recipient{Profile: u})
	}
	return recipients, nil
}

// ResolveReminderWindow matches confirmed bookings whose start falls inside
// the tolerance-expanded window at now+offset and joins them to their
// owning profiles. Bookings whose owner has no push token are not reminder
// candidates at all, so they are dropped before the pipeline sees them.
func (r *Resolver) ResolveReminderWindow(ctx context.Context, now time.Time, offset time.Duration) ([]Recipient, error) {
	window := windowFor(now, offset)

	bookings, err := r.bookings.ConfirmedOnDates(ctx, window.dates())
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}

	var matched []models.Booking
	userIDs := make([]uuid.UUID, 0, len(bookings))
	seen := make(map[uuid.UUID]bool)
	for _, b := range bookings {
		start, err := BookingStart(b)
		if err != nil {
			r.log.Warn("skipping booking with malformed time",
				zap.String("booking", b.ID.String()),
				zap.String("time", b.BookingTime))
			continue
		}
		if !window.contains(start) {
			continue
		}
		matched = append(matched, b)
		if !seen[b.UserID] {
			seen[b.UserID] = true
			userIDs = append(userIDs, b.UserID)
		}
	}
	if len(matched) == 0 {
		return nil, nil
	}

	profiles, err := r.profiles.ByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("join profiles: %w", err)
	}

	recipients := make([]Recipient, 0, len(matched))
	for _, b := range matched {
		profile, ok := profiles[b.UserID]
		if !ok || !profile.HasPushToken() {
			continue
		}
		name := profile.Name
		if name == "" {
			name = "Customer"
		}
		recipients = append(recipients, Recipient{
			Profile: profile,
			Context: map[string]string{
				"customer_name": name,
				"booking_time":  clockHHMM(b.BookingTime),
			},
			Data: map[string]interface{}{
				"bookingId": b.ID.String(),
				"type":      TypeBookingReminder,
			},
		})
	}
	return recipients, nil
}
