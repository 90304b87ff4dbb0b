// services/fakes_test.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"spalounge-backend/models"
	"spalounge-backend/utils"

	"github.com/google/uuid"
)

// fakeGateway counts chunks and can be told to fail specific ones.
// Tokens starting with "bad" are treated as malformed.
type fakeGateway struct {
	limit      int
	failChunks map[int]bool // 1-based SendBatch call numbers to fail
	calls      [][]PushMessage
}

func (g *fakeGateway) IsValidToken(token string) bool {
	return !strings.HasPrefix(token, "bad")
}

func (g *fakeGateway) ChunkLimit() int {
	if g.limit == 0 {
		return 100
	}
	return g.limit
}

func (g *fakeGateway) SendBatch(ctx context.Context, messages []PushMessage) ([]PushTicket, error) {
	g.calls = append(g.calls, messages)
	n := len(g.calls)
	if g.failChunks[n] {
		return nil, errors.New("gateway unavailable")
	}
	tickets := make([]PushTicket, 0, len(messages))
	for i := range messages {
		tickets = append(tickets, PushTicket{ID: fmt.Sprintf("ticket-%d-%d", n, i), Status: "ok"})
	}
	return tickets, nil
}

type fakeAuditStore struct {
	inserted   []models.Notification
	chunkSizes []int
	failChunks map[int]bool // 1-based insert call numbers to fail
	calls      int
}

func (s *fakeAuditStore) InsertNotifications(ctx context.Context, records []models.Notification) error {
	s.calls++
	s.chunkSizes = append(s.chunkSizes, len(records))
	if s.failChunks[s.calls] {
		return errors.New("insert failed")
	}
	s.inserted = append(s.inserted, records...)
	return nil
}

// fakeProfileStore mirrors the SQL-side filtering in memory.
type fakeProfileStore struct {
	users []models.User
	tiers map[uuid.UUID]string
	err   error
}

func (s *fakeProfileStore) AllWithPushToken(ctx context.Context) ([]models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.User
	for _, u := range s.users {
		if u.IsActive && u.HasPushToken() {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *fakeProfileStore) ByRole(ctx context.Context, role string) ([]models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.User
	for _, u := range s.users {
		if u.IsActive && u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *fakeProfileStore) ByID(ctx context.Context, id uuid.UUID) ([]models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.IsActive && u.ID == id {
			return []models.User{u}, nil
		}
	}
	return nil, nil
}

func (s *fakeProfileStore) ByTier(ctx context.Context, tier string) ([]models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.User
	for _, u := range s.users {
		if u.IsActive && u.HasPushToken() && s.tiers[u.ID] == tier {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *fakeProfileStore) ByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make(map[uuid.UUID]models.User)
	for _, u := range s.users {
		if want[u.ID] {
			out[u.ID] = u
		}
	}
	return out, nil
}

type fakeBookingStore struct {
	bookings []models.Booking
	err      error
}

func (s *fakeBookingStore) ConfirmedOnDates(ctx context.Context, dates []time.Time) ([]models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Booking
	for _, b := range s.bookings {
		if b.Status != "confirmed" {
			continue
		}
		for _, d := range dates {
			if utils.SameDay(b.BookingDate, d) {
				out = append(out, b)
				break
			}
		}
	}
	return out, nil
}

type fakeTemplateStore struct {
	templates []models.NotificationTemplate
	err       error
}

func (s *fakeTemplateStore) ActiveByType(ctx context.Context, notificationType string) ([]models.NotificationTemplate, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.NotificationTemplate
	for _, t := range s.templates {
		if t.IsActive && t.Type == notificationType {
			out = append(out, t)
		}
	}
	return out, nil
}

func strPtr(s string) *string { return &s }

func testUser(name string, token *string, prefs models.JSONB) models.User {
	return models.User{
		ID:          uuid.New(),
		Name:        name,
		Role:        "customer",
		PushToken:   token,
		Preferences: prefs,
		IsActive:    true,
	}
}
