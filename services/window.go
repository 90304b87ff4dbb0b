// services/window.go
package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"spalounge-backend/models"
	"spalounge-backend/utils"
)

// MatchTolerance pads both ends of a reminder's target instant so that
// scheduler jitter does not make bookings slip between two sweeps.
const MatchTolerance = 15 * time.Minute

// ErrUnknownTriggerOffset marks a trigger offset outside the supported set.
var ErrUnknownTriggerOffset = errors.New("unknown trigger offset")

// The closed set of trigger offsets templates may carry. The label is
// signed relative to the booking start ("-1 hour" fires one hour before
// it), so the sweep's lookahead is the label's negation. Offsets are
// validated when a template is created or edited, not at dispatch time.
var triggerOffsets = map[string]time.Duration{
	"-1 day":  24 * time.Hour,
	"-1 hour": time.Hour,
	"+1 hour": -time.Hour,
}

// ParseTriggerOffset resolves an offset label like "-1 hour" to the
// lookahead the sweep adds to the current time.
func ParseTriggerOffset(s string) (time.Duration, error) {
	d, ok := triggerOffsets[strings.TrimSpace(s)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTriggerOffset, s)
	}
	return d, nil
}

// reminderWindow is the tolerance-expanded interval a booking's start time
// must fall into for a template to fire.
type reminderWindow struct {
	start time.Time
	end   time.Time
}

func windowFor(now time.Time, offset time.Duration) reminderWindow {
	target := now.Add(offset)
	return reminderWindow{
		start: target.Add(-MatchTolerance),
		end:   target.Add(MatchTolerance),
	}
}

// contains is inclusive on both ends.
func (w reminderWindow) contains(t time.Time) bool {
	return !t.Before(w.start) && !t.After(w.end)
}

// dates lists every calendar date the window touches. Usually one, but a
// window straddling midnight touches two; narrowing the booking query to
// only the start date would silently drop the far side.
func (w reminderWindow) dates() []time.Time {
	first := utils.BeginningOfDay(w.start)
	last := utils.BeginningOfDay(w.end)

	dates := []time.Time{first}
	for d := first.AddDate(0, 0, 1); !d.After(last); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// BookingStart reconstructs the absolute start of a booking from its
// calendar date plus the stored HH:MM[:SS] clock string.
func BookingStart(b models.Booking) (time.Time, error) {
	h, m, sec, err := parseClock(b.BookingTime)
	if err != nil {
		return time.Time{}, err
	}
	d := b.BookingDate
	return time.Date(d.Year(), d.Month(), d.Day(), h, m, sec, 0, d.Location()), nil
}

func parseClock(s string) (h, m, sec int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("malformed booking time %q", s)
	}
	h, err = strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, 0, fmt.Errorf("malformed booking time %q", s)
	}
	m, err = strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, 0, fmt.Errorf("malformed booking time %q", s)
	}
	if len(parts) == 3 {
		sec, err = strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 {
			return 0, 0, 0, fmt.Errorf("malformed booking time %q", s)
		}
	}
	return h, m, sec, nil
}

// clockHHMM trims a stored booking time down to HH:MM for display.
func clockHHMM(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 5 {
		return s[:5]
	}
	return s
}
