// services/reminder_service.go
package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"spalounge-backend/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultReminderTitle is used when a reminder template has no title.
const DefaultReminderTitle = "Appointment Reminder"

// ReminderService runs the time-driven sweep: for every active reminder
// template it computes the trigger window, matches confirmed bookings and
// feeds the matches into the dispatch pipeline. Each run is independent;
// there is no persisted state between sweeps.
type ReminderService struct {
	templates TemplateStore
	resolver  *Resolver
	engine    *DispatchService
	log       *zap.Logger
	now       func() time.Time
}

func NewReminderService(db *gorm.DB, engine *DispatchService, log *zap.Logger) *ReminderService {
	return &ReminderService{
		templates: NewTemplateStore(db),
		resolver:  NewResolver(NewProfileStore(db), NewBookingStore(db), log),
		engine:    engine,
		log:       log,
		now:       time.Now,
	}
}

func (s *ReminderService) StartScheduler() *cron.Cron {
	spec := os.Getenv("REMINDER_CRON")
	if spec == "" {
		spec = "*/15 * * * *"
	}

	c := cron.New()
	c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		notified, err := s.RunSweep(ctx)
		if err != nil {
			s.log.Error("reminder sweep failed", zap.Error(err))
			return
		}
		s.log.Info("reminder sweep complete", zap.Int("notified", notified))
	})
	c.Start()

	s.log.Info("reminder scheduler started", zap.String("cron", spec))
	return c
}

// RunSweep evaluates every active reminder template once and returns the
// total number of recipients notified. A template with an unknown offset,
// a failed store read or zero matches only skips that template; the sweep
// always moves on to the next one.
func (s *ReminderService) RunSweep(ctx context.Context) (int, error) {
	metrics.ReminderSweeps.Inc()

	templates, err := s.templates.ActiveByType(ctx, TypeBookingReminder)
	if err != nil {
		return 0, fmt.Errorf("fetch reminder templates: %w", err)
	}

	now := s.now()
	total := 0
	for _, tpl := range templates {
		offset, err := ParseTriggerOffset(tpl.TriggerOffset)
		if err != nil {
			s.log.Warn("skipping template with unknown trigger offset",
				zap.String("template", tpl.ID.String()),
				zap.String("offset", tpl.TriggerOffset))
			continue
		}

		recipients, err := s.resolver.ResolveReminderWindow(ctx, now, offset)
		if err != nil {
			s.log.Error("template matching failed",
				zap.String("template", tpl.ID.String()),
				zap.Error(err))
			continue
		}
		if len(recipients) == 0 {
			continue
		}

		title := tpl.Title
		if title == "" {
			title = DefaultReminderTitle
		}

		res := s.engine.Dispatch(ctx, DispatchRequest{
			Title:            title,
			Body:             tpl.Body,
			NotificationType: TypeBookingReminder,
			Recipients:       recipients,
		})
		total += res.RecipientCount
	}
	return total, nil
}
