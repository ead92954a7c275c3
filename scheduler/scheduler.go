package scheduler

import (
	"time"

	"opsdesk/config"
	"opsdesk/services"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// Scheduler runs the background maintenance jobs: closing attendance
// records left open overnight and pruning old read notifications.
type Scheduler struct {
	cron          *gocron.Scheduler
	attendance    *services.AttendanceService
	notifications *services.NotificationService
}

func New() *Scheduler {
	return &Scheduler{
		cron:          gocron.NewScheduler(time.Local),
		attendance:    services.NewAttendanceService(),
		notifications: services.NewNotificationService(),
	}
}

// Start registers the jobs and begins running them in the background.
func (s *Scheduler) Start(cfg *config.Config) error {
	_, err := s.cron.Every(1).Day().At(cfg.AutoCheckoutAt).Do(func() {
		if _, err := s.attendance.AutoCloseStale(); err != nil {
			logrus.WithError(err).Error("attendance auto-close job failed")
		}
	})
	if err != nil {
		return err
	}

	_, err = s.cron.Every(6).Hours().Do(func() {
		count, err := s.notifications.DeleteReadOlderThan(cfg.NotificationMaxAge)
		if err != nil {
			logrus.WithError(err).Error("notification pruning job failed")
			return
		}
		if count > 0 {
			logrus.WithField("count", count).Info("pruned old notifications")
		}
	})
	if err != nil {
		return err
	}

	s.cron.StartAsync()
	logrus.WithField("auto_checkout_at", cfg.AutoCheckoutAt).Info("background jobs started")
	return nil
}

// Stop halts all scheduled jobs and waits for running ones to finish.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
