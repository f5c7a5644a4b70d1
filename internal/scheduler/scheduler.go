package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// sweepInterval is how often idle review sessions are collected
const sweepInterval = 10 * time.Minute

// ReminderSender sends the daily due-review reminders
type ReminderSender interface {
	SendDueReminders(ctx context.Context) (int, error)
}

// SessionExpirer drops idle review sessions
type SessionExpirer interface {
	Expire(now time.Time, ttl time.Duration) int
}

// Options configures the scheduled jobs
type Options struct {
	Location   *time.Location
	ReminderAt string // HH:MM in Location
	SessionTTL time.Duration
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	reminders ReminderSender
	sessions  SessionExpirer
	opts      Options
	logger    *zap.Logger
}

// New creates a new scheduler instance
func New(opts Options, reminders ReminderSender, sessions SessionExpirer, logger *zap.Logger) *Scheduler {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(opts.Location),
		reminders: reminders,
		sessions:  sessions,
		opts:      opts,
		logger:    logger,
	}
}

// Start registers the jobs and runs them in the background.
// The reminder job is skipped when no sender was given.
func (s *Scheduler) Start() error {
	if s.reminders != nil {
		if _, err := s.scheduler.Every(1).Day().At(s.opts.ReminderAt).Do(s.SendReminders); err != nil {
			return fmt.Errorf("schedule reminders at %q: %w", s.opts.ReminderAt, err)
		}
	}
	if _, err := s.scheduler.Every(sweepInterval).Do(s.ExpireSessions); err != nil {
		return fmt.Errorf("schedule session sweep: %w", err)
	}

	s.scheduler.StartAsync()
	s.logger.Info("Scheduler started",
		zap.String("reminder_at", s.opts.ReminderAt),
		zap.Duration("session_ttl", s.opts.SessionTTL))
	return nil
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// SendReminders runs one reminder pass
func (s *Scheduler) SendReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := s.reminders.SendDueReminders(ctx); err != nil {
		s.logger.Error("Reminder run finished with errors", zap.Error(err))
	}
}

// ExpireSessions drops sessions idle for longer than the configured TTL
func (s *Scheduler) ExpireSessions() {
	if n := s.sessions.Expire(time.Now(), s.opts.SessionTTL); n > 0 {
		s.logger.Info("Expired idle review sessions", zap.Int("count", n))
	}
}
