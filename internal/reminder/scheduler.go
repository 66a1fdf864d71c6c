// Package reminder implements the best-effort learning-nudge side feature:
// reminders are held in memory and swept once per second; a due reminder sends
// an email and a local notification, then is forgotten. Nothing survives a
// process restart.
package reminder

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Reminder struct {
	ID     string
	Text   string
	Email  string
	FireAt time.Time
}

// Mailer delivers a reminder email.
type Mailer interface {
	Send(to, subject, body string) error
}

// Notifier pushes a fire-and-forget local notification.
type Notifier interface {
	Push(title, message string)
}

// Scheduler sweeps pending reminders once per second. Each reminder fires
// at-most-once: it is removed from the pending list before delivery is
// attempted.
type Scheduler struct {
	mu      sync.Mutex
	pending []Reminder

	mailer   Mailer
	notifier Notifier
	logger   *zap.Logger
	cron     *cron.Cron
}

func NewScheduler(mailer Mailer, notifier Notifier, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		mailer:   mailer,
		notifier: notifier,
		logger:   logger,
		cron:     cron.New(cron.WithSeconds()),
	}
}

// Start begins the once-per-second sweep.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("* * * * * *", s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the sweep; a sweep already running finishes first.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Schedule queues a reminder for delivery at or after fireAt.
func (s *Scheduler) Schedule(text, email string, fireAt time.Time) Reminder {
	r := Reminder{
		ID:     uuid.New().String(),
		Text:   text,
		Email:  email,
		FireAt: fireAt,
	}

	s.mu.Lock()
	s.pending = append(s.pending, r)
	s.mu.Unlock()

	s.logger.Info("Reminder scheduled",
		zap.String("reminder_id", r.ID),
		zap.Time("fire_at", fireAt))
	return r
}

// Pending reports the number of reminders not yet fired.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *Scheduler) sweep() {
	now := time.Now()

	s.mu.Lock()
	var due []Reminder
	remaining := s.pending[:0]
	for _, r := range s.pending {
		if !r.FireAt.After(now) {
			due = append(due, r)
		} else {
			remaining = append(remaining, r)
		}
	}
	s.pending = remaining
	s.mu.Unlock()

	for _, r := range due {
		s.fire(r)
	}
}

func (s *Scheduler) fire(r Reminder) {
	s.notifier.Push("Skill Reminder", "Today you need to learn: "+r.Text)

	if err := s.mailer.Send(r.Email, "AI Career Mentor Reminder", r.Text); err != nil {
		s.logger.Warn("Reminder email failed",
			zap.String("reminder_id", r.ID),
			zap.Error(err))
		return
	}

	s.logger.Info("Reminder delivered",
		zap.String("reminder_id", r.ID),
		zap.String("email", r.Email))
}
