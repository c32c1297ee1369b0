package services

import (
	"context"
	"log"
	"time"

	"evercare-dental/internal/adapters/persistence/models"
	"evercare-dental/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// ReminderService sends WhatsApp reminders for today's confirmed
// appointments on a daily cron schedule.
type ReminderService struct {
	apptRepo repositories.AppointmentRepository
	notifier Notifier
	spec     string
	cron     *cron.Cron
}

// NewReminderService creates a new reminder service. spec is a
// standard 5-field cron expression (default "30 8 * * *").
func NewReminderService(apptRepo repositories.AppointmentRepository, notifier Notifier, spec string) *ReminderService {
	return &ReminderService{
		apptRepo: apptRepo,
		notifier: notifier,
		spec:     spec,
		cron:     cron.New(),
	}
}

// Start schedules the daily reminder job
func (s *ReminderService) Start() error {
	if !s.notifier.IsEnabled() {
		log.Println("ℹ️ WhatsApp not configured, reminder job disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.spec, s.SendTodayReminders); err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("✅ Reminder job scheduled [%s]", s.spec)
	return nil
}

// Stop stops the cron scheduler
func (s *ReminderService) Stop() {
	s.cron.Stop()
	log.Println("🛑 Reminder job stopped")
}

// SendTodayReminders sends a reminder for each confirmed appointment
// on today's date. Send failures are logged per appointment and never
// abort the batch.
func (s *ReminderService) SendTodayReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	today := time.Now().Format(time.DateOnly)
	appts, err := s.apptRepo.ListByDateAndStatus(ctx, today, models.StatusConfirmed)
	if err != nil {
		log.Printf("❌ Reminder query error: %v", err)
		return
	}

	sent := 0
	for i := range appts {
		appt := &appts[i]
		if err := s.notifier.SendReminder(ctx, appt.Mobile, appt.FullName, appt.Date, appt.Time); err != nil {
			log.Printf("⚠️ Reminder failed for %s (%s %s): %v", appt.Mobile, appt.Date, appt.Time, err)
			continue
		}
		sent++
	}

	log.Printf("✅ Reminders sent: %d/%d for %s", sent, len(appts), today)
}
