package service

import (
	"context"
	"time"

	"meditrack/internal/domain/entity"
	"meditrack/internal/domain/repository"
	"meditrack/pkg/datetime"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ReminderService periodically logs reminders for confirmed appointments
// starting within the next 24 hours.
type ReminderService struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	cron            *cron.Cron
}

func NewReminderService(log *logrus.Logger, appointmentRepo repository.AppointmentRepository) *ReminderService {
	return &ReminderService{
		log:             log,
		appointmentRepo: appointmentRepo,
		cron:            cron.New(),
	}
}

// Start schedules the reminder sweep with the given cron spec.
func (s *ReminderService) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := s.RemindUpcoming(ctx); err != nil {
			s.log.Warnf("Reminder sweep failed: %+v", err)
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Infof("Appointment reminder job scheduled (%s)", spec)
	return nil
}

// Stop halts the cron scheduler.
func (s *ReminderService) Stop() {
	s.cron.Stop()
}

// RemindUpcoming logs a reminder for every confirmed appointment within
// the next 24 hours and returns how many were reminded.
func (s *ReminderService) RemindUpcoming(ctx context.Context) (int, error) {
	appointments, err := s.appointmentRepo.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	cutoff := now.Add(24 * time.Hour)
	reminded := 0
	for i := range appointments {
		apt := &appointments[i]
		if apt.Status != entity.AppointmentStatusConfirmed {
			continue
		}
		if apt.DateTime.After(now) && !apt.DateTime.After(cutoff) {
			s.log.Infof("Reminder: appointment #%d at %s", apt.ID, datetime.FormatDateTime(apt.DateTime))
			reminded++
		}
	}
	return reminded, nil
}
