package service

import (
	"context"
	"io"
	"testing"
	"time"

	"meditrack/internal/domain/entity"
	"meditrack/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ repository.AppointmentRepository = (*stubAppointmentRepo)(nil)

// stubAppointmentRepo serves a fixed appointment list; write operations
// are unused by the services under test.
type stubAppointmentRepo struct {
	appointments []entity.Appointment
	err          error
}

func (s *stubAppointmentRepo) Create(context.Context, *entity.Appointment) error { return nil }
func (s *stubAppointmentRepo) FindByID(context.Context, int) (*entity.Appointment, error) {
	return nil, nil
}
func (s *stubAppointmentRepo) FindAll(context.Context) ([]entity.Appointment, error) {
	return s.appointments, s.err
}
func (s *stubAppointmentRepo) Update(context.Context, *entity.Appointment) (int64, error) {
	return 0, nil
}
func (s *stubAppointmentRepo) Delete(context.Context, int) (int64, error) { return 0, nil }
func (s *stubAppointmentRepo) FindByPatientID(context.Context, int) ([]entity.Appointment, error) {
	return nil, nil
}
func (s *stubAppointmentRepo) FindByDoctorID(context.Context, int) ([]entity.Appointment, error) {
	return nil, nil
}
func (s *stubAppointmentRepo) MaxID(context.Context) (int, error) { return 0, nil }

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRemindUpcoming(t *testing.T) {
	now := time.Now()
	repo := &stubAppointmentRepo{appointments: []entity.Appointment{
		{ID: 3001, Status: entity.AppointmentStatusConfirmed, DateTime: now.Add(2 * time.Hour)},
		{ID: 3002, Status: entity.AppointmentStatusConfirmed, DateTime: now.Add(23 * time.Hour)},
		// Outside the 24h window.
		{ID: 3003, Status: entity.AppointmentStatusConfirmed, DateTime: now.Add(25 * time.Hour)},
		// Already started.
		{ID: 3004, Status: entity.AppointmentStatusConfirmed, DateTime: now.Add(-time.Hour)},
		// Not confirmed.
		{ID: 3005, Status: entity.AppointmentStatusPending, DateTime: now.Add(2 * time.Hour)},
	}}

	s := NewReminderService(quietLogger(), repo)
	reminded, err := s.RemindUpcoming(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, reminded)
}

func TestRemindUpcomingPropagatesStoreError(t *testing.T) {
	repo := &stubAppointmentRepo{err: assert.AnError}

	s := NewReminderService(quietLogger(), repo)
	_, err := s.RemindUpcoming(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
