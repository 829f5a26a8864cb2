package repository

import (
	"context"

	"meditrack/internal/domain/entity"
)

// AppointmentRepository is the record-store contract for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id int) (*entity.Appointment, error)
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
	FindByPatientID(ctx context.Context, patientID int) ([]entity.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID int) ([]entity.Appointment, error)
	MaxID(ctx context.Context) (int, error)
}
