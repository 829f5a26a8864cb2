package repository

import (
	"context"
	"errors"

	"meditrack/internal/domain/entity"
	domainRepo "meditrack/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	appointments := []entity.Appointment{}
	err := r.db.WithContext(ctx).Order("id").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) (int64, error) {
	// Select lists every mutable column so zero values (e.g. cleared
	// notes) are written too.
	result := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ?", appointment.ID).
		Select("patient_id", "doctor_id", "appointment_datetime", "status", "reason", "notes").
		Updates(appointment)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Delete(ctx context.Context, id int) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&entity.Appointment{}, id)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID int) ([]entity.Appointment, error) {
	appointments := []entity.Appointment{}
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("appointment_datetime").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID int) ([]entity.Appointment, error) {
	appointments := []entity.Appointment{}
	err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("appointment_datetime").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) MaxID(ctx context.Context) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&max).Error
	return max, err
}
