package repository

import (
	"context"
	"errors"

	"meditrack/internal/domain/entity"
	domainRepo "meditrack/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, id int) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	patients := []entity.Patient{}
	err := r.db.WithContext(ctx).Order("id").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Patient{}).
		Where("id = ?", patient.ID).
		Updates(patient)
	return result.RowsAffected, result.Error
}

func (r *patientRepository) Delete(ctx context.Context, id int) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&entity.Patient{}, id)
	return result.RowsAffected, result.Error
}

func (r *patientRepository) SearchByName(ctx context.Context, name string) ([]entity.Patient, error) {
	patients := []entity.Patient{}
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+name+"%").
		Order("id").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) MaxID(ctx context.Context) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&entity.Patient{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&max).Error
	return max, err
}
