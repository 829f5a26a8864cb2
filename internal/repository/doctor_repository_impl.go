package repository

import (
	"context"
	"errors"

	"meditrack/internal/domain/entity"
	domainRepo "meditrack/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	return r.db.WithContext(ctx).Create(doctor).Error
}

func (r *doctorRepository) FindByID(ctx context.Context, id int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	doctors := []entity.Doctor{}
	err := r.db.WithContext(ctx).Order("id").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *entity.Doctor) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Doctor{}).
		Where("id = ?", doctor.ID).
		Updates(doctor)
	return result.RowsAffected, result.Error
}

func (r *doctorRepository) Delete(ctx context.Context, id int) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&entity.Doctor{}, id)
	return result.RowsAffected, result.Error
}

func (r *doctorRepository) SearchByName(ctx context.Context, name string) ([]entity.Doctor, error) {
	doctors := []entity.Doctor{}
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+name+"%").
		Order("id").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindBySpecialization(ctx context.Context, specialization entity.Specialization) ([]entity.Doctor, error) {
	doctors := []entity.Doctor{}
	err := r.db.WithContext(ctx).
		Where("specialization = ?", specialization).
		Order("id").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) MaxID(ctx context.Context) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&entity.Doctor{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&max).Error
	return max, err
}
