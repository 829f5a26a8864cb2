package repository

import (
	"context"

	"meditrack/internal/domain/entity"
)

// DoctorRepository is the record-store contract for doctors.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindByID(ctx context.Context, id int) (*entity.Doctor, error)
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	Update(ctx context.Context, doctor *entity.Doctor) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
	SearchByName(ctx context.Context, name string) ([]entity.Doctor, error)
	FindBySpecialization(ctx context.Context, specialization entity.Specialization) ([]entity.Doctor, error)
	MaxID(ctx context.Context) (int, error)
}
