package repository

import (
	"context"

	"meditrack/internal/domain/entity"
)

// PatientRepository is the record-store contract for patients.
// FindByID returns (nil, nil) when no row matches; FindAll never
// returns a nil slice.
type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id int) (*entity.Patient, error)
	FindAll(ctx context.Context) ([]entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
	SearchByName(ctx context.Context, name string) ([]entity.Patient, error)
	MaxID(ctx context.Context) (int, error)
}
