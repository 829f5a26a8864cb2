package repository

import (
	"context"

	"meditrack/internal/domain/entity"
)

// BillRepository is the record-store contract for bills.
// FindByAppointmentID returns the first bill for the appointment; one
// bill per appointment is a convention, not a constraint.
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	FindByID(ctx context.Context, id int) (*entity.Bill, error)
	FindByAppointmentID(ctx context.Context, appointmentID int) (*entity.Bill, error)
	FindAll(ctx context.Context) ([]entity.Bill, error)
	Update(ctx context.Context, bill *entity.Bill) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
	MaxID(ctx context.Context) (int, error)
}
