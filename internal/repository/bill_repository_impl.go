package repository

import (
	"context"
	"errors"

	"meditrack/internal/domain/entity"
	domainRepo "meditrack/internal/domain/repository"

	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *billRepository) FindByID(ctx context.Context, id int) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&bill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) FindByAppointmentID(ctx context.Context, appointmentID int) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Order("id").
		First(&bill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) FindAll(ctx context.Context) ([]entity.Bill, error) {
	bills := []entity.Bill{}
	err := r.db.WithContext(ctx).Order("id").Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *billRepository) Update(ctx context.Context, bill *entity.Bill) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Where("id = ?", bill.ID).
		Select("appointment_id", "base_amount", "tax_amount", "total_amount", "bill_date", "payment_status").
		Updates(bill)
	return result.RowsAffected, result.Error
}

func (r *billRepository) Delete(ctx context.Context, id int) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&entity.Bill{}, id)
	return result.RowsAffected, result.Error
}

func (r *billRepository) MaxID(ctx context.Context) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&max).Error
	return max, err
}
