package converter

import (
	"meditrack/internal/delivery/dto"
	"meditrack/internal/domain/entity"
	"meditrack/pkg/datetime"
)

// BillToResponse converts a Bill entity to a BillResponse DTO
func BillToResponse(bill *entity.Bill) *dto.BillResponse {
	if bill == nil {
		return nil
	}

	return &dto.BillResponse{
		ID:            bill.ID,
		AppointmentID: bill.AppointmentID,
		BaseAmount:    bill.BaseAmount,
		TaxAmount:     bill.TaxAmount,
		TotalAmount:   bill.TotalAmount,
		BillDate:      datetime.FormatDateTime(bill.BillDate),
		PaymentStatus: bill.PaymentStatus,
	}
}

// BillSummaryToResponse converts an immutable BillSummary to a DTO
func BillSummaryToResponse(summary entity.BillSummary) *dto.BillSummaryResponse {
	return &dto.BillSummaryResponse{
		BillID:        summary.BillID(),
		AppointmentID: summary.AppointmentID(),
		BaseAmount:    summary.BaseAmount(),
		TaxAmount:     summary.TaxAmount(),
		TotalAmount:   summary.TotalAmount(),
		BillDate:      datetime.FormatDateTime(summary.BillDate()),
		PaymentStatus: summary.PaymentStatus(),
	}
}
