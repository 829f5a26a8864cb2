package dto

// Request DTOs

// CreateBillRequest selects the bill variant. An empty body produces a
// standard consultation bill.
type CreateBillRequest struct {
	Type              string  `json:"type" validate:"omitempty,oneof=STANDARD DISCOUNTED PREMIUM"`
	DiscountPercent   float64 `json:"discount_percent" validate:"gte=0,lte=100"`
	AdditionalCharges float64 `json:"additional_charges" validate:"gte=0"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required"`
}

// Response DTOs

type BillResponse struct {
	ID            int     `json:"id"`
	AppointmentID int     `json:"appointment_id"`
	BaseAmount    float64 `json:"base_amount"`
	TaxAmount     float64 `json:"tax_amount"`
	TotalAmount   float64 `json:"total_amount"`
	BillDate      string  `json:"bill_date"`
	PaymentStatus string  `json:"payment_status"`
}

// BillSummaryResponse mirrors the immutable bill summary projection.
type BillSummaryResponse struct {
	BillID        int     `json:"bill_id"`
	AppointmentID int     `json:"appointment_id"`
	BaseAmount    float64 `json:"base_amount"`
	TaxAmount     float64 `json:"tax_amount"`
	TotalAmount   float64 `json:"total_amount"`
	BillDate      string  `json:"bill_date"`
	PaymentStatus string  `json:"payment_status"`
}
