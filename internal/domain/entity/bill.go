package entity

import "time"

// TaxRate is the flat tax applied to every bill's base amount.
const TaxRate = 0.10

const PaymentStatusPending = "PENDING"

// Bill is the charge derived from an appointment's consultation fee.
// TaxAmount and TotalAmount are derived from BaseAmount and must only be
// written through SetBaseAmount so the three can never be observed
// inconsistent.
type Bill struct {
	ID            int       `gorm:"primaryKey" json:"id"`
	AppointmentID int       `gorm:"not null;index" json:"appointment_id"`
	BaseAmount    float64   `gorm:"not null" json:"base_amount"`
	TaxAmount     float64   `gorm:"not null" json:"tax_amount"`
	TotalAmount   float64   `gorm:"not null" json:"total_amount"`
	BillDate      time.Time `gorm:"not null" json:"bill_date"`
	PaymentStatus string    `gorm:"type:varchar(20);not null;default:'PENDING'" json:"payment_status"`
}

func (Bill) TableName() string {
	return "bills"
}

// NewBill creates an empty bill dated now with a pending payment status.
func NewBill(id, appointmentID int) *Bill {
	return &Bill{
		ID:            id,
		AppointmentID: appointmentID,
		BillDate:      time.Now(),
		PaymentStatus: PaymentStatusPending,
	}
}

// NewConsultationBill creates a standard bill for a consultation fee.
func NewConsultationBill(id, appointmentID int, baseAmount float64) *Bill {
	b := NewBill(id, appointmentID)
	b.SetBaseAmount(baseAmount)
	return b
}

// NewDiscountedBill applies a percentage discount to the base amount
// before tax derivation.
func NewDiscountedBill(id, appointmentID int, baseAmount, discountPercent float64) *Bill {
	b := NewBill(id, appointmentID)
	b.SetBaseAmount(baseAmount * (1 - discountPercent/100))
	return b
}

// NewPremiumBill adds extra service charges to the base amount before
// tax derivation.
func NewPremiumBill(id, appointmentID int, baseAmount, additionalCharges float64) *Bill {
	b := NewBill(id, appointmentID)
	b.SetBaseAmount(baseAmount + additionalCharges)
	return b
}

// SetBaseAmount sets the base amount and recomputes tax and total.
func (b *Bill) SetBaseAmount(amount float64) {
	b.BaseAmount = amount
	b.TaxAmount = amount * TaxRate
	b.TotalAmount = amount + b.TaxAmount
}

// Summary projects the bill into an immutable read-only view.
func (b *Bill) Summary() BillSummary {
	return BillSummary{
		billID:        b.ID,
		appointmentID: b.AppointmentID,
		baseAmount:    b.BaseAmount,
		taxAmount:     b.TaxAmount,
		totalAmount:   b.TotalAmount,
		billDate:      b.BillDate,
		paymentStatus: b.PaymentStatus,
	}
}

// BillSummary is a read-only projection of a bill. All fields are copied
// at construction; callers cannot reach back into the billing record.
type BillSummary struct {
	billID        int
	appointmentID int
	baseAmount    float64
	taxAmount     float64
	totalAmount   float64
	billDate      time.Time
	paymentStatus string
}

func (s BillSummary) BillID() int           { return s.billID }
func (s BillSummary) AppointmentID() int    { return s.appointmentID }
func (s BillSummary) BaseAmount() float64   { return s.baseAmount }
func (s BillSummary) TaxAmount() float64    { return s.taxAmount }
func (s BillSummary) TotalAmount() float64  { return s.totalAmount }
func (s BillSummary) BillDate() time.Time   { return s.billDate }
func (s BillSummary) PaymentStatus() string { return s.paymentStatus }
