package entity

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "Pending"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
)

// Appointment links a patient and a doctor at a point in time
type Appointment struct {
	ID        int               `gorm:"primaryKey" json:"id"`
	PatientID int               `gorm:"not null;index" json:"patient_id"`
	DoctorID  int               `gorm:"not null;index" json:"doctor_id"`
	DateTime  time.Time         `gorm:"column:appointment_datetime;not null" json:"appointment_datetime"`
	Status    AppointmentStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	Reason    string            `gorm:"type:text" json:"reason,omitempty"`
	Notes     string            `gorm:"type:text" json:"notes,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Confirm sets the status to Confirmed. There is intentionally no check
// on the current status; a cancelled appointment can be re-confirmed.
func (a *Appointment) Confirm() {
	a.Status = AppointmentStatusConfirmed
}

// Cancel sets the status to Cancelled unconditionally.
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// Complete sets the status to Completed unconditionally.
func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}
