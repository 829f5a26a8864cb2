package dto

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID int    `json:"patient_id" validate:"required,min=1"`
	DoctorID  int    `json:"doctor_id" validate:"required,min=1"`
	DateTime  string `json:"appointment_datetime" validate:"required"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	PatientID int    `json:"patient_id"`
	DoctorID  int    `json:"doctor_id"`
	DateTime  string `json:"appointment_datetime"`
	Status    string `json:"status"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes"`
}

// Response DTOs

type AppointmentResponse struct {
	ID        int    `json:"id"`
	PatientID int    `json:"patient_id"`
	DoctorID  int    `json:"doctor_id"`
	DateTime  string `json:"appointment_datetime"`
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
