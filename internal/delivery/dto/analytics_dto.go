package dto

// Response DTOs

type AnalyticsReportResponse struct {
	AverageConsultationFee float64               `json:"average_consultation_fee"`
	TotalRevenue           float64               `json:"total_revenue"`
	ConfirmedAppointments  int                   `json:"confirmed_appointments"`
	AppointmentsPerDoctor  map[int]int           `json:"appointments_per_doctor"`
	TopDoctors             []DoctorResponse      `json:"top_doctors"`
	PendingAppointments    []AppointmentResponse `json:"pending_appointments"`
}
