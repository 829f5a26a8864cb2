package converter

import (
	"meditrack/internal/delivery/dto"
	"meditrack/internal/domain/entity"
	"meditrack/pkg/datetime"
)

// AppointmentToResponse converts an Appointment entity to a DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:        appointment.ID,
		PatientID: appointment.PatientID,
		DoctorID:  appointment.DoctorID,
		DateTime:  datetime.FormatDateTime(appointment.DateTime),
		Status:    string(appointment.Status),
		Reason:    appointment.Reason,
		Notes:     appointment.Notes,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
