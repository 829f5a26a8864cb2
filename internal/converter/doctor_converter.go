package converter

import (
	"meditrack/internal/delivery/dto"
	"meditrack/internal/domain/entity"
	"meditrack/pkg/datetime"
)

// DoctorToResponse converts a Doctor entity to a DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              doctor.ID,
		Name:            doctor.Name,
		DateOfBirth:     datetime.FormatDate(doctor.DateOfBirth),
		Age:             doctor.Age(),
		Email:           doctor.Email,
		Phone:           doctor.Phone,
		Specialization:  string(doctor.Specialization),
		ConsultationFee: doctor.ConsultationFee,
		ExperienceYears: doctor.ExperienceYears,
		LicenseNumber:   doctor.LicenseNumber,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
