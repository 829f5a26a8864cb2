package converter

import (
	"meditrack/internal/delivery/dto"
	"meditrack/internal/domain/entity"
	"meditrack/pkg/datetime"
)

// PatientToResponse converts a Patient entity to a PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:                    patient.ID,
		Name:                  patient.Name,
		DateOfBirth:           datetime.FormatDate(patient.DateOfBirth),
		Age:                   patient.Age(),
		Email:                 patient.Email,
		Phone:                 patient.Phone,
		MedicalHistory:        patient.MedicalHistory,
		Allergies:             patient.Allergies,
		InsuranceProvider:     patient.InsuranceProvider,
		InsurancePolicyNumber: patient.InsurancePolicyNumber,
	}
}

// PatientsToResponses converts a slice of Patient entities to DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
