package dto

// Request DTOs

type CreatePatientRequest struct {
	Name                  string `json:"name" validate:"required"`
	DateOfBirth           string `json:"date_of_birth" validate:"required"`
	Email                 string `json:"email" validate:"required"`
	Phone                 string `json:"phone" validate:"required"`
	MedicalHistory        string `json:"medical_history"`
	Allergies             string `json:"allergies"`
	InsuranceProvider     string `json:"insurance_provider"`
	InsurancePolicyNumber string `json:"insurance_policy_number"`
}

type UpdatePatientRequest struct {
	Name                  string `json:"name"`
	DateOfBirth           string `json:"date_of_birth"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	MedicalHistory        string `json:"medical_history"`
	Allergies             string `json:"allergies"`
	InsuranceProvider     string `json:"insurance_provider"`
	InsurancePolicyNumber string `json:"insurance_policy_number"`
}

// Response DTOs

type PatientResponse struct {
	ID                    int    `json:"id"`
	Name                  string `json:"name"`
	DateOfBirth           string `json:"date_of_birth"`
	Age                   int    `json:"age"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	MedicalHistory        string `json:"medical_history,omitempty"`
	Allergies             string `json:"allergies,omitempty"`
	InsuranceProvider     string `json:"insurance_provider,omitempty"`
	InsurancePolicyNumber string `json:"insurance_policy_number,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
