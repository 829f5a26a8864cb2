package dto

// Request DTOs

type CreateDoctorRequest struct {
	Name            string  `json:"name" validate:"required"`
	DateOfBirth     string  `json:"date_of_birth" validate:"required"`
	Email           string  `json:"email" validate:"required"`
	Phone           string  `json:"phone" validate:"required"`
	Specialization  string  `json:"specialization" validate:"required"`
	ConsultationFee float64 `json:"consultation_fee" validate:"gte=0"`
	ExperienceYears int     `json:"experience_years" validate:"gte=0"`
	LicenseNumber   string  `json:"license_number" validate:"required"`
}

type UpdateDoctorRequest struct {
	Name            string   `json:"name"`
	DateOfBirth     string   `json:"date_of_birth"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Specialization  string   `json:"specialization"`
	ConsultationFee *float64 `json:"consultation_fee"`
	ExperienceYears *int     `json:"experience_years"`
	LicenseNumber   string   `json:"license_number"`
}

// Response DTOs

type DoctorResponse struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	DateOfBirth     string  `json:"date_of_birth"`
	Age             int     `json:"age"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Specialization  string  `json:"specialization"`
	ConsultationFee float64 `json:"consultation_fee"`
	ExperienceYears int     `json:"experience_years"`
	LicenseNumber   string  `json:"license_number"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
