package dto

// Request DTOs

type RecommendDoctorRequest struct {
	Symptoms string `json:"symptoms" validate:"required"`
}

// Response DTOs

type RecommendationResponse struct {
	Specialization string          `json:"specialization"`
	Doctor         *DoctorResponse `json:"doctor,omitempty"`
}

type SlotListResponse struct {
	DoctorID int      `json:"doctor_id"`
	Slots    []string `json:"slots"`
	Total    int      `json:"total"`
}
