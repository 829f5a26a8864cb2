package entity

import "strings"

// Specialization is a fixed medical specialty assigned to a doctor
type Specialization string

const (
	SpecializationCardiology  Specialization = "Cardiology"
	SpecializationDermatology Specialization = "Dermatology"
	SpecializationPediatrics  Specialization = "Pediatrics"
	SpecializationOrthopedics Specialization = "Orthopedics"
	SpecializationNeurology   Specialization = "Neurology"
	SpecializationGeneral     Specialization = "General Medicine"
	SpecializationPsychiatry  Specialization = "Psychiatry"
	SpecializationOncology    Specialization = "Oncology"
	SpecializationGynecology  Specialization = "Gynecology"
	SpecializationUrology     Specialization = "Urology"
)

// Specializations lists every valid specialization in display order.
var Specializations = []Specialization{
	SpecializationCardiology,
	SpecializationDermatology,
	SpecializationPediatrics,
	SpecializationOrthopedics,
	SpecializationNeurology,
	SpecializationGeneral,
	SpecializationPsychiatry,
	SpecializationOncology,
	SpecializationGynecology,
	SpecializationUrology,
}

// ParseSpecialization resolves a case-insensitive display name to a
// Specialization. The second return value is false for unknown input.
func ParseSpecialization(s string) (Specialization, bool) {
	for _, sp := range Specializations {
		if strings.EqualFold(string(sp), strings.TrimSpace(s)) {
			return sp, true
		}
	}
	return "", false
}
