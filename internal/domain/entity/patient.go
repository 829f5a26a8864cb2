package entity

// Patient represents a registered clinic patient
type Patient struct {
	Person                `gorm:"embedded"`
	MedicalHistory        string `gorm:"type:text" json:"medical_history,omitempty"`
	Allergies             string `gorm:"type:text" json:"allergies,omitempty"`
	InsuranceProvider     string `gorm:"type:varchar(100)" json:"insurance_provider,omitempty"`
	InsurancePolicyNumber string `gorm:"type:varchar(50)" json:"insurance_policy_number,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// SamePatient reports identity equality, which is by ID only.
func SamePatient(a, b *Patient) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}

// EqualPatient additionally compares the insurance policy number.
func EqualPatient(a, b *Patient) bool {
	return SamePatient(a, b) && a.InsurancePolicyNumber == b.InsurancePolicyNumber
}
