package entity

// Doctor represents a practicing doctor
type Doctor struct {
	Person          `gorm:"embedded"`
	Specialization  Specialization `gorm:"type:varchar(50);not null;index" json:"specialization"`
	ConsultationFee float64        `gorm:"not null" json:"consultation_fee"`
	ExperienceYears int            `gorm:"not null" json:"experience_years"`
	LicenseNumber   string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
}

func (Doctor) TableName() string {
	return "doctors"
}
