package entity

import "time"

// Person holds the identity fields shared by patients and doctors.
// It is embedded into both tables rather than modelled as its own kind.
type Person struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	DateOfBirth time.Time `gorm:"column:dob;type:date;not null" json:"date_of_birth"`
	Email       string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone       string    `gorm:"type:varchar(20);not null" json:"phone"`
}

// Age returns the year difference between now and the date of birth.
// Deliberately not day-accurate, matching how the rest of the system
// computes and searches ages.
func (p *Person) Age() int {
	return time.Now().Year() - p.DateOfBirth.Year()
}
