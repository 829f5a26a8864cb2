package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrInvalidData marks any validation failure. Callers match it with
// errors.Is; the wrapped message carries the human-readable reason.
var ErrInvalidData = errors.New("invalid data")

const (
	MinNameLength = 2
	MaxNameLength = 100
	MinAge        = 0
	MaxAge        = 150
)

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)
	nonDigits    = regexp.MustCompile(`[^0-9]`)
)

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidData, fmt.Sprintf(format, args...))
}

// Name requires a non-blank name of 2 to 100 characters.
func Name(name string) error {
	if strings.TrimSpace(name) == "" {
		return invalidf("name cannot be empty")
	}
	if len(name) < MinNameLength || len(name) > MaxNameLength {
		return invalidf("name must be between %d and %d characters", MinNameLength, MaxNameLength)
	}
	return nil
}

// Email requires a non-blank address with a local part and a domain.
func Email(email string) error {
	if strings.TrimSpace(email) == "" {
		return invalidf("email cannot be empty")
	}
	if !emailPattern.MatchString(email) {
		return invalidf("invalid email format")
	}
	return nil
}

// Phone requires exactly 10 digits after stripping separators, so
// formatted input like "(123) 456-7890" is accepted.
func Phone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return invalidf("phone number cannot be empty")
	}
	if len(nonDigits.ReplaceAllString(phone, "")) != 10 {
		return invalidf("phone number must be 10 digits")
	}
	return nil
}

// Age requires a value between 0 and 150.
func Age(age int) error {
	if age < MinAge || age > MaxAge {
		return invalidf("age must be between %d and %d", MinAge, MaxAge)
	}
	return nil
}

// DateOfBirth requires a set date that is not in the future.
func DateOfBirth(dob time.Time) error {
	if dob.IsZero() {
		return invalidf("date of birth cannot be empty")
	}
	if dob.After(time.Now()) {
		return invalidf("date of birth cannot be in the future")
	}
	return nil
}

// Amount rejects negative values.
func Amount(amount float64) error {
	if amount < 0 {
		return invalidf("amount cannot be negative")
	}
	return nil
}

// ID requires a strictly positive identifier.
func ID(id int) error {
	if id <= 0 {
		return invalidf("ID must be a positive number")
	}
	return nil
}

// NotZeroTime requires a set time value; fieldName names it in the error.
func NotZeroTime(t time.Time, fieldName string) error {
	if t.IsZero() {
		return invalidf("%s cannot be empty", fieldName)
	}
	return nil
}
