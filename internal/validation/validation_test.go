package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	assert.NoError(t, Name("Jo"))
	assert.NoError(t, Name("Alice Smith"))

	assert.ErrorIs(t, Name(""), ErrInvalidData)
	assert.ErrorIs(t, Name("   "), ErrInvalidData)
	assert.ErrorIs(t, Name("J"), ErrInvalidData)
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("a@b.com"))
	assert.NoError(t, Email("first.last+tag@example.org"))

	assert.ErrorIs(t, Email(""), ErrInvalidData)
	assert.ErrorIs(t, Email("abc"), ErrInvalidData)
	assert.ErrorIs(t, Email("@nodomain"), ErrInvalidData)
}

func TestPhone(t *testing.T) {
	assert.NoError(t, Phone("1234567890"))
	// Separators are stripped before counting digits.
	assert.NoError(t, Phone("(123) 456-7890"))

	assert.ErrorIs(t, Phone(""), ErrInvalidData)
	assert.ErrorIs(t, Phone("12345"), ErrInvalidData)
	assert.ErrorIs(t, Phone("12345678901"), ErrInvalidData)
}

func TestAge(t *testing.T) {
	assert.NoError(t, Age(0))
	assert.NoError(t, Age(150))

	assert.ErrorIs(t, Age(-1), ErrInvalidData)
	assert.ErrorIs(t, Age(151), ErrInvalidData)
}

func TestDateOfBirth(t *testing.T) {
	assert.NoError(t, DateOfBirth(time.Now().AddDate(-30, 0, 0)))

	assert.ErrorIs(t, DateOfBirth(time.Time{}), ErrInvalidData)
	assert.ErrorIs(t, DateOfBirth(time.Now().AddDate(1, 0, 0)), ErrInvalidData)
}

func TestAmount(t *testing.T) {
	assert.NoError(t, Amount(0))
	assert.NoError(t, Amount(199.99))

	assert.ErrorIs(t, Amount(-0.01), ErrInvalidData)
}

func TestID(t *testing.T) {
	assert.NoError(t, ID(1))

	assert.ErrorIs(t, ID(0), ErrInvalidData)
	assert.ErrorIs(t, ID(-5), ErrInvalidData)
}

func TestNotZeroTime(t *testing.T) {
	assert.NoError(t, NotZeroTime(time.Now(), "appointment date"))

	err := NotZeroTime(time.Time{}, "appointment date")
	assert.ErrorIs(t, err, ErrInvalidData)
	assert.Contains(t, err.Error(), "appointment date")
}
