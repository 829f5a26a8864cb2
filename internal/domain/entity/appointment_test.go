package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusTransitionsAreUnconditional(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusPending}

	a.Cancel()
	assert.True(t, a.IsCancelled())

	// A cancelled appointment can still be re-confirmed.
	a.Confirm()
	assert.Equal(t, AppointmentStatusConfirmed, a.Status)

	a.Complete()
	assert.Equal(t, AppointmentStatusCompleted, a.Status)
}

func TestParseSpecialization(t *testing.T) {
	sp, ok := ParseSpecialization("cardiology")
	assert.True(t, ok)
	assert.Equal(t, SpecializationCardiology, sp)

	sp, ok = ParseSpecialization("  general medicine ")
	assert.True(t, ok)
	assert.Equal(t, SpecializationGeneral, sp)

	_, ok = ParseSpecialization("astrology")
	assert.False(t, ok)
}

func TestPatientEquality(t *testing.T) {
	a := &Patient{Person: Person{ID: 1001}, InsurancePolicyNumber: "POL-1"}
	b := &Patient{Person: Person{ID: 1001}, InsurancePolicyNumber: "POL-2"}

	assert.True(t, SamePatient(a, b))
	assert.False(t, EqualPatient(a, b))

	b.InsurancePolicyNumber = "POL-1"
	assert.True(t, EqualPatient(a, b))

	assert.False(t, SamePatient(a, nil))
	assert.True(t, SamePatient(nil, nil))
}
