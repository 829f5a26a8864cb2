package idgen

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextIDsStartAfterSeeds(t *testing.T) {
	g := New()

	assert.Equal(t, 1001, g.NextPatientID())
	assert.Equal(t, 1002, g.NextPatientID())
	assert.Equal(t, 2001, g.NextDoctorID())
	assert.Equal(t, 3001, g.NextAppointmentID())
	assert.Equal(t, 4001, g.NextBillID())
}

func TestKindsAllocateIndependently(t *testing.T) {
	g := New()

	g.NextPatientID()
	g.NextPatientID()
	g.NextPatientID()

	// Other kinds are unaffected by patient allocations.
	assert.Equal(t, 2001, g.NextDoctorID())
	assert.Equal(t, 3001, g.NextAppointmentID())
}

func TestSeedAdvancesPastPersistedIDs(t *testing.T) {
	g := New()
	g.Seed(1042, 2007, 3000, 4123)

	assert.Equal(t, 1043, g.NextPatientID())
	assert.Equal(t, 2008, g.NextDoctorID())
	assert.Equal(t, 3001, g.NextAppointmentID())
	assert.Equal(t, 4124, g.NextBillID())
}

func TestSeedNeverMovesBackwards(t *testing.T) {
	g := New()
	g.Seed(1050, 0, 0, 0)
	g.Seed(1010, 0, 0, 0)

	assert.Equal(t, 1051, g.NextPatientID())
}

func TestReset(t *testing.T) {
	g := New()
	g.NextPatientID()
	g.NextBillID()

	g.Reset()

	assert.Equal(t, 1001, g.NextPatientID())
	assert.Equal(t, 4001, g.NextBillID())
}

func TestConcurrentAllocationIsUnique(t *testing.T) {
	g := New()

	const goroutines = 20
	const perGoroutine = 50

	ids := make(chan int, goroutines*perGoroutine)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				ids <- g.NextPatientID()
			}
		}()
	}
	wg.Wait()
	close(ids)

	var got []int
	for id := range ids {
		got = append(got, id)
	}
	require.Len(t, got, goroutines*perGoroutine)

	sort.Ints(got)
	for i := 0; i < len(got); i++ {
		assert.Equal(t, PatientSeed+1+i, got[i])
	}
}
