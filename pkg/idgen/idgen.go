package idgen

import "sync/atomic"

// Seed bases per entity kind. Ranges stay disjoint as long as each kind
// allocates fewer than 1000 IDs per process lifetime.
const (
	PatientSeed     = 1000
	DoctorSeed      = 2000
	AppointmentSeed = 3000
	BillSeed        = 4000
)

// Generator issues unique integer identifiers per entity kind. It is
// constructed explicitly and passed to the services that need it; one
// instance per process. Safe for concurrent use.
type Generator struct {
	patient     atomic.Int64
	doctor      atomic.Int64
	appointment atomic.Int64
	bill        atomic.Int64
}

func New() *Generator {
	g := &Generator{}
	g.Reset()
	return g
}

func (g *Generator) NextPatientID() int {
	return int(g.patient.Add(1))
}

func (g *Generator) NextDoctorID() int {
	return int(g.doctor.Add(1))
}

func (g *Generator) NextAppointmentID() int {
	return int(g.appointment.Add(1))
}

func (g *Generator) NextBillID() int {
	return int(g.bill.Add(1))
}

// Seed advances each counter past the highest persisted ID of its kind,
// so a restarted process never re-issues an ID that is already in the
// store. Counters never move backwards.
func (g *Generator) Seed(maxPatient, maxDoctor, maxAppointment, maxBill int) {
	advance(&g.patient, int64(maxPatient))
	advance(&g.doctor, int64(maxDoctor))
	advance(&g.appointment, int64(maxAppointment))
	advance(&g.bill, int64(maxBill))
}

// Reset restores all counters to their seed bases, for test isolation.
func (g *Generator) Reset() {
	g.patient.Store(PatientSeed)
	g.doctor.Store(DoctorSeed)
	g.appointment.Store(AppointmentSeed)
	g.bill.Store(BillSeed)
}

func advance(c *atomic.Int64, to int64) {
	for {
		cur := c.Load()
		if cur >= to {
			return
		}
		if c.CompareAndSwap(cur, to) {
			return
		}
	}
}
