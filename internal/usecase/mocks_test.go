package usecase

import (
	"context"
	"io"
	"sort"
	"strings"

	"meditrack/internal/domain/entity"
	"meditrack/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// Compile-time checks that the fakes satisfy the store contracts.
var (
	_ repository.PatientRepository     = (*fakePatientRepo)(nil)
	_ repository.DoctorRepository      = (*fakeDoctorRepo)(nil)
	_ repository.AppointmentRepository = (*fakeAppointmentRepo)(nil)
	_ repository.BillRepository        = (*fakeBillRepo)(nil)
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakePatientRepo is an in-memory PatientRepository. Setting failWith
// makes every call return that error.
type fakePatientRepo struct {
	patients map[int]entity.Patient
	failWith error
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: map[int]entity.Patient{}}
}

func (r *fakePatientRepo) Create(_ context.Context, patient *entity.Patient) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.patients[patient.ID] = *patient
	return nil
}

func (r *fakePatientRepo) FindByID(_ context.Context, id int) (*entity.Patient, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	if p, ok := r.patients[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *fakePatientRepo) FindAll(_ context.Context) ([]entity.Patient, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	all := []entity.Patient{}
	for _, p := range r.patients {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *fakePatientRepo) Update(_ context.Context, patient *entity.Patient) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	if _, ok := r.patients[patient.ID]; !ok {
		return 0, nil
	}
	r.patients[patient.ID] = *patient
	return 1, nil
}

func (r *fakePatientRepo) Delete(_ context.Context, id int) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	if _, ok := r.patients[id]; !ok {
		return 0, nil
	}
	delete(r.patients, id)
	return 1, nil
}

func (r *fakePatientRepo) SearchByName(ctx context.Context, name string) ([]entity.Patient, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := []entity.Patient{}
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(name)) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (r *fakePatientRepo) MaxID(_ context.Context) (int, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	max := 0
	for id := range r.patients {
		if id > max {
			max = id
		}
	}
	return max, nil
}

// fakeDoctorRepo is an in-memory DoctorRepository.
type fakeDoctorRepo struct {
	doctors  map[int]entity.Doctor
	failWith error
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: map[int]entity.Doctor{}}
}

func (r *fakeDoctorRepo) Create(_ context.Context, doctor *entity.Doctor) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.doctors[doctor.ID] = *doctor
	return nil
}

func (r *fakeDoctorRepo) FindByID(_ context.Context, id int) (*entity.Doctor, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	if d, ok := r.doctors[id]; ok {
		return &d, nil
	}
	return nil, nil
}

func (r *fakeDoctorRepo) FindAll(_ context.Context) ([]entity.Doctor, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	all := []entity.Doctor{}
	for _, d := range r.doctors {
		all = append(all, d)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *fakeDoctorRepo) Update(_ context.Context, doctor *entity.Doctor) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	if _, ok := r.doctors[doctor.ID]; !ok {
		return 0, nil
	}
	r.doctors[doctor.ID] = *doctor
	return 1, nil
}

func (r *fakeDoctorRepo) Delete(_ context.Context, id int) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	if _, ok := r.doctors[id]; !ok {
		return 0, nil
	}
	delete(r.doctors, id)
	return 1, nil
}

func (r *fakeDoctorRepo) SearchByName(ctx context.Context, name string) ([]entity.Doctor, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := []entity.Doctor{}
	for _, d := range all {
		if strings.Contains(strings.ToLower(d.Name), strings.ToLower(name)) {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

func (r *fakeDoctorRepo) FindBySpecialization(ctx context.Context, specialization entity.Specialization) ([]entity.Doctor, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := []entity.Doctor{}
	for _, d := range all {
		if d.Specialization == specialization {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

func (r *fakeDoctorRepo) MaxID(_ context.Context) (int, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	max := 0
	for id := range r.doctors {
		if id > max {
			max = id
		}
	}
	return max, nil
}

// fakeAppointmentRepo is an in-memory AppointmentRepository.
type fakeAppointmentRepo struct {
	appointments map[int]entity.Appointment
	failWith     error
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: map[int]entity.Appointment{}}
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appointment *entity.Appointment) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.appointments[appointment.ID] = *appointment
	return nil
}

func (r *fakeAppointmentRepo) FindByID(_ context.Context, id int) (*entity.Appointment, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	if a, ok := r.appointments[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) FindAll(_ context.Context) ([]entity.Appointment, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	all := []entity.Appointment{}
	for _, a := range r.appointments {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, appointment *entity.Appointment) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	if _, ok := r.appointments[appointment.ID]; !ok {
		return 0, nil
	}
	r.appointments[appointment.ID] = *appointment
	return 1, nil
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, id int) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	if _, ok := r.appointments[id]; !ok {
		return 0, nil
	}
	delete(r.appointments, id)
	return 1, nil
}

func (r *fakeAppointmentRepo) FindByPatientID(ctx context.Context, patientID int) ([]entity.Appointment, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := []entity.Appointment{}
	for _, a := range all {
		if a.PatientID == patientID {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (r *fakeAppointmentRepo) FindByDoctorID(ctx context.Context, doctorID int) ([]entity.Appointment, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := []entity.Appointment{}
	for _, a := range all {
		if a.DoctorID == doctorID {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (r *fakeAppointmentRepo) MaxID(_ context.Context) (int, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	max := 0
	for id := range r.appointments {
		if id > max {
			max = id
		}
	}
	return max, nil
}

// fakeBillRepo is an in-memory BillRepository.
type fakeBillRepo struct {
	bills    map[int]entity.Bill
	failWith error
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: map[int]entity.Bill{}}
}

func (r *fakeBillRepo) Create(_ context.Context, bill *entity.Bill) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.bills[bill.ID] = *bill
	return nil
}

func (r *fakeBillRepo) FindByID(_ context.Context, id int) (*entity.Bill, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	if b, ok := r.bills[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (r *fakeBillRepo) FindByAppointmentID(_ context.Context, appointmentID int) (*entity.Bill, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	ids := make([]int, 0, len(r.bills))
	for id := range r.bills {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if b := r.bills[id]; b.AppointmentID == appointmentID {
			return &b, nil
		}
	}
	return nil, nil
}

func (r *fakeBillRepo) FindAll(_ context.Context) ([]entity.Bill, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	all := []entity.Bill{}
	for _, b := range r.bills {
		all = append(all, b)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *fakeBillRepo) Update(_ context.Context, bill *entity.Bill) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	if _, ok := r.bills[bill.ID]; !ok {
		return 0, nil
	}
	r.bills[bill.ID] = *bill
	return 1, nil
}

func (r *fakeBillRepo) Delete(_ context.Context, id int) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	if _, ok := r.bills[id]; !ok {
		return 0, nil
	}
	delete(r.bills, id)
	return 1, nil
}

func (r *fakeBillRepo) MaxID(_ context.Context) (int, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	max := 0
	for id := range r.bills {
		if id > max {
			max = id
		}
	}
	return max, nil
}
