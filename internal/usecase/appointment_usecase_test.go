package usecase

import (
	"context"
	"testing"
	"time"

	"meditrack/internal/delivery/dto"
	"meditrack/internal/domain/entity"
	"meditrack/internal/service"
	"meditrack/internal/validation"
	"meditrack/pkg/datetime"
	"meditrack/pkg/idgen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appointmentFixture struct {
	uc              AppointmentUsecase
	appointmentRepo *fakeAppointmentRepo
	doctorRepo      *fakeDoctorRepo
	billRepo        *fakeBillRepo
}

func newAppointmentFixture() *appointmentFixture {
	log := testLogger()
	f := &appointmentFixture{
		appointmentRepo: newFakeAppointmentRepo(),
		doctorRepo:      newFakeDoctorRepo(),
		billRepo:        newFakeBillRepo(),
	}
	f.uc = NewAppointmentUsecase(
		log,
		f.appointmentRepo,
		f.doctorRepo,
		f.billRepo,
		idgen.New(),
		service.NewAppointmentNotifier(log, nil),
	)
	return f
}

func (f *appointmentFixture) addDoctor(id int, fee float64) {
	f.doctorRepo.doctors[id] = entity.Doctor{
		Person:          entity.Person{ID: id, Name: "Gregory House"},
		Specialization:  entity.SpecializationCardiology,
		ConsultationFee: fee,
	}
}

func futureDateTime() string {
	return datetime.FormatDateTime(time.Now().Add(48 * time.Hour).Truncate(time.Minute))
}

func TestCreateAppointment(t *testing.T) {
	f := newAppointmentFixture()

	got, err := f.uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID: 1001,
		DoctorID:  2001,
		DateTime:  futureDateTime(),
		Reason:    "checkup",
	})
	require.NoError(t, err)

	assert.Equal(t, 3001, got.ID)
	assert.Equal(t, string(entity.AppointmentStatusPending), got.Status)
	assert.Contains(t, f.appointmentRepo.appointments, 3001)
}

func TestCreateAppointmentRejectsPastDateTime(t *testing.T) {
	f := newAppointmentFixture()

	_, err := f.uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID: 1001,
		DoctorID:  2001,
		DateTime:  "2020-01-01 10:00",
	})
	assert.ErrorIs(t, err, validation.ErrInvalidData)
}

func TestCreateAppointmentRejectsBadIDs(t *testing.T) {
	f := newAppointmentFixture()

	_, err := f.uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID: 0,
		DoctorID:  2001,
		DateTime:  futureDateTime(),
	})
	assert.ErrorIs(t, err, validation.ErrInvalidData)
}

func TestGetAppointmentAbsent(t *testing.T) {
	f := newAppointmentFixture()

	_, err := f.uc.GetAppointment(context.Background(), 3999)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancelThenConfirm(t *testing.T) {
	f := newAppointmentFixture()
	created, err := f.uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID: 1001,
		DoctorID:  2001,
		DateTime:  futureDateTime(),
	})
	require.NoError(t, err)

	cancelled, err := f.uc.CancelAppointment(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCancelled), cancelled.Status)

	// No transition guard: a cancelled appointment can be re-confirmed.
	confirmed, err := f.uc.ConfirmAppointment(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusConfirmed), confirmed.Status)
}

func TestUpdateAppointmentRejectsUnknownStatus(t *testing.T) {
	f := newAppointmentFixture()
	created, err := f.uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID: 1001,
		DoctorID:  2001,
		DateTime:  futureDateTime(),
	})
	require.NoError(t, err)

	_, err = f.uc.UpdateAppointment(context.Background(), created.ID, &dto.UpdateAppointmentRequest{
		Status: "Rescheduled",
	})
	assert.ErrorIs(t, err, validation.ErrInvalidData)
}

func TestDeleteAppointment(t *testing.T) {
	f := newAppointmentFixture()
	created, err := f.uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID: 1001,
		DoctorID:  2001,
		DateTime:  futureDateTime(),
	})
	require.NoError(t, err)

	deleted, err := f.uc.DeleteAppointment(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = f.uc.DeleteAppointment(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func (f *appointmentFixture) createAppointmentWithDoctor(t *testing.T, fee float64) *dto.AppointmentResponse {
	t.Helper()
	f.addDoctor(2001, fee)
	created, err := f.uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID: 1001,
		DoctorID:  2001,
		DateTime:  futureDateTime(),
	})
	require.NoError(t, err)
	return created
}

func TestCreateBillStandard(t *testing.T) {
	f := newAppointmentFixture()
	appointment := f.createAppointmentWithDoctor(t, 150)

	bill, err := f.uc.CreateBill(context.Background(), appointment.ID, &dto.CreateBillRequest{})
	require.NoError(t, err)

	assert.Equal(t, 4001, bill.ID)
	assert.Equal(t, appointment.ID, bill.AppointmentID)
	assert.InDelta(t, 150.0, bill.BaseAmount, 1e-9)
	assert.InDelta(t, 15.0, bill.TaxAmount, 1e-9)
	assert.InDelta(t, 165.0, bill.TotalAmount, 1e-9)
	assert.Equal(t, entity.PaymentStatusPending, bill.PaymentStatus)
}

func TestCreateBillDiscounted(t *testing.T) {
	f := newAppointmentFixture()
	appointment := f.createAppointmentWithDoctor(t, 200)

	bill, err := f.uc.CreateBill(context.Background(), appointment.ID, &dto.CreateBillRequest{
		Type:            "DISCOUNTED",
		DiscountPercent: 25,
	})
	require.NoError(t, err)

	assert.InDelta(t, 150.0, bill.BaseAmount, 1e-9)
	assert.InDelta(t, 165.0, bill.TotalAmount, 1e-9)
}

func TestCreateBillPremium(t *testing.T) {
	f := newAppointmentFixture()
	appointment := f.createAppointmentWithDoctor(t, 100)

	bill, err := f.uc.CreateBill(context.Background(), appointment.ID, &dto.CreateBillRequest{
		Type:              "PREMIUM",
		AdditionalCharges: 50,
	})
	require.NoError(t, err)

	assert.InDelta(t, 150.0, bill.BaseAmount, 1e-9)
	assert.InDelta(t, 165.0, bill.TotalAmount, 1e-9)
}

func TestCreateBillMissingAppointment(t *testing.T) {
	f := newAppointmentFixture()

	_, err := f.uc.CreateBill(context.Background(), 3999, &dto.CreateBillRequest{})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCreateBillMissingDoctorIsInvalidData(t *testing.T) {
	f := newAppointmentFixture()
	created, err := f.uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID: 1001,
		DoctorID:  2001, // never stored
		DateTime:  futureDateTime(),
	})
	require.NoError(t, err)

	_, err = f.uc.CreateBill(context.Background(), created.ID, &dto.CreateBillRequest{})
	assert.ErrorIs(t, err, validation.ErrInvalidData)
}

func TestGenerateBillSummary(t *testing.T) {
	f := newAppointmentFixture()
	appointment := f.createAppointmentWithDoctor(t, 150)

	_, err := f.uc.CreateBill(context.Background(), appointment.ID, &dto.CreateBillRequest{})
	require.NoError(t, err)

	summary, err := f.uc.GenerateBillSummary(context.Background(), appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, appointment.ID, summary.AppointmentID)
	assert.InDelta(t, 165.0, summary.TotalAmount, 1e-9)
}

func TestGenerateBillSummaryWithoutBill(t *testing.T) {
	f := newAppointmentFixture()
	appointment := f.createAppointmentWithDoctor(t, 150)

	_, err := f.uc.GenerateBillSummary(context.Background(), appointment.ID)
	assert.ErrorIs(t, err, validation.ErrInvalidData)
}

func TestUpdateBillPaymentStatusIsFreeText(t *testing.T) {
	f := newAppointmentFixture()
	appointment := f.createAppointmentWithDoctor(t, 150)
	_, err := f.uc.CreateBill(context.Background(), appointment.ID, &dto.CreateBillRequest{})
	require.NoError(t, err)

	bill, err := f.uc.UpdateBillPaymentStatus(context.Background(), appointment.ID, &dto.UpdatePaymentStatusRequest{
		PaymentStatus: "partially settled",
	})
	require.NoError(t, err)
	assert.Equal(t, "partially settled", bill.PaymentStatus)
}
