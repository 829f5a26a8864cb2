package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meditrack/internal/converter"
	"meditrack/internal/delivery/dto"
	"meditrack/internal/domain/entity"
	"meditrack/internal/domain/repository"
	"meditrack/internal/service"
	"meditrack/internal/validation"
	"meditrack/pkg/datetime"
	"meditrack/pkg/idgen"

	"github.com/sirupsen/logrus"
)

var (
	// ErrAppointmentNotFound is the hard failure for appointment lookups.
	// Unlike patients and doctors, a missing appointment is an error.
	ErrAppointmentNotFound = errors.New("appointment not found")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id int) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointmentsByPatient(ctx context.Context, patientID int) (*dto.AppointmentListResponse, error)
	GetAppointmentsByDoctor(ctx context.Context, doctorID int) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id int) (bool, error)
	CancelAppointment(ctx context.Context, id int) (*dto.AppointmentResponse, error)
	ConfirmAppointment(ctx context.Context, id int) (*dto.AppointmentResponse, error)
	CreateBill(ctx context.Context, appointmentID int, req *dto.CreateBillRequest) (*dto.BillResponse, error)
	GenerateBillSummary(ctx context.Context, appointmentID int) (*dto.BillSummaryResponse, error)
	UpdateBillPaymentStatus(ctx context.Context, appointmentID int, req *dto.UpdatePaymentStatusRequest) (*dto.BillResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	billRepo        repository.BillRepository
	idGen           *idgen.Generator
	notifier        *service.AppointmentNotifier
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	billRepo repository.BillRepository,
	idGen *idgen.Generator,
	notifier *service.AppointmentNotifier,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		billRepo:        billRepo,
		idGen:           idGen,
		notifier:        notifier,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := validation.ID(req.PatientID); err != nil {
		return nil, err
	}
	if err := validation.ID(req.DoctorID); err != nil {
		return nil, err
	}
	when, err := datetime.ParseDateTime(req.DateTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", validation.ErrInvalidData, err)
	}
	if err := validation.NotZeroTime(when, "appointment date/time"); err != nil {
		return nil, err
	}
	if when.Before(time.Now()) {
		return nil, fmt.Errorf("%w: appointment date/time cannot be in the past", validation.ErrInvalidData)
	}

	appointment := &entity.Appointment{
		ID:        u.idGen.NextAppointmentID(),
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		DateTime:  when,
		Status:    entity.AppointmentStatusPending,
		Reason:    req.Reason,
		Notes:     req.Notes,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%d, patient=%d, doctor=%d", appointment.ID, appointment.PatientID, appointment.DoctorID)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointmentsByPatient(ctx context.Context, patientID int) (*dto.AppointmentListResponse, error) {
	if err := validation.ID(patientID); err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointmentsByDoctor(ctx context.Context, doctorID int) (*dto.AppointmentListResponse, error) {
	if err := validation.ID(doctorID); err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PatientID != 0 {
		if err := validation.ID(req.PatientID); err != nil {
			return nil, err
		}
		appointment.PatientID = req.PatientID
	}
	if req.DoctorID != 0 {
		if err := validation.ID(req.DoctorID); err != nil {
			return nil, err
		}
		appointment.DoctorID = req.DoctorID
	}
	if req.DateTime != "" {
		when, err := datetime.ParseDateTime(req.DateTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", validation.ErrInvalidData, err)
		}
		appointment.DateTime = when
	}
	if req.Status != "" {
		status, ok := parseAppointmentStatus(req.Status)
		if !ok {
			return nil, fmt.Errorf("%w: unknown status %q", validation.ErrInvalidData, req.Status)
		}
		appointment.Status = status
	}
	if req.Reason != "" {
		appointment.Reason = req.Reason
	}
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}

	if _, err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// DeleteAppointment reports whether a row was removed.
func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id int) (bool, error) {
	if err := validation.ID(id); err != nil {
		return false, err
	}

	affected, err := u.appointmentRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
		return false, err
	}
	return affected > 0, nil
}

// CancelAppointment sets the status to Cancelled regardless of the
// current status. There is no transition guard anywhere in the
// lifecycle.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, (*entity.Appointment).Cancel)
}

// ConfirmAppointment sets the status to Confirmed regardless of the
// current status, including for cancelled appointments.
func (u *appointmentUsecase) ConfirmAppointment(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, id, (*entity.Appointment).Confirm)
}

func (u *appointmentUsecase) transition(ctx context.Context, id int, apply func(*entity.Appointment)) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(appointment)

	if _, err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}

	u.notifier.StatusChanged(ctx, appointment)
	return converter.AppointmentToResponse(appointment), nil
}

// CreateBill derives a bill from the doctor's consultation fee. The
// appointment must exist; a missing doctor is invalid data. The bill is
// persisted independently of the appointment row, with no cross-row
// transaction and no compensating rollback.
func (u *appointmentUsecase) CreateBill(ctx context.Context, appointmentID int, req *dto.CreateBillRequest) (*dto.BillResponse, error) {
	appointment, err := u.findAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByID(ctx, appointment.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", appointment.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, fmt.Errorf("%w: doctor not found for appointment", validation.ErrInvalidData)
	}

	billID := u.idGen.NextBillID()
	var bill *entity.Bill
	switch req.Type {
	case "DISCOUNTED":
		bill = entity.NewDiscountedBill(billID, appointmentID, doctor.ConsultationFee, req.DiscountPercent)
	case "PREMIUM":
		bill = entity.NewPremiumBill(billID, appointmentID, doctor.ConsultationFee, req.AdditionalCharges)
	default:
		bill = entity.NewConsultationBill(billID, appointmentID, doctor.ConsultationFee)
	}

	if err := u.billRepo.Create(ctx, bill); err != nil {
		u.log.Warnf("Failed to create bill for appointment %d: %+v", appointmentID, err)
		return nil, err
	}

	u.log.Infof("Bill created: id=%d, appointment=%d, total=%.2f", bill.ID, appointmentID, bill.TotalAmount)
	return converter.BillToResponse(bill), nil
}

// GenerateBillSummary projects the appointment's bill into an immutable
// summary. A missing bill is invalid data, not a NotFound.
func (u *appointmentUsecase) GenerateBillSummary(ctx context.Context, appointmentID int) (*dto.BillSummaryResponse, error) {
	if err := validation.ID(appointmentID); err != nil {
		return nil, err
	}

	bill, err := u.billRepo.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find bill for appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if bill == nil {
		return nil, fmt.Errorf("%w: bill not found for appointment ID %d", validation.ErrInvalidData, appointmentID)
	}

	return converter.BillSummaryToResponse(bill.Summary()), nil
}

// UpdateBillPaymentStatus writes the payment status verbatim. Statuses
// are free text, not a state machine.
func (u *appointmentUsecase) UpdateBillPaymentStatus(ctx context.Context, appointmentID int, req *dto.UpdatePaymentStatusRequest) (*dto.BillResponse, error) {
	if err := validation.ID(appointmentID); err != nil {
		return nil, err
	}

	bill, err := u.billRepo.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find bill for appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if bill == nil {
		return nil, fmt.Errorf("%w: bill not found for appointment ID %d", validation.ErrInvalidData, appointmentID)
	}

	bill.PaymentStatus = req.PaymentStatus
	if _, err := u.billRepo.Update(ctx, bill); err != nil {
		u.log.Warnf("Failed to update bill %d: %+v", bill.ID, err)
		return nil, err
	}

	return converter.BillToResponse(bill), nil
}

func (u *appointmentUsecase) findAppointment(ctx context.Context, id int) (*entity.Appointment, error) {
	if err := validation.ID(id); err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

func parseAppointmentStatus(s string) (entity.AppointmentStatus, bool) {
	switch entity.AppointmentStatus(s) {
	case entity.AppointmentStatusPending,
		entity.AppointmentStatusConfirmed,
		entity.AppointmentStatusCancelled,
		entity.AppointmentStatusCompleted:
		return entity.AppointmentStatus(s), true
	}
	return "", false
}
