package usecase

import (
	"context"
	"sort"
	"strings"

	"meditrack/internal/converter"
	"meditrack/internal/delivery/dto"
	"meditrack/internal/domain/entity"
	"meditrack/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// PaidStatus is the payment status counted as revenue, compared
// case-insensitively.
const PaidStatus = "PAID"

// AnalyticsUsecase computes derived views over the full collections on
// every call. Nothing is cached or incrementally maintained.
type AnalyticsUsecase interface {
	AverageConsultationFee(ctx context.Context) (float64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	AppointmentsPerDoctor(ctx context.Context) (map[int]int, error)
	MostBookedDoctors(ctx context.Context, limit int) ([]dto.DoctorResponse, error)
	PendingAppointments(ctx context.Context) ([]dto.AppointmentResponse, error)
	ConfirmedCount(ctx context.Context) (int, error)
	DoctorsAboveAverageFee(ctx context.Context) ([]dto.DoctorResponse, error)
	Report(ctx context.Context) (*dto.AnalyticsReportResponse, error)
}

type analyticsUsecase struct {
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	billRepo        repository.BillRepository
}

func NewAnalyticsUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	billRepo repository.BillRepository,
) AnalyticsUsecase {
	return &analyticsUsecase{
		log:             log,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		billRepo:        billRepo,
	}
}

// AverageConsultationFee returns 0 when there are no doctors.
func (u *analyticsUsecase) AverageConsultationFee(ctx context.Context) (float64, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return 0, err
	}
	if len(doctors) == 0 {
		return 0, nil
	}

	var sum float64
	for i := range doctors {
		sum += doctors[i].ConsultationFee
	}
	return sum / float64(len(doctors)), nil
}

// TotalRevenue sums bill totals whose payment status equals "PAID",
// ignoring case.
func (u *analyticsUsecase) TotalRevenue(ctx context.Context) (float64, error) {
	bills, err := u.billRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all bills: %+v", err)
		return 0, err
	}

	var total float64
	for i := range bills {
		if strings.EqualFold(bills[i].PaymentStatus, PaidStatus) {
			total += bills[i].TotalAmount
		}
	}
	return total, nil
}

// AppointmentsPerDoctor counts non-cancelled appointments per doctor ID.
func (u *analyticsUsecase) AppointmentsPerDoctor(ctx context.Context) (map[int]int, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	counts := map[int]int{}
	for i := range appointments {
		if appointments[i].Status == entity.AppointmentStatusCancelled {
			continue
		}
		counts[appointments[i].DoctorID]++
	}
	return counts, nil
}

// MostBookedDoctors resolves the top doctor IDs by appointment count to
// full records. Doctors that cannot be resolved are dropped silently.
// Ties are broken by ascending doctor ID for a stable order.
func (u *analyticsUsecase) MostBookedDoctors(ctx context.Context, limit int) ([]dto.DoctorResponse, error) {
	counts, err := u.AppointmentsPerDoctor(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if limit < len(ids) {
		ids = ids[:limit]
	}

	doctors := []dto.DoctorResponse{}
	for _, id := range ids {
		doctor, err := u.doctorRepo.FindByID(ctx, id)
		if err != nil || doctor == nil {
			continue
		}
		doctors = append(doctors, *converter.DoctorToResponse(doctor))
	}
	return doctors, nil
}

// PendingAppointments returns Pending appointments sorted ascending by
// date-time.
func (u *analyticsUsecase) PendingAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	pending := []entity.Appointment{}
	for i := range appointments {
		if appointments[i].Status == entity.AppointmentStatusPending {
			pending = append(pending, appointments[i])
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].DateTime.Before(pending[j].DateTime)
	})

	return converter.AppointmentsToResponses(pending), nil
}

func (u *analyticsUsecase) ConfirmedCount(ctx context.Context) (int, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return 0, err
	}

	count := 0
	for i := range appointments {
		if appointments[i].Status == entity.AppointmentStatusConfirmed {
			count++
		}
	}
	return count, nil
}

// DoctorsAboveAverageFee returns doctors whose fee strictly exceeds the
// average, sorted descending by fee.
func (u *analyticsUsecase) DoctorsAboveAverageFee(ctx context.Context) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}
	if len(doctors) == 0 {
		return []dto.DoctorResponse{}, nil
	}

	var sum float64
	for i := range doctors {
		sum += doctors[i].ConsultationFee
	}
	average := sum / float64(len(doctors))

	above := []entity.Doctor{}
	for i := range doctors {
		if doctors[i].ConsultationFee > average {
			above = append(above, doctors[i])
		}
	}
	sort.Slice(above, func(i, j int) bool {
		return above[i].ConsultationFee > above[j].ConsultationFee
	})

	return converter.DoctorsToResponses(above), nil
}

// Report bundles the headline metrics into one response.
func (u *analyticsUsecase) Report(ctx context.Context) (*dto.AnalyticsReportResponse, error) {
	average, err := u.AverageConsultationFee(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := u.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	confirmed, err := u.ConfirmedCount(ctx)
	if err != nil {
		return nil, err
	}
	perDoctor, err := u.AppointmentsPerDoctor(ctx)
	if err != nil {
		return nil, err
	}
	top, err := u.MostBookedDoctors(ctx, 3)
	if err != nil {
		return nil, err
	}
	pending, err := u.PendingAppointments(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AnalyticsReportResponse{
		AverageConsultationFee: average,
		TotalRevenue:           revenue,
		ConfirmedAppointments:  confirmed,
		AppointmentsPerDoctor:  perDoctor,
		TopDoctors:             top,
		PendingAppointments:    pending,
	}, nil
}
