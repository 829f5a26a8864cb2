package service

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"meditrack/internal/domain/repository"
	"meditrack/pkg/datetime"

	"github.com/sirupsen/logrus"
)

// ExportService streams store contents as CSV.
type ExportService struct {
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
}

func NewExportService(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
) *ExportService {
	return &ExportService{
		log:             log,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (s *ExportService) ExportPatients(ctx context.Context, w io.Writer) error {
	patients, err := s.patientRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "dob", "email", "phone", "medical_history", "allergies", "insurance_provider", "insurance_policy_number"}); err != nil {
		return err
	}
	for i := range patients {
		p := &patients[i]
		record := []string{
			strconv.Itoa(p.ID),
			p.Name,
			datetime.FormatDate(p.DateOfBirth),
			p.Email,
			p.Phone,
			p.MedicalHistory,
			p.Allergies,
			p.InsuranceProvider,
			p.InsurancePolicyNumber,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *ExportService) ExportDoctors(ctx context.Context, w io.Writer) error {
	doctors, err := s.doctorRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "dob", "email", "phone", "specialization", "consultation_fee", "experience_years", "license_number"}); err != nil {
		return err
	}
	for i := range doctors {
		d := &doctors[i]
		record := []string{
			strconv.Itoa(d.ID),
			d.Name,
			datetime.FormatDate(d.DateOfBirth),
			d.Email,
			d.Phone,
			string(d.Specialization),
			strconv.FormatFloat(d.ConsultationFee, 'f', 2, 64),
			strconv.Itoa(d.ExperienceYears),
			d.LicenseNumber,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *ExportService) ExportAppointments(ctx context.Context, w io.Writer) error {
	appointments, err := s.appointmentRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "patient_id", "doctor_id", "appointment_datetime", "status", "reason", "notes"}); err != nil {
		return err
	}
	for i := range appointments {
		a := &appointments[i]
		record := []string{
			strconv.Itoa(a.ID),
			strconv.Itoa(a.PatientID),
			strconv.Itoa(a.DoctorID),
			datetime.FormatDateTime(a.DateTime),
			string(a.Status),
			a.Reason,
			a.Notes,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
