package usecase

import (
	"context"
	"fmt"

	"meditrack/internal/converter"
	"meditrack/internal/delivery/dto"
	"meditrack/internal/domain/entity"
	"meditrack/internal/domain/repository"
	"meditrack/internal/validation"
	"meditrack/pkg/datetime"
	"meditrack/pkg/idgen"

	"github.com/sirupsen/logrus"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
	UpdatePatient(ctx context.Context, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id int) (bool, error)
	SearchPatientsByName(ctx context.Context, name string) (*dto.PatientListResponse, error)
	SearchPatientsByAge(ctx context.Context, age int) (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	idGen       *idgen.Generator
}

func NewPatientUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	idGen *idgen.Generator,
) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
		idGen:       idGen,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	if err := validation.Name(req.Name); err != nil {
		return nil, err
	}
	dob, err := datetime.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", validation.ErrInvalidData, err)
	}
	if err := validation.DateOfBirth(dob); err != nil {
		return nil, err
	}
	if err := validation.Email(req.Email); err != nil {
		return nil, err
	}
	if err := validation.Phone(req.Phone); err != nil {
		return nil, err
	}

	patient := &entity.Patient{
		Person: entity.Person{
			ID:          u.idGen.NextPatientID(),
			Name:        req.Name,
			DateOfBirth: dob,
			Email:       req.Email,
			Phone:       req.Phone,
		},
		MedicalHistory:        req.MedicalHistory,
		Allergies:             req.Allergies,
		InsuranceProvider:     req.InsuranceProvider,
		InsurancePolicyNumber: req.InsurancePolicyNumber,
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient created: id=%d", patient.ID)
	return converter.PatientToResponse(patient), nil
}

// GetPatient returns nil without an error when no patient matches;
// absence is not a failure for patient lookups.
func (u *patientUsecase) GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error) {
	if err := validation.ID(id); err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	if err := validation.ID(id); err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, nil
	}

	if req.Name != "" {
		patient.Name = req.Name
	}
	if req.DateOfBirth != "" {
		dob, err := datetime.ParseDate(req.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", validation.ErrInvalidData, err)
		}
		patient.DateOfBirth = dob
	}
	if req.Email != "" {
		patient.Email = req.Email
	}
	if req.Phone != "" {
		patient.Phone = req.Phone
	}
	if req.MedicalHistory != "" {
		patient.MedicalHistory = req.MedicalHistory
	}
	if req.Allergies != "" {
		patient.Allergies = req.Allergies
	}
	if req.InsuranceProvider != "" {
		patient.InsuranceProvider = req.InsuranceProvider
	}
	if req.InsurancePolicyNumber != "" {
		patient.InsurancePolicyNumber = req.InsurancePolicyNumber
	}

	if err := validation.Name(patient.Name); err != nil {
		return nil, err
	}
	if err := validation.DateOfBirth(patient.DateOfBirth); err != nil {
		return nil, err
	}
	if err := validation.Email(patient.Email); err != nil {
		return nil, err
	}
	if err := validation.Phone(patient.Phone); err != nil {
		return nil, err
	}

	affected, err := u.patientRepo.Update(ctx, patient)
	if err != nil {
		u.log.Warnf("Failed to update patient %d: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}

	return converter.PatientToResponse(patient), nil
}

// DeletePatient reports whether a row was removed.
func (u *patientUsecase) DeletePatient(ctx context.Context, id int) (bool, error) {
	if err := validation.ID(id); err != nil {
		return false, err
	}

	affected, err := u.patientRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete patient %d: %+v", id, err)
		return false, err
	}
	return affected > 0, nil
}

func (u *patientUsecase) SearchPatientsByName(ctx context.Context, name string) (*dto.PatientListResponse, error) {
	if err := validation.Name(name); err != nil {
		return nil, err
	}

	patients, err := u.patientRepo.SearchByName(ctx, name)
	if err != nil {
		u.log.Warnf("Failed to search patients by name: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

// SearchPatientsByAge scans every patient and keeps those whose derived
// age matches. Linear, which is fine at this record count.
func (u *patientUsecase) SearchPatientsByAge(ctx context.Context, age int) (*dto.PatientListResponse, error) {
	if err := validation.Age(age); err != nil {
		return nil, err
	}

	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	matched := []entity.Patient{}
	for i := range patients {
		if patients[i].Age() == age {
			matched = append(matched, patients[i])
		}
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(matched),
		Total:    len(matched),
	}, nil
}
