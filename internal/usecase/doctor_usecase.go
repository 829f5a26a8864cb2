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

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, id int) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	UpdateDoctor(ctx context.Context, id int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, id int) (bool, error)
	SearchDoctorsByName(ctx context.Context, name string) (*dto.DoctorListResponse, error)
	SearchDoctorsBySpecialization(ctx context.Context, specialization string) (*dto.DoctorListResponse, error)
}

type doctorUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	idGen      *idgen.Generator
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	idGen *idgen.Generator,
) DoctorUsecase {
	return &doctorUsecase{
		log:        log,
		doctorRepo: doctorRepo,
		idGen:      idGen,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
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
	if err := validation.Amount(req.ConsultationFee); err != nil {
		return nil, err
	}
	specialization, ok := entity.ParseSpecialization(req.Specialization)
	if !ok {
		return nil, fmt.Errorf("%w: unknown specialization %q", validation.ErrInvalidData, req.Specialization)
	}

	doctor := &entity.Doctor{
		Person: entity.Person{
			ID:          u.idGen.NextDoctorID(),
			Name:        req.Name,
			DateOfBirth: dob,
			Email:       req.Email,
			Phone:       req.Phone,
		},
		Specialization:  specialization,
		ConsultationFee: req.ConsultationFee,
		ExperienceYears: req.ExperienceYears,
		LicenseNumber:   req.LicenseNumber,
	}

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	u.log.Infof("Doctor created: id=%d, specialization=%s", doctor.ID, doctor.Specialization)
	return converter.DoctorToResponse(doctor), nil
}

// GetDoctor returns nil without an error when no doctor matches.
func (u *doctorUsecase) GetDoctor(ctx context.Context, id int) (*dto.DoctorResponse, error) {
	if err := validation.ID(id); err != nil {
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	if err := validation.ID(id); err != nil {
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, nil
	}

	if req.Name != "" {
		doctor.Name = req.Name
	}
	if req.DateOfBirth != "" {
		dob, err := datetime.ParseDate(req.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", validation.ErrInvalidData, err)
		}
		doctor.DateOfBirth = dob
	}
	if req.Email != "" {
		doctor.Email = req.Email
	}
	if req.Phone != "" {
		doctor.Phone = req.Phone
	}
	if req.Specialization != "" {
		specialization, ok := entity.ParseSpecialization(req.Specialization)
		if !ok {
			return nil, fmt.Errorf("%w: unknown specialization %q", validation.ErrInvalidData, req.Specialization)
		}
		doctor.Specialization = specialization
	}
	if req.ConsultationFee != nil {
		doctor.ConsultationFee = *req.ConsultationFee
	}
	if req.ExperienceYears != nil {
		doctor.ExperienceYears = *req.ExperienceYears
	}
	if req.LicenseNumber != "" {
		doctor.LicenseNumber = req.LicenseNumber
	}

	if err := validation.Name(doctor.Name); err != nil {
		return nil, err
	}
	if err := validation.Email(doctor.Email); err != nil {
		return nil, err
	}
	if err := validation.Phone(doctor.Phone); err != nil {
		return nil, err
	}
	if err := validation.DateOfBirth(doctor.DateOfBirth); err != nil {
		return nil, err
	}
	if err := validation.Amount(doctor.ConsultationFee); err != nil {
		return nil, err
	}

	affected, err := u.doctorRepo.Update(ctx, doctor)
	if err != nil {
		u.log.Warnf("Failed to update doctor %d: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}

	return converter.DoctorToResponse(doctor), nil
}

// DeleteDoctor reports whether a row was removed.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id int) (bool, error) {
	if err := validation.ID(id); err != nil {
		return false, err
	}

	affected, err := u.doctorRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor %d: %+v", id, err)
		return false, err
	}
	return affected > 0, nil
}

func (u *doctorUsecase) SearchDoctorsByName(ctx context.Context, name string) (*dto.DoctorListResponse, error) {
	if err := validation.Name(name); err != nil {
		return nil, err
	}

	doctors, err := u.doctorRepo.SearchByName(ctx, name)
	if err != nil {
		u.log.Warnf("Failed to search doctors by name: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) SearchDoctorsBySpecialization(ctx context.Context, specialization string) (*dto.DoctorListResponse, error) {
	sp, ok := entity.ParseSpecialization(specialization)
	if !ok {
		return nil, fmt.Errorf("%w: unknown specialization %q", validation.ErrInvalidData, specialization)
	}

	doctors, err := u.doctorRepo.FindBySpecialization(ctx, sp)
	if err != nil {
		u.log.Warnf("Failed to search doctors by specialization: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}
