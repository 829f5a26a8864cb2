package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"meditrack/internal/converter"
	"meditrack/internal/delivery/dto"
	"meditrack/internal/domain/entity"
	"meditrack/internal/domain/repository"
	"meditrack/internal/validation"
	"meditrack/pkg/datetime"

	"github.com/sirupsen/logrus"
)

// symptomRule maps a symptom keyword to a specialization. Rules are an
// ordered list so "first match wins" is deterministic.
type symptomRule struct {
	keyword        string
	specialization entity.Specialization
}

var symptomRules = []symptomRule{
	{"chest pain", entity.SpecializationCardiology},
	{"heart", entity.SpecializationCardiology},
	{"cardiac", entity.SpecializationCardiology},
	{"rash", entity.SpecializationDermatology},
	{"skin", entity.SpecializationDermatology},
	{"acne", entity.SpecializationDermatology},
	{"child", entity.SpecializationPediatrics},
	{"pediatric", entity.SpecializationPediatrics},
	{"baby", entity.SpecializationPediatrics},
	{"fracture", entity.SpecializationOrthopedics},
	{"bone", entity.SpecializationOrthopedics},
	{"joint", entity.SpecializationOrthopedics},
	{"headache", entity.SpecializationNeurology},
	{"neurological", entity.SpecializationNeurology},
	{"seizure", entity.SpecializationNeurology},
	{"mental", entity.SpecializationPsychiatry},
	{"depression", entity.SpecializationPsychiatry},
	{"anxiety", entity.SpecializationPsychiatry},
	{"cancer", entity.SpecializationOncology},
	{"tumor", entity.SpecializationOncology},
	{"women", entity.SpecializationGynecology},
	{"gynecological", entity.SpecializationGynecology},
	{"urinary", entity.SpecializationUrology},
	{"kidney", entity.SpecializationUrology},
}

// Slot suggestion bounds: hourly grid from 09:00, last start 16:00,
// at most 5 suggestions.
const (
	slotStartHour = 9
	slotEndHour   = 17
	maxSlots      = 5
)

type RecommendationUsecase interface {
	RecommendDoctor(ctx context.Context, symptoms string) (*dto.RecommendationResponse, error)
	SuggestSlots(ctx context.Context, doctorID int, preferredDate string) (*dto.SlotListResponse, error)
}

type recommendationUsecase struct {
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
}

func NewRecommendationUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
) RecommendationUsecase {
	return &recommendationUsecase{
		log:             log,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
	}
}

// RecommendDoctor maps free-text symptoms to a specialization and picks
// the least busy doctor of that specialty: fewest non-cancelled
// appointments, ties broken by candidate order. Unmatched symptoms and
// specialties with no doctors both fall back to General Medicine. The
// Doctor field is nil when no doctor exists at all.
func (u *recommendationUsecase) RecommendDoctor(ctx context.Context, symptoms string) (*dto.RecommendationResponse, error) {
	if strings.TrimSpace(symptoms) == "" {
		return nil, fmt.Errorf("%w: symptoms cannot be empty", validation.ErrInvalidData)
	}

	specialization := matchSpecialization(symptoms)

	doctors, err := u.doctorRepo.FindBySpecialization(ctx, specialization)
	if err != nil {
		u.log.Warnf("Failed to find doctors for %s: %+v", specialization, err)
		return nil, err
	}
	if len(doctors) == 0 && specialization != entity.SpecializationGeneral {
		specialization = entity.SpecializationGeneral
		doctors, err = u.doctorRepo.FindBySpecialization(ctx, specialization)
		if err != nil {
			u.log.Warnf("Failed to find general doctors: %+v", err)
			return nil, err
		}
	}

	response := &dto.RecommendationResponse{Specialization: string(specialization)}
	if len(doctors) == 0 {
		return response, nil
	}

	doctor, err := u.leastBusyDoctor(ctx, doctors)
	if err != nil {
		return nil, err
	}
	response.Doctor = converter.DoctorToResponse(doctor)
	return response, nil
}

// SuggestSlots proposes open hourly slots for a doctor. preferredDate is
// yyyy-mm-dd; empty means tomorrow. Slots colliding with a non-cancelled
// appointment or lying in the past are skipped.
func (u *recommendationUsecase) SuggestSlots(ctx context.Context, doctorID int, preferredDate string) (*dto.SlotListResponse, error) {
	if err := validation.ID(doctorID); err != nil {
		return nil, err
	}

	var day time.Time
	if preferredDate != "" {
		parsed, err := datetime.ParseDate(preferredDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", validation.ErrInvalidData, err)
		}
		day = parsed
	} else {
		day = time.Now().AddDate(0, 0, 1)
	}
	slot := time.Date(day.Year(), day.Month(), day.Day(), slotStartHour, 0, 0, 0, time.Local)

	appointments, err := u.appointmentRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	// Key by instant, not time.Time: the store hands back UTC timestamps
	// and those never map-match a time.Local slot at the same moment.
	booked := map[int64]bool{}
	for i := range appointments {
		if appointments[i].Status != entity.AppointmentStatusCancelled {
			booked[appointments[i].DateTime.Unix()] = true
		}
	}

	now := time.Now()
	slots := []string{}
	for len(slots) < maxSlots && slot.Hour() < slotEndHour {
		if slot.After(now) && !booked[slot.Unix()] {
			slots = append(slots, datetime.FormatDateTime(slot))
		}
		slot = slot.Add(time.Hour)
	}

	return &dto.SlotListResponse{
		DoctorID: doctorID,
		Slots:    slots,
		Total:    len(slots),
	}, nil
}

func matchSpecialization(symptoms string) entity.Specialization {
	lower := strings.ToLower(symptoms)
	for _, rule := range symptomRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.specialization
		}
	}
	return entity.SpecializationGeneral
}

func (u *recommendationUsecase) leastBusyDoctor(ctx context.Context, doctors []entity.Doctor) (*entity.Doctor, error) {
	if len(doctors) == 1 {
		return &doctors[0], nil
	}

	best := 0
	bestCount := -1
	for i := range doctors {
		appointments, err := u.appointmentRepo.FindByDoctorID(ctx, doctors[i].ID)
		if err != nil {
			u.log.Warnf("Failed to count appointments for doctor %d: %+v", doctors[i].ID, err)
			return nil, err
		}
		count := 0
		for j := range appointments {
			if appointments[j].Status != entity.AppointmentStatusCancelled {
				count++
			}
		}
		if bestCount == -1 || count < bestCount {
			best = i
			bestCount = count
		}
	}
	return &doctors[best], nil
}
