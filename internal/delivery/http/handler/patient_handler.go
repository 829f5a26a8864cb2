package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"meditrack/internal/delivery/dto"
	"meditrack/internal/usecase"
	"meditrack/pkg/response"
	"meditrack/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.CreatePatient(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create patient")
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", patient)
}

func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err, "Failed to get patient")
		return
	}
	if patient == nil {
		response.NotFound(w, "Patient not found")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

func (h *PatientHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetAllPatients(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to list patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.UpdatePatient(r.Context(), id, &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update patient")
		return
	}
	if patient == nil {
		response.NotFound(w, "Patient not found")
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	deleted, err := h.patientUsecase.DeletePatient(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err, "Failed to delete patient")
		return
	}
	if !deleted {
		response.NotFound(w, "Patient not found")
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted successfully", nil)
}

// Search filters by name or age depending on which query parameter is
// present. Name takes precedence when both are given.
func (h *PatientHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if name := query.Get("name"); name != "" {
		patients, err := h.patientUsecase.SearchPatientsByName(r.Context(), name)
		if err != nil {
			writeUsecaseError(w, err, "Failed to search patients")
			return
		}
		response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
		return
	}

	if ageParam := query.Get("age"); ageParam != "" {
		age, err := strconv.Atoi(ageParam)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid age parameter", nil)
			return
		}
		patients, err := h.patientUsecase.SearchPatientsByAge(r.Context(), age)
		if err != nil {
			writeUsecaseError(w, err, "Failed to search patients")
			return
		}
		response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
		return
	}

	response.Error(w, http.StatusBadRequest, "Missing search parameter: name or age", nil)
}
