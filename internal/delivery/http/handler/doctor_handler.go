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

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create doctor")
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

func (h *DoctorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err, "Failed to get doctor")
		return
	}
	if doctor == nil {
		response.NotFound(w, "Doctor not found")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctor(r.Context(), id, &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update doctor")
		return
	}
	if doctor == nil {
		response.NotFound(w, "Doctor not found")
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

func (h *DoctorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	deleted, err := h.doctorUsecase.DeleteDoctor(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err, "Failed to delete doctor")
		return
	}
	if !deleted {
		response.NotFound(w, "Doctor not found")
		return
	}

	response.Success(w, http.StatusOK, "Doctor deleted successfully", nil)
}

// Search filters by name or specialization depending on which query
// parameter is present.
func (h *DoctorHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if name := query.Get("name"); name != "" {
		doctors, err := h.doctorUsecase.SearchDoctorsByName(r.Context(), name)
		if err != nil {
			writeUsecaseError(w, err, "Failed to search doctors")
			return
		}
		response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
		return
	}

	if specialization := query.Get("specialization"); specialization != "" {
		doctors, err := h.doctorUsecase.SearchDoctorsBySpecialization(r.Context(), specialization)
		if err != nil {
			writeUsecaseError(w, err, "Failed to search doctors")
			return
		}
		response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
		return
	}

	response.Error(w, http.StatusBadRequest, "Missing search parameter: name or specialization", nil)
}
