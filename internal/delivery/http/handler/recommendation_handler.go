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

type RecommendationHandler struct {
	recommendationUsecase usecase.RecommendationUsecase
	validator             *validator.CustomValidator
}

func NewRecommendationHandler(recommendationUsecase usecase.RecommendationUsecase, validator *validator.CustomValidator) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationUsecase: recommendationUsecase,
		validator:             validator,
	}
}

func (h *RecommendationHandler) RecommendDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.RecommendDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	recommendation, err := h.recommendationUsecase.RecommendDoctor(r.Context(), req.Symptoms)
	if err != nil {
		writeUsecaseError(w, err, "Failed to recommend doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor recommended successfully", recommendation)
}

func (h *RecommendationHandler) SuggestSlots(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.Atoi(mux.Vars(r)["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	slots, err := h.recommendationUsecase.SuggestSlots(r.Context(), doctorID, r.URL.Query().Get("date"))
	if err != nil {
		writeUsecaseError(w, err, "Failed to suggest slots")
		return
	}

	response.Success(w, http.StatusOK, "Slots suggested successfully", slots)
}
