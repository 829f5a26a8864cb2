package handler

import (
	"net/http"
	"strconv"

	"meditrack/internal/usecase"
	"meditrack/pkg/response"
)

type AnalyticsHandler struct {
	analyticsUsecase usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(analyticsUsecase usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUsecase: analyticsUsecase,
	}
}

func (h *AnalyticsHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.analyticsUsecase.Report(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to build analytics report")
		return
	}

	response.Success(w, http.StatusOK, "Analytics report generated successfully", report)
}

func (h *AnalyticsHandler) AverageConsultationFee(w http.ResponseWriter, r *http.Request) {
	avg, err := h.analyticsUsecase.AverageConsultationFee(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to compute average consultation fee")
		return
	}

	response.Success(w, http.StatusOK, "Average consultation fee computed successfully", map[string]float64{
		"average_consultation_fee": avg,
	})
}

func (h *AnalyticsHandler) TotalRevenue(w http.ResponseWriter, r *http.Request) {
	total, err := h.analyticsUsecase.TotalRevenue(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to compute total revenue")
		return
	}

	response.Success(w, http.StatusOK, "Total revenue computed successfully", map[string]float64{
		"total_revenue": total,
	})
}

func (h *AnalyticsHandler) MostBookedDoctors(w http.ResponseWriter, r *http.Request) {
	limit := 3
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			response.Error(w, http.StatusBadRequest, "Invalid limit parameter", nil)
			return
		}
		limit = n
	}

	doctors, err := h.analyticsUsecase.MostBookedDoctors(r.Context(), limit)
	if err != nil {
		writeUsecaseError(w, err, "Failed to rank doctors")
		return
	}

	response.Success(w, http.StatusOK, "Most booked doctors retrieved successfully", doctors)
}

func (h *AnalyticsHandler) AppointmentsPerDoctor(w http.ResponseWriter, r *http.Request) {
	counts, err := h.analyticsUsecase.AppointmentsPerDoctor(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to count appointments per doctor")
		return
	}

	response.Success(w, http.StatusOK, "Appointments per doctor computed successfully", counts)
}

func (h *AnalyticsHandler) ConfirmedCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.analyticsUsecase.ConfirmedCount(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to count confirmed appointments")
		return
	}

	response.Success(w, http.StatusOK, "Confirmed appointment count computed successfully", map[string]int{
		"confirmed_appointments": count,
	})
}

func (h *AnalyticsHandler) PendingAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.analyticsUsecase.PendingAppointments(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to list pending appointments")
		return
	}

	response.Success(w, http.StatusOK, "Pending appointments retrieved successfully", appointments)
}

func (h *AnalyticsHandler) DoctorsAboveAverageFee(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.analyticsUsecase.DoctorsAboveAverageFee(r.Context())
	if err != nil {
		writeUsecaseError(w, err, "Failed to filter doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}
