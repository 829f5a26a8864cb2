package http

import (
	"net/http"

	"meditrack/internal/delivery/http/handler"
	"meditrack/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	patientHandler        *handler.PatientHandler
	doctorHandler         *handler.DoctorHandler
	appointmentHandler    *handler.AppointmentHandler
	analyticsHandler      *handler.AnalyticsHandler
	recommendationHandler *handler.RecommendationHandler
	exportHandler         *handler.ExportHandler
	loggingMiddleware     *middleware.LoggingMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	analyticsHandler *handler.AnalyticsHandler,
	recommendationHandler *handler.RecommendationHandler,
	exportHandler *handler.ExportHandler,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		patientHandler:        patientHandler,
		doctorHandler:         doctorHandler,
		appointmentHandler:    appointmentHandler,
		analyticsHandler:      analyticsHandler,
		recommendationHandler: recommendationHandler,
		exportHandler:         exportHandler,
		loggingMiddleware:     loggingMiddleware,
		corsMiddleware:        corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Patients
	api.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/patients/search", r.patientHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/patients/{patientId}/appointments", r.appointmentHandler.GetByPatient).Methods(http.MethodGet)

	// Doctors
	api.HandleFunc("/doctors", r.doctorHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/doctors", r.doctorHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/doctors/search", r.doctorHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/doctors/{doctorId}/appointments", r.appointmentHandler.GetByDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/slots", r.recommendationHandler.SuggestSlots).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/appointments", r.appointmentHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}/confirm", r.appointmentHandler.Confirm).Methods(http.MethodPost)

	// Billing
	api.HandleFunc("/appointments/{id}/bill", r.appointmentHandler.CreateBill).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}/bill/summary", r.appointmentHandler.GetBillSummary).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}/bill/payment-status", r.appointmentHandler.UpdateBillPaymentStatus).Methods(http.MethodPut)

	// Analytics
	api.HandleFunc("/analytics/report", r.analyticsHandler.Report).Methods(http.MethodGet)
	api.HandleFunc("/analytics/average-fee", r.analyticsHandler.AverageConsultationFee).Methods(http.MethodGet)
	api.HandleFunc("/analytics/revenue", r.analyticsHandler.TotalRevenue).Methods(http.MethodGet)
	api.HandleFunc("/analytics/most-booked-doctors", r.analyticsHandler.MostBookedDoctors).Methods(http.MethodGet)
	api.HandleFunc("/analytics/appointments-per-doctor", r.analyticsHandler.AppointmentsPerDoctor).Methods(http.MethodGet)
	api.HandleFunc("/analytics/confirmed-count", r.analyticsHandler.ConfirmedCount).Methods(http.MethodGet)
	api.HandleFunc("/analytics/pending-appointments", r.analyticsHandler.PendingAppointments).Methods(http.MethodGet)
	api.HandleFunc("/analytics/doctors-above-average-fee", r.analyticsHandler.DoctorsAboveAverageFee).Methods(http.MethodGet)

	// Recommendations
	api.HandleFunc("/recommendations/doctor", r.recommendationHandler.RecommendDoctor).Methods(http.MethodPost)

	// CSV exports
	api.HandleFunc("/exports/patients", r.exportHandler.ExportPatients).Methods(http.MethodGet)
	api.HandleFunc("/exports/doctors", r.exportHandler.ExportDoctors).Methods(http.MethodGet)
	api.HandleFunc("/exports/appointments", r.exportHandler.ExportAppointments).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
