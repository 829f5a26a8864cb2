package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meditrack/internal/delivery/dto"
	"meditrack/internal/usecase"
	"meditrack/pkg/response"
)

var _ usecase.AnalyticsUsecase = (*stubAnalyticsUsecase)(nil)

type stubAnalyticsUsecase struct {
	perDoctor map[int]int
	confirmed int
	err       error
}

func (s *stubAnalyticsUsecase) AverageConsultationFee(context.Context) (float64, error) {
	return 0, s.err
}
func (s *stubAnalyticsUsecase) TotalRevenue(context.Context) (float64, error) {
	return 0, s.err
}
func (s *stubAnalyticsUsecase) AppointmentsPerDoctor(context.Context) (map[int]int, error) {
	return s.perDoctor, s.err
}
func (s *stubAnalyticsUsecase) MostBookedDoctors(context.Context, int) ([]dto.DoctorResponse, error) {
	return nil, s.err
}
func (s *stubAnalyticsUsecase) PendingAppointments(context.Context) ([]dto.AppointmentResponse, error) {
	return nil, s.err
}
func (s *stubAnalyticsUsecase) ConfirmedCount(context.Context) (int, error) {
	return s.confirmed, s.err
}
func (s *stubAnalyticsUsecase) DoctorsAboveAverageFee(context.Context) ([]dto.DoctorResponse, error) {
	return nil, s.err
}
func (s *stubAnalyticsUsecase) Report(context.Context) (*dto.AnalyticsReportResponse, error) {
	return nil, s.err
}

func newAnalyticsRouter(uc usecase.AnalyticsUsecase) *mux.Router {
	h := NewAnalyticsHandler(uc)
	r := mux.NewRouter()
	r.HandleFunc("/analytics/appointments-per-doctor", h.AppointmentsPerDoctor).Methods(http.MethodGet)
	r.HandleFunc("/analytics/confirmed-count", h.ConfirmedCount).Methods(http.MethodGet)
	return r
}

func TestAppointmentsPerDoctorEndpoint(t *testing.T) {
	r := newAnalyticsRouter(&stubAnalyticsUsecase{perDoctor: map[int]int{2001: 3, 2002: 1}})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/analytics/appointments-per-doctor", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	counts, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), counts["2001"])
}

func TestConfirmedCountEndpoint(t *testing.T) {
	r := newAnalyticsRouter(&stubAnalyticsUsecase{confirmed: 7})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/analytics/confirmed-count", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	counts, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(7), counts["confirmed_appointments"])
}

func TestConfirmedCountEndpointFailure(t *testing.T) {
	r := newAnalyticsRouter(&stubAnalyticsUsecase{err: assert.AnError})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/analytics/confirmed-count", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
