package handler

import (
	"errors"
	"net/http"

	"meditrack/internal/usecase"
	"meditrack/internal/validation"
	"meditrack/pkg/response"
)

// writeUsecaseError maps domain errors to HTTP responses: invalid data
// is a 400 carrying the reason, a missing appointment is a 404,
// anything else is an opaque storage failure.
func writeUsecaseError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, validation.ErrInvalidData):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	default:
		response.InternalServerError(w, fallback)
	}
}
