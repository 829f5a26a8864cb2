package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"meditrack/internal/service"
	"meditrack/pkg/response"
)

type ExportHandler struct {
	exportService *service.ExportService
}

func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

func (h *ExportHandler) ExportPatients(w http.ResponseWriter, r *http.Request) {
	h.exportCSV(w, r, "patients.csv", h.exportService.ExportPatients)
}

func (h *ExportHandler) ExportDoctors(w http.ResponseWriter, r *http.Request) {
	h.exportCSV(w, r, "doctors.csv", h.exportService.ExportDoctors)
}

func (h *ExportHandler) ExportAppointments(w http.ResponseWriter, r *http.Request) {
	h.exportCSV(w, r, "appointments.csv", h.exportService.ExportAppointments)
}

// exportCSV buffers the export so a storage failure can still return a
// clean JSON error instead of a truncated file.
func (h *ExportHandler) exportCSV(w http.ResponseWriter, r *http.Request, filename string, export func(context.Context, io.Writer) error) {
	var buf bytes.Buffer
	if err := export(r.Context(), &buf); err != nil {
		response.InternalServerError(w, "Failed to export data")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
