package handlers

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"taskboard/internal/report"
)

type ReportHandler struct {
	generator report.Generator
	logger    *zap.Logger
}

func NewReportHandler(generator report.Generator, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{generator: generator, logger: logger}
}

// Generate relays the external generator's output verbatim. Unlike the
// rest of the API this endpoint speaks plain text, on failure too.
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	stream, err := h.generator.Generate(r.Context())
	if err != nil {
		h.logger.Error("report generation failed", zap.Error(err))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "Error generating report.")
		return
	}
	defer stream.Close()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.Copy(w, stream); err != nil {
		h.logger.Error("report relay failed", zap.Error(err))
	}
}
