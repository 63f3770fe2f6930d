package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/passtrack-app/passtrack/internal/export"
	"github.com/passtrack-app/passtrack/internal/usecase"
)

func (h *Handler) ExportSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportSession")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))

	rawFormat := strings.TrimSpace(r.URL.Query().Get("format"))
	if rawFormat == "" {
		rawFormat = string(export.FormatXLSX)
	}
	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	report, err := h.exportService.SessionReport(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "export session failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.writeReport(w, r, report, format, "session-"+sessionID+"-stats")
}

func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportReport")
	defer span.End()

	var req exportReportRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	format, err := export.ParseFormat(req.Format)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	report, err := h.exportService.TeamReport(ctx, req.SessionIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "export report failed",
			"session_count", len(req.SessionIDs), "error", err)
		writeError(ctx, w, err)
		return
	}

	h.writeReport(w, r, report, format, "team-report")
}

func (h *Handler) writeReport(w http.ResponseWriter, r *http.Request, report export.Report, format export.Format, baseName string) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.writeReport")
	defer span.End()

	payload, err := export.Render(report, format)
	if err != nil {
		h.logger.ErrorContext(ctx, "render report failed", "format", string(format), "error", err)
		writeInternalError(ctx, w)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", format.FileName(baseName)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}
