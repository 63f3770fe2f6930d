package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSessions")
	defer span.End()

	sessions, err := h.sessionService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list sessions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]sessionDTO, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, sessionToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSession")
	defer span.End()

	var req createSessionRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.sessionService.Create(ctx, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "create session failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, sessionToDTO(created))
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSession")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	item, err := h.sessionService.GetByID(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "get session failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(item))
}
