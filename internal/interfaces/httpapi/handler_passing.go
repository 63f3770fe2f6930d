package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) RecordPass(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordPass")
	defer span.End()

	var req recordPassRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	event, stats, err := h.passingService.RecordPass(ctx, req.SessionID, req.PlayerID, *req.Rating)
	if err != nil {
		h.logger.WarnContext(ctx, "record pass failed",
			"session_id", req.SessionID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]any{
		"event": eventToDTO(event),
		"stats": aggregateToDTO(stats),
	})
}

func (h *Handler) UndoLastPass(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UndoLastPass")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))

	removed, stats, err := h.passingService.UndoLastPass(ctx, sessionID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "undo last pass failed",
			"session_id", sessionID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"removed": eventToDTO(removed),
		"stats":   aggregateToDTO(stats),
	})
}

func (h *Handler) GetSessionStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSessionStats")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	aggregates, err := h.passingService.SessionStats(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "session stats failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerStatsDTO, 0, len(aggregates))
	for _, a := range aggregates {
		items = append(items, aggregateToDTO(a))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStats")
	defer span.End()

	sessionID := strings.TrimSpace(r.PathValue("sessionID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))

	stats, err := h.passingService.PlayerStats(ctx, sessionID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "player stats failed",
			"session_id", sessionID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, aggregateToDTO(stats))
}
