package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/passtrack-app/passtrack/internal/infrastructure/repository/memory"
	"github.com/passtrack-app/passtrack/internal/platform/id"
	"github.com/passtrack-app/passtrack/internal/platform/logging"
	"github.com/passtrack-app/passtrack/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	playerRepo := memory.NewPlayerRepository()
	sessionRepo := memory.NewSessionRepository()
	passRepo := memory.NewPassEventRepository(playerRepo)

	playerService := usecase.NewPlayerService(playerRepo, id.NewSequenceGenerator("player"))
	sessionService := usecase.NewSessionService(sessionRepo, id.NewSequenceGenerator("session"))
	passingService := usecase.NewPassingService(sessionRepo, playerRepo, passRepo, id.NewSequenceGenerator("pass"))
	exportService := usecase.NewExportService(sessionRepo, passRepo, 2, logging.NewNop())

	handler := NewHandler(playerService, sessionService, passingService, exportService, logging.NewNop())
	return NewRouter(handler, logging.NewNop(), nil)
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	if strings.Contains(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &envelope))
	}
	return rec, envelope
}

func dataObject(t *testing.T, envelope map[string]any) map[string]any {
	t.Helper()
	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok, "expected data object, got %v", envelope)
	return data
}

func TestRouter_PassLifecycle(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodPost, "/players",
		`{"name":"Ana","jersey_number":7}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	anaID := dataObject(t, envelope)["id"].(string)

	rec, envelope = doJSON(t, router, http.MethodPost, "/sessions",
		`{"name":"Tuesday Practice"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	sessionID := dataObject(t, envelope)["id"].(string)

	for _, rating := range []string{"2", "3", "1"} {
		rec, _ = doJSON(t, router, http.MethodPost, "/pass_stats",
			`{"session_id":"`+sessionID+`","player_id":"`+anaID+`","rating":`+rating+`}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, envelope = doJSON(t, router, http.MethodGet,
		"/session/"+sessionID+"/player/"+anaID+"/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	stats := dataObject(t, envelope)
	require.EqualValues(t, 3, stats["total_passes"])
	require.InDelta(t, 2.0, stats["average_rating"], 1e-9)

	rec, envelope = doJSON(t, router, http.MethodDelete,
		"/session/"+sessionID+"/player/"+anaID+"/last_pass", "")
	require.Equal(t, http.StatusOK, rec.Code)
	afterUndo := dataObject(t, envelope)["stats"].(map[string]any)
	require.EqualValues(t, 2, afterUndo["total_passes"])
	require.InDelta(t, 2.5, afterUndo["average_rating"], 1e-9)
}

func TestRouter_RecordPassRejectsInvalidRating(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodPost, "/players",
		`{"name":"Ana","jersey_number":7}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	anaID := dataObject(t, envelope)["id"].(string)

	rec, envelope = doJSON(t, router, http.MethodPost, "/sessions",
		`{"name":"Tuesday Practice"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	sessionID := dataObject(t, envelope)["id"].(string)

	rec, envelope = doJSON(t, router, http.MethodPost, "/pass_stats",
		`{"session_id":"`+sessionID+`","player_id":"`+anaID+`","rating":4}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errorObj, ok := envelope["error"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "INVALID_ARGUMENT", errorObj["status"])

	// Nothing was persisted for the rejected event.
	rec, envelope = doJSON(t, router, http.MethodGet,
		"/session/"+sessionID+"/player/"+anaID+"/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	stats := dataObject(t, envelope)
	require.EqualValues(t, 0, stats["total_passes"])
}

func TestRouter_UndoWithoutPassesReturnsNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodPost, "/players",
		`{"name":"Iris","jersey_number":11}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	irisID := dataObject(t, envelope)["id"].(string)

	rec, envelope = doJSON(t, router, http.MethodPost, "/sessions",
		`{"name":"Thursday Practice"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	sessionID := dataObject(t, envelope)["id"].(string)

	rec, envelope = doJSON(t, router, http.MethodDelete,
		"/session/"+sessionID+"/player/"+irisID+"/last_pass", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	errorObj, ok := envelope["error"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "NOT_FOUND", errorObj["status"])
}

func TestRouter_DeletePlayerIsIdempotent(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodPost, "/players",
		`{"name":"Maya","jersey_number":4}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	mayaID := dataObject(t, envelope)["id"].(string)

	rec, envelope = doJSON(t, router, http.MethodDelete, "/players/"+mayaID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, dataObject(t, envelope)["deleted"])

	rec, envelope = doJSON(t, router, http.MethodDelete, "/players/"+mayaID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, false, dataObject(t, envelope)["deleted"])
}

func TestRouter_ExportSessionXLSX(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodPost, "/players",
		`{"name":"Ana","jersey_number":7}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	anaID := dataObject(t, envelope)["id"].(string)

	rec, envelope = doJSON(t, router, http.MethodPost, "/sessions",
		`{"name":"Tuesday Practice"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	sessionID := dataObject(t, envelope)["id"].(string)

	rec, _ = doJSON(t, router, http.MethodPost, "/pass_stats",
		`{"session_id":"`+sessionID+`","player_id":"`+anaID+`","rating":3}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/session/"+sessionID+"/export?format=xlsx", nil)
	recExport := httptest.NewRecorder()
	router.ServeHTTP(recExport, req)

	require.Equal(t, http.StatusOK, recExport.Code)
	require.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		recExport.Header().Get("Content-Type"))
	require.Contains(t, recExport.Header().Get("Content-Disposition"), ".xlsx")
	require.NotEmpty(t, recExport.Body.Bytes())
}
