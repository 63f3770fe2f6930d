package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerRosterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /players", handler.ListPlayers)
	mux.HandleFunc("POST /players", handler.CreatePlayer)
	mux.HandleFunc("PUT /players/{playerID}", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /players/{playerID}", handler.DeletePlayer)
}

func registerSessionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /sessions", handler.ListSessions)
	mux.HandleFunc("POST /sessions", handler.CreateSession)
	mux.HandleFunc("GET /sessions/{sessionID}", handler.GetSession)
}

func registerPassingRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /pass_stats", handler.RecordPass)
	mux.HandleFunc("GET /session/{sessionID}/stats", handler.GetSessionStats)
	mux.HandleFunc("GET /session/{sessionID}/player/{playerID}/stats", handler.GetPlayerStats)
	mux.HandleFunc("DELETE /session/{sessionID}/player/{playerID}/last_pass", handler.UndoLastPass)
}

func registerExportRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /session/{sessionID}/export", handler.ExportSession)
	mux.HandleFunc("POST /export/report", handler.ExportReport)
}
