package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kavia-common/personal-notes-manager-223030-223059/internal/handler"
	"github.com/kavia-common/personal-notes-manager-223030-223059/internal/middleware"
	"github.com/kavia-common/personal-notes-manager-223030-223059/internal/store"
	ws "github.com/kavia-common/personal-notes-manager-223030-223059/internal/websocket"
)

type Server struct {
	db     *sql.DB
	hub    *ws.Hub
	noteH  *handler.NoteHandler
	logger *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))
	noteStore := store.NewNoteStore(db)

	return &Server{
		db:     db,
		hub:    hub,
		noteH:  handler.NewNoteHandler(noteStore, hub, logger.With("component", "note")),
		logger: logger,
	}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.healthHandler)
	mux.HandleFunc("GET /health", s.healthHandler)

	mux.HandleFunc("POST /notes", s.noteH.Create)
	mux.HandleFunc("GET /notes", s.noteH.List)
	mux.HandleFunc("GET /notes/{id}", s.noteH.Get)
	mux.HandleFunc("PUT /notes/{id}", s.noteH.Update)
	mux.HandleFunc("PATCH /notes/{id}", s.noteH.Patch)
	mux.HandleFunc("DELETE /notes/{id}", s.noteH.Delete)

	// WebSocket feed of note change events
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub))

	h := middleware.CORS(mux)
	return middleware.RequestLogger(s.logger.With("component", "http"))(h)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Healthy"})
}
