package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kavia-common/personal-notes-manager-223030-223059/internal/model"
	"github.com/kavia-common/personal-notes-manager-223030-223059/internal/store"
	"github.com/kavia-common/personal-notes-manager-223030-223059/internal/websocket"
)

const titleMaxLen = 255

type NoteHandler struct {
	store  *store.NoteStore
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewNoteHandler(ns *store.NoteStore, hub *websocket.Hub, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{store: ns, hub: hub, logger: logger}
}

func (h *NoteHandler) broadcast(msg websocket.Message) {
	if h.hub != nil {
		h.hub.Broadcast(msg)
	}
}

// fieldErrors maps a request field to a human-readable constraint message.
type fieldErrors map[string]string

func validateTitle(title string) string {
	if title == "" {
		return "must not be empty"
	}
	if utf8.RuneCountInString(title) > titleMaxLen {
		return "must be at most 255 characters"
	}
	return ""
}

func validateContent(content string) string {
	if content == "" {
		return "must not be empty"
	}
	return ""
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)

	fields := fieldErrors{}
	if msg := validateTitle(req.Title); msg != "" {
		fields["title"] = msg
	}
	if msg := validateContent(req.Content); msg != "" {
		fields["content"] = msg
	}
	if len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	note, err := h.store.Create(req.Title, req.Content)
	if err != nil {
		h.logger.Error("create note", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create note"})
		return
	}

	h.broadcast(websocket.NewMessage("note", "created", note.ID))

	writeJSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.store.List()
	if err != nil {
		h.logger.Error("list notes", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list notes"})
		return
	}
	if notes == nil {
		notes = []model.Note{}
	}
	writeJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	note, err := h.store.GetByID(id)
	if err != nil {
		h.logger.Error("get note", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get note"})
		return
	}
	if note == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "note not found"})
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// Update replaces both fields of an existing note (PUT semantics).
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	existing, err := h.store.GetByID(id)
	if err != nil {
		h.logger.Error("get note", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get note"})
		return
	}
	if existing == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "note not found"})
		return
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)

	fields := fieldErrors{}
	if msg := validateTitle(req.Title); msg != "" {
		fields["title"] = msg
	}
	if msg := validateContent(req.Content); msg != "" {
		fields["content"] = msg
	}
	if len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	note, err := h.store.Update(id, req.Title, req.Content)
	if err != nil {
		h.logger.Error("update note", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update note"})
		return
	}

	h.broadcast(websocket.NewMessage("note", "updated", id))

	writeJSON(w, http.StatusOK, note)
}

// Patch applies any subset of {title, content}. Absent fields keep their
// current values; an empty body leaves the note (and updated_at) untouched.
func (h *NoteHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	existing, err := h.store.GetByID(id)
	if err != nil {
		h.logger.Error("get note", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get note"})
		return
	}
	if existing == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "note not found"})
		return
	}

	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	title, content := existing.Title, existing.Content
	fields := fieldErrors{}
	changed := false

	if req.Title != nil {
		title = strings.TrimSpace(*req.Title)
		if msg := validateTitle(title); msg != "" {
			fields["title"] = msg
		}
		changed = true
	}
	if req.Content != nil {
		content = strings.TrimSpace(*req.Content)
		if msg := validateContent(content); msg != "" {
			fields["content"] = msg
		}
		changed = true
	}
	if len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}
	if !changed {
		writeJSON(w, http.StatusOK, existing)
		return
	}

	note, err := h.store.Update(id, title, content)
	if err != nil {
		h.logger.Error("patch note", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update note"})
		return
	}

	h.broadcast(websocket.NewMessage("note", "updated", id))

	writeJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	existing, err := h.store.GetByID(id)
	if err != nil {
		h.logger.Error("get note", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get note"})
		return
	}
	if existing == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "note not found"})
		return
	}

	if err := h.store.Delete(id); err != nil {
		h.logger.Error("delete note", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete note"})
		return
	}

	h.broadcast(websocket.NewMessage("note", "deleted", id))

	w.WriteHeader(http.StatusNoContent)
}

func parseIDParam(r *http.Request) (int64, error) {
	idStr := r.PathValue("id")
	return strconv.ParseInt(idStr, 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeValidationError(w http.ResponseWriter, fields fieldErrors) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  "validation failed",
		"fields": fields,
	})
}
