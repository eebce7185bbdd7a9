package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler owns the shared connection pool. The pool is created once in
// main and passed down; nothing here holds package-level state.
type Handler struct {
	DB *sql.DB
}

func New(pool *sql.DB) *Handler {
	return &Handler{DB: pool}
}

// Register mounts every API route on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/todos", h.ListTodos)
	r.Post("/api/todos", h.CreateTodo)
	r.Put("/api/todos/{id}", h.UpdateTodo)
	r.Delete("/api/todos/{id}", h.DeleteTodo)

	r.Get("/api/notes", h.ListNotes)
	r.Get("/api/notes/{id}", h.GetNote)
	r.Post("/api/notes", h.CreateNote)
	r.Put("/api/notes/{id}", h.UpdateNote)
	r.Delete("/api/notes/{id}", h.DeleteNote)
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
