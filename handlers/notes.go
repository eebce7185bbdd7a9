package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"todo-notes/models"
)

func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	rows, err := h.DB.QueryContext(r.Context(),
		"SELECT id, title, created_at, updated_at FROM notes ORDER BY created_at DESC")
	if err != nil {
		log.Println("Error fetching notes:", err)
		writeError(w, http.StatusInternalServerError, "Server error while fetching notes")
		return
	}
	defer rows.Close()

	notes := []models.NoteSummary{}
	for rows.Next() {
		var note models.NoteSummary
		if err := rows.Scan(&note.ID, &note.Title, &note.CreatedAt, &note.UpdatedAt); err != nil {
			log.Println("Error scanning note:", err)
			writeError(w, http.StatusInternalServerError, "Server error while fetching notes")
			return
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		log.Println("Error fetching notes:", err)
		writeError(w, http.StatusInternalServerError, "Server error while fetching notes")
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}

	var note models.Note
	err = h.DB.QueryRowContext(r.Context(),
		"SELECT id, title, content, created_at, updated_at FROM notes WHERE id = ?", id).
		Scan(&note.ID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}
	if err != nil {
		log.Println("Error fetching note:", err)
		writeError(w, http.StatusInternalServerError, "Server error while fetching note")
		return
	}

	writeJSON(w, http.StatusOK, note)
}

type noteRequest struct {
	Title   *string `json:"title"`
	Content string  `json:"content"`
}

// title returns the value to bind for the title column. An omitted or
// empty title is stored as NULL.
func (req noteRequest) title() *string {
	if req.Title == nil || *req.Title == "" {
		return nil
	}
	return req.Title
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "Content is required")
		return
	}

	res, err := h.DB.ExecContext(r.Context(),
		"INSERT INTO notes (title, content) VALUES (?, ?)", req.title(), req.Content)
	if err != nil {
		log.Println("Error creating note:", err)
		writeError(w, http.StatusInternalServerError, "Server error while creating note")
		return
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		log.Println("Error creating note:", err)
		writeError(w, http.StatusInternalServerError, "Server error while creating note")
		return
	}

	var note models.Note
	err = h.DB.QueryRowContext(r.Context(),
		"SELECT id, title, content, created_at, updated_at FROM notes WHERE id = ?", lastID).
		Scan(&note.ID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		log.Println("Error creating note:", err)
		writeError(w, http.StatusInternalServerError, "Server error while creating note")
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

// UpdateNote is a full replace: title and content are rewritten
// unconditionally, and omitting the title clears it. This is
// deliberately different from the todo partial update.
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "Content is required")
		return
	}

	_, err = h.DB.ExecContext(r.Context(),
		"UPDATE notes SET title = ?, content = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		req.title(), req.Content, id)
	if err != nil {
		log.Println("Error updating note:", err)
		writeError(w, http.StatusInternalServerError, "Server error while updating note")
		return
	}

	var note models.Note
	err = h.DB.QueryRowContext(r.Context(),
		"SELECT id, title, content, created_at, updated_at FROM notes WHERE id = ?", id).
		Scan(&note.ID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}
	if err != nil {
		log.Println("Error updating note:", err)
		writeError(w, http.StatusInternalServerError, "Server error while updating note")
		return
	}

	writeJSON(w, http.StatusOK, note)
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}

	res, err := h.DB.ExecContext(r.Context(), "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		log.Println("Error deleting note:", err)
		writeError(w, http.StatusInternalServerError, "Server error while deleting note")
		return
	}
	affected, err := res.RowsAffected()
	if err != nil {
		log.Println("Error deleting note:", err)
		writeError(w, http.StatusInternalServerError, "Server error while deleting note")
		return
	}
	if affected == 0 {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Note deleted successfully"})
}
