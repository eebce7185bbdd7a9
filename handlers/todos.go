package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"todo-notes/models"
)

func (h *Handler) ListTodos(w http.ResponseWriter, r *http.Request) {
	rows, err := h.DB.QueryContext(r.Context(), "SELECT id, task, completed FROM todos ORDER BY id ASC")
	if err != nil {
		log.Println("Error fetching todos:", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		var todo models.Todo
		if err := rows.Scan(&todo.ID, &todo.Task, &todo.Completed); err != nil {
			log.Println("Error scanning todo:", err)
			writeError(w, http.StatusInternalServerError, "Server error")
			return
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		log.Println("Error fetching todos:", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, todos)
}

func (h *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Task string `json:"task"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Task == "" {
		writeError(w, http.StatusBadRequest, "Task is required")
		return
	}

	res, err := h.DB.ExecContext(r.Context(), "INSERT INTO todos (task) VALUES (?)", req.Task)
	if err != nil {
		log.Println("Error creating todo:", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		log.Println("Error creating todo:", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	var todo models.Todo
	err = h.DB.QueryRowContext(r.Context(), "SELECT id, task, completed FROM todos WHERE id = ?", lastID).
		Scan(&todo.ID, &todo.Task, &todo.Completed)
	if err != nil {
		log.Println("Error creating todo:", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusCreated, todo)
}

// fieldUpdate is one entry of the partial-update descriptor list: a
// column name and the value extracted from the request body.
type fieldUpdate struct {
	column string
	value  any
}

func (h *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Todo not found")
		return
	}

	var req struct {
		Task      *string `json:"task"`
		Completed *bool   `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Only fields present in the body are written, in a fixed order:
	// task first, then completed.
	updates := make([]fieldUpdate, 0, 2)
	if req.Task != nil {
		updates = append(updates, fieldUpdate{column: "task", value: *req.Task})
	}
	if req.Completed != nil {
		updates = append(updates, fieldUpdate{column: "completed", value: *req.Completed})
	}
	if len(updates) == 0 {
		writeError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	clauses := make([]string, 0, len(updates))
	args := make([]any, 0, len(updates)+1)
	for _, u := range updates {
		clauses = append(clauses, u.column+" = ?")
		args = append(args, u.value)
	}
	args = append(args, id)

	query := "UPDATE todos SET " + strings.Join(clauses, ", ") + " WHERE id = ?"
	if _, err := h.DB.ExecContext(r.Context(), query, args...); err != nil {
		log.Println("Error updating todo:", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	// RowsAffected is 0 for a no-op update, so existence is checked by
	// reading the row back.
	var todo models.Todo
	err = h.DB.QueryRowContext(r.Context(), "SELECT id, task, completed FROM todos WHERE id = ?", id).
		Scan(&todo.ID, &todo.Task, &todo.Completed)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "Todo not found")
		return
	}
	if err != nil {
		log.Println("Error updating todo:", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, todo)
}

func (h *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Todo not found")
		return
	}

	res, err := h.DB.ExecContext(r.Context(), "DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		log.Println("Error deleting todo:", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	affected, err := res.RowsAffected()
	if err != nil {
		log.Println("Error deleting todo:", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if affected == 0 {
		writeError(w, http.StatusNotFound, "Todo not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Todo deleted successfully"})
}
