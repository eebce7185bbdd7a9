package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// Same columns as the production schema, in sqlite dialect so the
// suite runs without a MySQL server.
const testSchema = `
CREATE TABLE todos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	task TEXT NOT NULL,
	completed BOOLEAN NOT NULL DEFAULT 0
);
CREATE TABLE notes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT,
	content TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	pool, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive across
	// queries; every new connection would see a fresh empty database.
	pool.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = pool.Close() })

	_, err = pool.Exec(testSchema)
	require.NoError(t, err)

	return New(pool)
}

// withID injects a chi route context carrying the {id} URL param, so
// handlers can be called without a full router.
func withID(req *http.Request, id string) *http.Request {
	chiCtx := chi.NewRouteContext()
	chiCtx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))
}
