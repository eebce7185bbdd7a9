package db

import (
	"database/sql"
	"fmt"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"

	"todo-notes/config"
)

// Open creates the shared connection pool and bootstraps the schema.
// It is called once at startup; the pool lives for the whole process.
func Open(cfg config.Config) (*sql.DB, error) {
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.DBHost, strconv.Itoa(cfg.DBPort))
	mc.User = cfg.DBUser
	mc.Passwd = cfg.DBPassword
	mc.DBName = cfg.DBName
	mc.ParseTime = true
	if cfg.DBSkipVerify {
		// Accept self-signed certificates, common with managed
		// databases in development.
		mc.TLSConfig = "skip-verify"
	}

	pool, err := sql.Open("mysql", mc.FormatDSN())
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := ensureTables(pool); err != nil {
		_ = pool.Close()
		return nil, err
	}

	return pool, nil
}

func ensureTables(pool *sql.DB) error {
	todosTable := `
	CREATE TABLE IF NOT EXISTS todos (
		id INT AUTO_INCREMENT PRIMARY KEY,
		task TEXT NOT NULL,
		completed BOOLEAN NOT NULL DEFAULT FALSE
	);`

	notesTable := `
	CREATE TABLE IF NOT EXISTS notes (
		id INT AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255) NULL,
		content TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := pool.Exec(todosTable); err != nil {
		return fmt.Errorf("create todos table: %w", err)
	}

	if _, err := pool.Exec(notesTable); err != nil {
		return fmt.Errorf("create notes table: %w", err)
	}

	return nil
}
