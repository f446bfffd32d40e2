package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/lidorubov/neurosales/domain"
)

// SQLite implements Conversations over a SQLite database, for deployments
// that want transcripts to survive restarts.
type SQLite struct {
	db           *sql.DB
	systemPrompt string
}

// NewSQLite opens and migrates the database at dsn.
func NewSQLite(dsn, systemPrompt string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite handles one writer at a time; a single pooled connection also
	// keeps :memory: databases from fragmenting across connections.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &SQLite{db: db, systemPrompt: systemPrompt}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

// migrate runs database migrations. The seq column preserves insertion order
// independently of created_at resolution.
func (s *SQLite) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			message_id TEXT NOT NULL,
			session_id TEXT NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (session_id) REFERENCES sessions(session_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id, seq)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// GetOrCreate returns the session history, creating the session with its
// system message when the id is unknown.
func (s *SQLite) GetOrCreate(ctx context.Context, sessionID string) ([]domain.Message, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM sessions WHERE session_id = ?`, sessionID).Scan(&count)
	if err != nil {
		return nil, err
	}

	if count == 0 {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO sessions (session_id, created_at) VALUES (?, ?)`,
			sessionID, time.Now().UTC()); err != nil {
			return nil, err
		}
		if err := s.Append(ctx, sessionID, domain.RoleSystem, s.systemPrompt); err != nil {
			return nil, err
		}
	}

	return s.history(ctx, sessionID)
}

// Append adds one message to the end of the session history.
func (s *SQLite) Append(ctx context.Context, sessionID, role, content string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (message_id, session_id, role, content, created_at) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), sessionID, role, content, time.Now().UTC())
	return err
}

func (s *SQLite) history(ctx context.Context, sessionID string) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT role, content, created_at FROM messages WHERE session_id = ? ORDER BY seq`,
		sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []domain.Message
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(&msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, err
		}
		history = append(history, msg)
	}
	return history, rows.Err()
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}
