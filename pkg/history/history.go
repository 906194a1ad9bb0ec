// Package history keeps a local log of transactions this CLI has
// submitted. Only client-side receipts are stored; poll state always
// comes fresh from the contract.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store manages the SQLite database
type Store struct {
	db *sql.DB
}

// NewStore creates a new storage instance
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS submissions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		command TEXT NOT NULL,
		poll_id INTEGER,
		tx_hash TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_submissions_poll ON submissions(poll_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Submission is one transaction this client sent.
type Submission struct {
	ID        int
	Command   string
	PollID    sql.NullInt64
	TxHash    string
	CreatedAt time.Time
}

// Record saves a submitted transaction. pollID may be negative for
// commands that are not tied to a poll (delegation changes).
func (s *Store) Record(command string, pollID int64, txHash string) error {
	var id interface{}
	if pollID >= 0 {
		id = pollID
	}
	_, err := s.db.Exec(`
		INSERT INTO submissions (command, poll_id, tx_hash)
		VALUES (?, ?, ?)
	`, command, id, txHash)
	return err
}

// List returns the most recent submissions, newest first.
func (s *Store) List(limit int) ([]Submission, error) {
	rows, err := s.db.Query(`
		SELECT id, command, poll_id, tx_hash, created_at
		FROM submissions
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []Submission
	for rows.Next() {
		var sub Submission
		if err := rows.Scan(&sub.ID, &sub.Command, &sub.PollID, &sub.TxHash, &sub.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
