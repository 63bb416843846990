package savedview

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/zaibi326/crm-success-hub-sub000/internal/models"
)

//go:embed schema.sql
var schemaSQL string

// SQLitePort stores saved views as a JSON array under one key of a SQLite
// key-value table.
type SQLitePort struct {
	db  *sql.DB
	key string
}

// NewSQLitePort opens (and if needed creates) the database at path.
func NewSQLitePort(path, key string) (*SQLitePort, error) {
	if key == "" {
		key = DefaultKey
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Create schema
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLitePort{db: db, key: key}, nil
}

func (p *SQLitePort) Load() ([]models.SavedFilter, error) {
	var raw string
	err := p.db.QueryRow(`SELECT value FROM kv_store WHERE key = ?`, p.key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read saved views: %w", err)
	}
	return decodeFilters([]byte(raw))
}

func (p *SQLitePort) Persist(filters []models.SavedFilter) error {
	raw, err := encodeFilters(filters)
	if err != nil {
		return err
	}

	_, err = p.db.Exec(`
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		p.key, string(raw),
	)
	if err != nil {
		return fmt.Errorf("failed to write saved views: %w", err)
	}
	return nil
}

// Close closes the database connection
func (p *SQLitePort) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}
