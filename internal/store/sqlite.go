package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// migrations is an ordered list of SQL statements applied on startup.
// Each entry is idempotent (IF NOT EXISTS) so re-running is safe.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS assessments (
		id          TEXT PRIMARY KEY,
		kind        TEXT NOT NULL,
		standard    TEXT NOT NULL,
		family      TEXT NOT NULL DEFAULT '',
		primitive   TEXT NOT NULL DEFAULT '',
		subject     TEXT NOT NULL DEFAULT '',
		security    INTEGER NOT NULL DEFAULT 0,
		year        INTEGER NOT NULL,
		compliant   INTEGER NOT NULL,
		recommended TEXT NOT NULL DEFAULT '',
		report      TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assessments_created_at
		ON assessments (created_at DESC)`,
}

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) a SQLite database at path and runs
// migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("%s?_journal=WAL&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite handles one writer at a time.

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close() //nolint:errcheck
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	for _, stmt := range migrations {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migration: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

// SaveAssessment inserts a record, assigning a fresh UUID and
// timestamp when the caller left them empty.
func (s *SQLiteStore) SaveAssessment(ctx context.Context, rec *AssessmentRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	compliant := 0
	if rec.Compliant {
		compliant = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO assessments (id, kind, standard, family, primitive, subject, security, year, compliant, recommended, report, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Kind, rec.Standard, rec.Family, rec.Primitive, rec.Subject,
		rec.Security, rec.Year, compliant, rec.Recommended, rec.Report,
		rec.CreatedAt.UTC().Format(time.RFC3339))
	return err
}

func (s *SQLiteStore) GetAssessment(ctx context.Context, id string) (*AssessmentRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, kind, standard, family, primitive, subject, security, year, compliant, recommended, report, created_at
		 FROM assessments WHERE id = ?`, id)
	rec, err := scanAssessment(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rec, err
}

func (s *SQLiteStore) ListAssessments(ctx context.Context, limit int) ([]*AssessmentRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, standard, family, primitive, subject, security, year, compliant, recommended, report, created_at
		 FROM assessments ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var recs []*AssessmentRecord
	for rows.Next() {
		rec, err := scanAssessment(rows.Scan)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func scanAssessment(scan func(...any) error) (*AssessmentRecord, error) {
	var rec AssessmentRecord
	var compliant int
	var created string
	if err := scan(&rec.ID, &rec.Kind, &rec.Standard, &rec.Family, &rec.Primitive, &rec.Subject,
		&rec.Security, &rec.Year, &compliant, &rec.Recommended, &rec.Report, &created); err != nil {
		return nil, err
	}
	rec.Compliant = compliant != 0
	rec.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &rec, nil
}
