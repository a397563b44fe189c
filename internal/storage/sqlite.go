package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"caseprep/internal/ai"
	"caseprep/internal/casefile"
)

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates or opens a SQLite database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS cases (
			id TEXT PRIMARY KEY,
			case_type TEXT NOT NULL,
			label TEXT,
			created_at TIMESTAMP,
			updated_at TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS form_values (
			case_id TEXT NOT NULL,
			question_id TEXT NOT NULL,
			value TEXT,
			PRIMARY KEY (case_id, question_id)
		);`,
		`CREATE TABLE IF NOT EXISTS documents (
			case_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			description TEXT,
			tab TEXT,
			PRIMARY KEY (case_id, position)
		);`,
		`CREATE TABLE IF NOT EXISTS drafts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			case_id TEXT NOT NULL,
			content TEXT,
			has_minimum INTEGER,
			missing JSON,
			created_at TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_drafts_case ON drafts(case_id);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) CreateCase(ctx context.Context, caseTypeID, label string) (*Case, error) {
	now := time.Now().UTC()
	c := &Case{
		ID:         uuid.NewString(),
		CaseTypeID: caseTypeID,
		Label:      label,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cases (id, case_type, label, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, c.ID, c.CaseTypeID, c.Label, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *SQLiteStore) GetCase(ctx context.Context, id string) (*Case, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, case_type, label, created_at, updated_at FROM cases WHERE id = ?
	`, id)

	var c Case
	if err := row.Scan(&c.ID, &c.CaseTypeID, &c.Label, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("case not found: %s", id)
		}
		return nil, err
	}
	return &c, nil
}

func (s *SQLiteStore) ListCases(ctx context.Context) ([]*Case, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, case_type, label, created_at, updated_at FROM cases
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cases []*Case
	for rows.Next() {
		var c Case
		if err := rows.Scan(&c.ID, &c.CaseTypeID, &c.Label, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cases = append(cases, &c)
	}
	return cases, rows.Err()
}

// SaveFormData replaces the snapshot: values removed from the form are
// removed from the database too.
func (s *SQLiteStore) SaveFormData(ctx context.Context, caseID string, form casefile.FormData) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM form_values WHERE case_id = ?`, caseID); err != nil {
		return err
	}
	for questionID, value := range form {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO form_values (case_id, question_id, value) VALUES (?, ?, ?)
		`, caseID, questionID, value); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE cases SET updated_at = ? WHERE id = ?
	`, time.Now().UTC(), caseID); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) LoadFormData(ctx context.Context, caseID string) (casefile.FormData, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT question_id, value FROM form_values WHERE case_id = ?
	`, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	form := casefile.FormData{}
	for rows.Next() {
		var questionID, value string
		if err := rows.Scan(&questionID, &value); err != nil {
			return nil, err
		}
		form[questionID] = value
	}
	return form, rows.Err()
}

func (s *SQLiteStore) SaveDocuments(ctx context.Context, caseID string, docs []ai.ClassifiedDocument) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE case_id = ?`, caseID); err != nil {
		return err
	}
	for i, doc := range docs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO documents (case_id, position, description, tab) VALUES (?, ?, ?, ?)
		`, caseID, i, doc.Description, doc.TabLabel); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) LoadDocuments(ctx context.Context, caseID string) ([]ai.ClassifiedDocument, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT description, tab FROM documents WHERE case_id = ? ORDER BY position
	`, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []ai.ClassifiedDocument
	for rows.Next() {
		var doc ai.ClassifiedDocument
		if err := rows.Scan(&doc.Description, &doc.TabLabel); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *SQLiteStore) SaveDraft(ctx context.Context, caseID, content string, hasMinimum bool, missing []string) error {
	missingJSON, err := json.Marshal(missing)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO drafts (case_id, content, has_minimum, missing, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, caseID, content, hasMinimum, missingJSON, time.Now().UTC())
	return err
}

func (s *SQLiteStore) LoadLatestDraft(ctx context.Context, caseID string) (string, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT content FROM drafts WHERE case_id = ? ORDER BY id DESC LIMIT 1
	`, caseID)

	var content string
	if err := row.Scan(&content); err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("no draft found for case %s", caseID)
		}
		return "", err
	}
	return content, nil
}
