package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/Shivakarthikeya23/CultureSense/internal/culture"
)

const schema = `
CREATE TABLE IF NOT EXISTS cultural_personas (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	record     TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_personas_user ON cultural_personas(user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS cultural_analyses (
	id            TEXT PRIMARY KEY,
	user_id       TEXT NOT NULL,
	analysis_type TEXT NOT NULL,
	payload       TEXT NOT NULL,
	created_at    TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analyses_user ON cultural_analyses(user_id, created_at DESC);
`

// SQLiteStore is the file-backed Repository.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and applies the
// schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreatePersona(ctx context.Context, userID string, rec culture.PersonaRecord) (Persona, error) {
	blob, err := json.Marshal(rec)
	if err != nil {
		return Persona{}, fmt.Errorf("marshal persona record: %w", err)
	}

	p := Persona{
		ID:        uuid.New().String(),
		UserID:    userID,
		Record:    rec,
		CreatedAt: time.Now().UTC(),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO cultural_personas (id, user_id, record, created_at) VALUES (?, ?, ?, ?)`,
		p.ID, p.UserID, string(blob), p.CreatedAt)
	if err != nil {
		return Persona{}, fmt.Errorf("insert persona: %w", err)
	}
	return p, nil
}

func (s *SQLiteStore) PersonasByUser(ctx context.Context, userID string) ([]Persona, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, record, created_at FROM cultural_personas WHERE user_id = ? ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("query personas: %w", err)
	}
	defer rows.Close()

	personas := []Persona{}
	for rows.Next() {
		p, err := scanPersona(rows)
		if err != nil {
			return nil, err
		}
		personas = append(personas, p)
	}
	return personas, rows.Err()
}

func (s *SQLiteStore) PersonaByID(ctx context.Context, id string) (Persona, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, record, created_at FROM cultural_personas WHERE id = ?`, id)
	p, err := scanPersona(row)
	if err == sql.ErrNoRows {
		return Persona{}, ErrNotFound
	}
	return p, err
}

func (s *SQLiteStore) DeletePersona(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM cultural_personas WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete persona: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) CreateAnalysis(ctx context.Context, userID, analysisType string, payload map[string]interface{}) (Analysis, error) {
	blob, err := json.Marshal(payload)
	if err != nil {
		return Analysis{}, fmt.Errorf("marshal analysis payload: %w", err)
	}

	a := Analysis{
		ID:           uuid.New().String(),
		UserID:       userID,
		AnalysisType: analysisType,
		Payload:      payload,
		CreatedAt:    time.Now().UTC(),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO cultural_analyses (id, user_id, analysis_type, payload, created_at) VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.UserID, a.AnalysisType, string(blob), a.CreatedAt)
	if err != nil {
		return Analysis{}, fmt.Errorf("insert analysis: %w", err)
	}
	return a, nil
}

func (s *SQLiteStore) AnalysesByUser(ctx context.Context, userID string) ([]Analysis, error) {
	return s.queryAnalyses(ctx,
		`SELECT id, user_id, analysis_type, payload, created_at FROM cultural_analyses WHERE user_id = ? ORDER BY created_at DESC`,
		userID)
}

func (s *SQLiteStore) AnalysesByType(ctx context.Context, userID, analysisType string) ([]Analysis, error) {
	return s.queryAnalyses(ctx,
		`SELECT id, user_id, analysis_type, payload, created_at FROM cultural_analyses WHERE user_id = ? AND analysis_type = ? ORDER BY created_at DESC`,
		userID, analysisType)
}

func (s *SQLiteStore) AnalysisByID(ctx context.Context, id string) (Analysis, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, analysis_type, payload, created_at FROM cultural_analyses WHERE id = ?`, id)
	a, err := scanAnalysis(row)
	if err == sql.ErrNoRows {
		return Analysis{}, ErrNotFound
	}
	return a, err
}

func (s *SQLiteStore) DeleteAnalysis(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM cultural_analyses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete analysis: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) queryAnalyses(ctx context.Context, query string, args ...interface{}) ([]Analysis, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}
	defer rows.Close()

	analyses := []Analysis{}
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}
	return analyses, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPersona(row scanner) (Persona, error) {
	var p Persona
	var blob string
	if err := row.Scan(&p.ID, &p.UserID, &blob, &p.CreatedAt); err != nil {
		return Persona{}, err
	}
	if err := json.Unmarshal([]byte(blob), &p.Record); err != nil {
		return Persona{}, fmt.Errorf("unmarshal persona record: %w", err)
	}
	return p, nil
}

func scanAnalysis(row scanner) (Analysis, error) {
	var a Analysis
	var blob string
	if err := row.Scan(&a.ID, &a.UserID, &a.AnalysisType, &blob, &a.CreatedAt); err != nil {
		return Analysis{}, err
	}
	if err := json.Unmarshal([]byte(blob), &a.Payload); err != nil {
		return Analysis{}, fmt.Errorf("unmarshal analysis payload: %w", err)
	}
	return a, nil
}
