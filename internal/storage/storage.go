// Package storage persists saved personas and analyses keyed by user. The
// analysis core never depends on it directly; handlers receive a Repository
// and the core stays fully testable against the in-memory implementation.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/Shivakarthikeya23/CultureSense/internal/culture"
)

// ErrNotFound is returned when no record matches the requested id.
var ErrNotFound = errors.New("storage: record not found")

// Persona is a saved cultural persona.
type Persona struct {
	ID        string                `json:"id"`
	UserID    string                `json:"user_id"`
	Record    culture.PersonaRecord `json:"record"`
	CreatedAt time.Time             `json:"created_at"`
}

// Analysis is a saved analysis envelope.
type Analysis struct {
	ID           string                 `json:"id"`
	UserID       string                 `json:"user_id"`
	AnalysisType string                 `json:"analysis_type"`
	Payload      map[string]interface{} `json:"payload"`
	CreatedAt    time.Time              `json:"created_at"`
}

// Repository stores persona and analysis records. Listing methods return
// newest first.
type Repository interface {
	CreatePersona(ctx context.Context, userID string, rec culture.PersonaRecord) (Persona, error)
	PersonasByUser(ctx context.Context, userID string) ([]Persona, error)
	PersonaByID(ctx context.Context, id string) (Persona, error)
	DeletePersona(ctx context.Context, id string) error

	CreateAnalysis(ctx context.Context, userID, analysisType string, payload map[string]interface{}) (Analysis, error)
	AnalysesByUser(ctx context.Context, userID string) ([]Analysis, error)
	AnalysesByType(ctx context.Context, userID, analysisType string) ([]Analysis, error)
	AnalysisByID(ctx context.Context, id string) (Analysis, error)
	DeleteAnalysis(ctx context.Context, id string) error
}
