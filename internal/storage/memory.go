package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Shivakarthikeya23/CultureSense/internal/culture"
)

// MemoryStore is an in-memory Repository used in tests and when no database
// path is configured.
type MemoryStore struct {
	mu       sync.RWMutex
	personas map[string]Persona
	analyses map[string]Analysis
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		personas: make(map[string]Persona),
		analyses: make(map[string]Analysis),
	}
}

func (m *MemoryStore) CreatePersona(_ context.Context, userID string, rec culture.PersonaRecord) (Persona, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := Persona{
		ID:        uuid.New().String(),
		UserID:    userID,
		Record:    rec,
		CreatedAt: time.Now().UTC(),
	}
	m.personas[p.ID] = p
	return p, nil
}

func (m *MemoryStore) PersonasByUser(_ context.Context, userID string) ([]Persona, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	personas := []Persona{}
	for _, p := range m.personas {
		if p.UserID == userID {
			personas = append(personas, p)
		}
	}
	sort.Slice(personas, func(i, j int) bool {
		return personas[i].CreatedAt.After(personas[j].CreatedAt)
	})
	return personas, nil
}

func (m *MemoryStore) PersonaByID(_ context.Context, id string) (Persona, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.personas[id]
	if !ok {
		return Persona{}, ErrNotFound
	}
	return p, nil
}

func (m *MemoryStore) DeletePersona(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.personas[id]; !ok {
		return ErrNotFound
	}
	delete(m.personas, id)
	return nil
}

func (m *MemoryStore) CreateAnalysis(_ context.Context, userID, analysisType string, payload map[string]interface{}) (Analysis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a := Analysis{
		ID:           uuid.New().String(),
		UserID:       userID,
		AnalysisType: analysisType,
		Payload:      payload,
		CreatedAt:    time.Now().UTC(),
	}
	m.analyses[a.ID] = a
	return a, nil
}

func (m *MemoryStore) AnalysesByUser(_ context.Context, userID string) ([]Analysis, error) {
	return m.filterAnalyses(func(a Analysis) bool { return a.UserID == userID })
}

func (m *MemoryStore) AnalysesByType(_ context.Context, userID, analysisType string) ([]Analysis, error) {
	return m.filterAnalyses(func(a Analysis) bool {
		return a.UserID == userID && a.AnalysisType == analysisType
	})
}

func (m *MemoryStore) AnalysisByID(_ context.Context, id string) (Analysis, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.analyses[id]
	if !ok {
		return Analysis{}, ErrNotFound
	}
	return a, nil
}

func (m *MemoryStore) DeleteAnalysis(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.analyses[id]; !ok {
		return ErrNotFound
	}
	delete(m.analyses, id)
	return nil
}

func (m *MemoryStore) filterAnalyses(keep func(Analysis) bool) ([]Analysis, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	analyses := []Analysis{}
	for _, a := range m.analyses {
		if keep(a) {
			analyses = append(analyses, a)
		}
	}
	sort.Slice(analyses, func(i, j int) bool {
		return analyses[i].CreatedAt.After(analyses[j].CreatedAt)
	})
	return analyses, nil
}
