// Package memstore provides an in-memory Store implementation, used in
// tests and for ephemeral sessions.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/openlaw-hk/counsel/pkg/counsel/internalerr"
	"github.com/openlaw-hk/counsel/pkg/counsel/store"
)

type memStore struct {
	mu            sync.RWMutex
	closed        bool
	cases         map[string]store.Case
	sections      map[string]store.SectionRecord // keyed by chapter|section
	consultations []store.Consultation
	byConsultID   map[string]int
}

// New creates an empty in-memory store.
func New() store.Store {
	return &memStore{
		cases:       make(map[string]store.Case),
		sections:    make(map[string]store.SectionRecord),
		byConsultID: make(map[string]int),
	}
}

func (m *memStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *memStore) checkOpen() error {
	if m.closed {
		return internalerr.ErrStoreClosed
	}
	return nil
}

func sectionKey(chapter, section string) string {
	return chapter + "|" + section
}

func (m *memStore) UpsertCase(ctx context.Context, c store.Case) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkOpen(); err != nil {
		return err
	}
	if c.ID == "" {
		return fmt.Errorf("case id required: %w", internalerr.ErrInvalidInput)
	}
	m.cases[c.ID] = c
	return nil
}

func (m *memStore) GetCase(ctx context.Context, id string) (store.Case, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkOpen(); err != nil {
		return store.Case{}, err
	}
	c, ok := m.cases[id]
	if !ok {
		return store.Case{}, fmt.Errorf("case %s: %w", id, internalerr.ErrNotFound)
	}
	return c, nil
}

func (m *memStore) ListCases(ctx context.Context) ([]store.Case, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkOpen(); err != nil {
		return nil, err
	}
	out := make([]store.Case, 0, len(m.cases))
	for _, c := range m.cases {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) CasesByOrdinance(ctx context.Context, chapter, section string) ([]store.Case, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkOpen(); err != nil {
		return nil, err
	}
	capRef := "Cap. " + chapter
	var out []store.Case
	for _, c := range m.cases {
		for _, ref := range c.OrdinanceRefs {
			if !strings.Contains(ref, capRef) {
				continue
			}
			if section != "" && !strings.Contains(ref, "s. "+section) {
				continue
			}
			out = append(out, c)
			break
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) CasesByOutcome(ctx context.Context, outcome string) ([]store.Case, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkOpen(); err != nil {
		return nil, err
	}
	var out []store.Case
	for _, c := range m.cases {
		if c.Outcome == outcome {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) SearchCases(ctx context.Context, keyword string, limit int) ([]store.Case, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkOpen(); err != nil {
		return nil, err
	}
	kw := strings.ToLower(keyword)
	var out []store.Case
	for _, c := range m.cases {
		if strings.Contains(strings.ToLower(c.Facts), kw) ||
			strings.Contains(strings.ToLower(c.Name), kw) ||
			strings.Contains(strings.ToLower(strings.Join(c.Keywords, " ")), kw) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) UpsertSection(ctx context.Context, s store.SectionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkOpen(); err != nil {
		return err
	}
	if s.Chapter == "" || s.Section == "" {
		return fmt.Errorf("chapter and section required: %w", internalerr.ErrInvalidInput)
	}
	m.sections[sectionKey(s.Chapter, s.Section)] = s
	return nil
}

func (m *memStore) GetSection(ctx context.Context, chapter, section string) (store.SectionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkOpen(); err != nil {
		return store.SectionRecord{}, err
	}
	s, ok := m.sections[sectionKey(chapter, section)]
	if !ok {
		return store.SectionRecord{}, fmt.Errorf("cap %s s. %s: %w", chapter, section, internalerr.ErrNotFound)
	}
	return s, nil
}

func (m *memStore) SearchSections(ctx context.Context, keyword string, limit int) ([]store.SectionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkOpen(); err != nil {
		return nil, err
	}
	kw := strings.ToLower(keyword)
	var out []store.SectionRecord
	for _, s := range m.sections {
		if strings.Contains(strings.ToLower(s.Title), kw) ||
			strings.Contains(strings.ToLower(s.Text), kw) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Chapter != out[j].Chapter {
			return out[i].Chapter < out[j].Chapter
		}
		return out[i].Section < out[j].Section
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) InsertConsultation(ctx context.Context, c store.Consultation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkOpen(); err != nil {
		return err
	}
	if c.ID == "" {
		return fmt.Errorf("consultation id required: %w", internalerr.ErrInvalidInput)
	}
	if _, dup := m.byConsultID[c.ID]; dup {
		return fmt.Errorf("consultation %s: %w", c.ID, internalerr.ErrDuplicate)
	}
	m.byConsultID[c.ID] = len(m.consultations)
	m.consultations = append(m.consultations, c)
	return nil
}

func (m *memStore) GetConsultation(ctx context.Context, id string) (store.Consultation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkOpen(); err != nil {
		return store.Consultation{}, err
	}
	i, ok := m.byConsultID[id]
	if !ok {
		return store.Consultation{}, fmt.Errorf("consultation %s: %w", id, internalerr.ErrNotFound)
	}
	return m.consultations[i], nil
}

func (m *memStore) RecentConsultations(ctx context.Context, limit int) ([]store.Consultation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkOpen(); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > len(m.consultations) {
		limit = len(m.consultations)
	}
	out := make([]store.Consultation, 0, limit)
	for i := len(m.consultations) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.consultations[i])
	}
	return out, nil
}
