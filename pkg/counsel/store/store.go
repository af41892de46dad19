// Package store defines persistence for the legal corpus: decided cases,
// legislation sections, and the consultation log.
package store

import (
	"context"
	"time"
)

// Store is the interface for persisting and querying corpus data.
type Store interface {
	Close() error

	// Cases
	UpsertCase(ctx context.Context, c Case) error
	GetCase(ctx context.Context, id string) (Case, error)
	ListCases(ctx context.Context) ([]Case, error)
	CasesByOrdinance(ctx context.Context, chapter, section string) ([]Case, error)
	CasesByOutcome(ctx context.Context, outcome string) ([]Case, error)
	SearchCases(ctx context.Context, keyword string, limit int) ([]Case, error)

	// Legislation sections
	UpsertSection(ctx context.Context, s SectionRecord) error
	GetSection(ctx context.Context, chapter, section string) (SectionRecord, error)
	SearchSections(ctx context.Context, keyword string, limit int) ([]SectionRecord, error)

	// Consultations
	InsertConsultation(ctx context.Context, c Consultation) error
	GetConsultation(ctx context.Context, id string) (Consultation, error)
	RecentConsultations(ctx context.Context, limit int) ([]Consultation, error)
}

// Case is a decided case in the precedent corpus.
type Case struct {
	ID            string
	Name          string
	Year          int
	Court         string
	Facts         string
	Charges       []string
	OrdinanceRefs []string
	Outcome       string
	Sentence      string
	Principles    []string
	Keywords      []string
}

// SearchText combines the fields used for similarity indexing.
func (c Case) SearchText() string {
	text := c.Facts
	for _, p := range c.Principles {
		text += " " + p
	}
	for _, k := range c.Keywords {
		text += " " + k
	}
	return text
}

// SectionRecord is a legislation section persisted for retrieval.
type SectionRecord struct {
	Chapter  string
	Section  string
	Title    string
	Text     string
	Penalty  string
	Category string
}

// Consultation is one logged consultation session.
type Consultation struct {
	ID        string
	CreatedAt time.Time
	Query     string
	Facts     []string
	Offences  []string
	Report    string
}
