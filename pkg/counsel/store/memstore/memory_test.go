package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/openlaw-hk/counsel/pkg/counsel/internalerr"
	"github.com/openlaw-hk/counsel/pkg/counsel/store"
)

func seed(t *testing.T, s store.Store) {
	t.Helper()
	ctx := context.Background()
	for _, c := range store.DefaultCases() {
		if err := s.UpsertCase(ctx, c); err != nil {
			t.Fatalf("UpsertCase(%s): %v", c.ID, err)
		}
	}
}

func TestCaseCRUD(t *testing.T) {
	ctx := context.Background()
	s := New()
	seed(t, s)

	c, err := s.GetCase(ctx, "THEFT_001")
	if err != nil {
		t.Fatalf("GetCase: %v", err)
	}
	if c.Name != "HKSAR v. Chan Tai Man" {
		t.Errorf("Name = %q", c.Name)
	}

	if _, err := s.GetCase(ctx, "NOPE"); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("Missing case error = %v, want ErrNotFound", err)
	}

	all, err := s.ListCases(ctx)
	if err != nil {
		t.Fatalf("ListCases: %v", err)
	}
	if len(all) != len(store.DefaultCases()) {
		t.Errorf("ListCases = %d cases", len(all))
	}

	// Upsert replaces.
	c.Sentence = "9 months imprisonment"
	if err := s.UpsertCase(ctx, c); err != nil {
		t.Fatalf("UpsertCase update: %v", err)
	}
	c2, _ := s.GetCase(ctx, "THEFT_001")
	if c2.Sentence != "9 months imprisonment" {
		t.Errorf("Sentence after upsert = %q", c2.Sentence)
	}
}

func TestCasesByOrdinanceAndOutcome(t *testing.T) {
	ctx := context.Background()
	s := New()
	seed(t, s)

	cases, err := s.CasesByOrdinance(ctx, "210", "")
	if err != nil {
		t.Fatalf("CasesByOrdinance: %v", err)
	}
	if len(cases) != 4 {
		t.Errorf("Cap. 210 cases = %d, want 4", len(cases))
	}

	cases, err = s.CasesByOrdinance(ctx, "210", "10")
	if err != nil {
		t.Fatalf("CasesByOrdinance(section): %v", err)
	}
	if len(cases) != 1 || cases[0].ID != "ROBBERY_001" {
		t.Errorf("Cap. 210 s. 10 cases = %v", cases)
	}

	guilty, err := s.CasesByOutcome(ctx, "Guilty")
	if err != nil {
		t.Fatalf("CasesByOutcome: %v", err)
	}
	if len(guilty) != len(store.DefaultCases()) {
		t.Errorf("Guilty cases = %d", len(guilty))
	}
}

func TestSearchCases(t *testing.T) {
	ctx := context.Background()
	s := New()
	seed(t, s)

	hits, err := s.SearchCases(ctx, "knife", 10)
	if err != nil {
		t.Fatalf("SearchCases: %v", err)
	}
	if len(hits) != 1 || hits[0].ID != "ROBBERY_001" {
		t.Errorf("SearchCases(knife) = %v", hits)
	}

	hits, _ = s.SearchCases(ctx, "HKSAR", 2)
	if len(hits) != 2 {
		t.Errorf("Limit not applied: %d hits", len(hits))
	}
}

func TestSections(t *testing.T) {
	ctx := context.Background()
	s := New()

	sec := store.SectionRecord{
		Chapter: "210", Section: "9", Title: "Penalty for theft",
		Text: "A person who commits theft shall be liable to imprisonment for 10 years.",
		Category: "Criminal Law",
	}
	if err := s.UpsertSection(ctx, sec); err != nil {
		t.Fatalf("UpsertSection: %v", err)
	}

	got, err := s.GetSection(ctx, "210", "9")
	if err != nil {
		t.Fatalf("GetSection: %v", err)
	}
	if got.Title != sec.Title {
		t.Errorf("Title = %q", got.Title)
	}

	if _, err := s.GetSection(ctx, "210", "99"); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("Missing section error = %v", err)
	}

	hits, err := s.SearchSections(ctx, "theft", 5)
	if err != nil {
		t.Fatalf("SearchSections: %v", err)
	}
	if len(hits) != 1 {
		t.Errorf("SearchSections = %d hits", len(hits))
	}

	if err := s.UpsertSection(ctx, store.SectionRecord{}); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("Empty section error = %v", err)
	}
}

func TestConsultationLog(t *testing.T) {
	ctx := context.Background()
	s := New()

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"C1", "C2", "C3"} {
		c := store.Consultation{
			ID:        id,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			Query:     "query " + id,
			Facts:     []string{"appropriates_property"},
			Offences:  []string{"Theft"},
			Report:    "report body",
		}
		if err := s.InsertConsultation(ctx, c); err != nil {
			t.Fatalf("InsertConsultation(%s): %v", id, err)
		}
	}

	if err := s.InsertConsultation(ctx, store.Consultation{ID: "C1"}); !errors.Is(err, internalerr.ErrDuplicate) {
		t.Errorf("Duplicate error = %v", err)
	}

	got, err := s.GetConsultation(ctx, "C2")
	if err != nil {
		t.Fatalf("GetConsultation: %v", err)
	}
	if got.Query != "query C2" {
		t.Errorf("Query = %q", got.Query)
	}

	recent, err := s.RecentConsultations(ctx, 2)
	if err != nil {
		t.Fatalf("RecentConsultations: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != "C3" || recent[1].ID != "C2" {
		t.Errorf("RecentConsultations = %v", recent)
	}
}

func TestClosedStore(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.Close()

	if err := s.UpsertCase(ctx, store.Case{ID: "X"}); !errors.Is(err, internalerr.ErrStoreClosed) {
		t.Errorf("UpsertCase after Close = %v", err)
	}
	if _, err := s.ListCases(ctx); !errors.Is(err, internalerr.ErrStoreClosed) {
		t.Errorf("ListCases after Close = %v", err)
	}
}
