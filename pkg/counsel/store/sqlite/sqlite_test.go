package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/openlaw-hk/counsel/pkg/counsel/internalerr"
	"github.com/openlaw-hk/counsel/pkg/counsel/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "counsel.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCaseRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	want := store.DefaultCases()[1] // robbery case with all list fields set
	if err := s.UpsertCase(ctx, want); err != nil {
		t.Fatalf("UpsertCase: %v", err)
	}

	got, err := s.GetCase(ctx, want.ID)
	if err != nil {
		t.Fatalf("GetCase: %v", err)
	}
	if got.Name != want.Name || got.Year != want.Year || got.Court != want.Court {
		t.Errorf("Case header = %+v", got)
	}
	if len(got.Charges) != 1 || got.Charges[0] != want.Charges[0] {
		t.Errorf("Charges = %v", got.Charges)
	}
	if len(got.Keywords) != len(want.Keywords) {
		t.Errorf("Keywords = %v", got.Keywords)
	}

	// Update on conflict.
	want.Sentence = "4 years imprisonment"
	if err := s.UpsertCase(ctx, want); err != nil {
		t.Fatalf("UpsertCase update: %v", err)
	}
	got, _ = s.GetCase(ctx, want.ID)
	if got.Sentence != "4 years imprisonment" {
		t.Errorf("Sentence = %q", got.Sentence)
	}

	if _, err := s.GetCase(ctx, "MISSING"); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("Missing case error = %v", err)
	}
}

func TestCaseQueries(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	for _, c := range store.DefaultCases() {
		if err := s.UpsertCase(ctx, c); err != nil {
			t.Fatalf("UpsertCase(%s): %v", c.ID, err)
		}
	}

	byRef, err := s.CasesByOrdinance(ctx, "210", "10")
	if err != nil {
		t.Fatalf("CasesByOrdinance: %v", err)
	}
	if len(byRef) != 1 || byRef[0].ID != "ROBBERY_001" {
		t.Errorf("Cap. 210 s. 10 = %v", byRef)
	}

	guilty, err := s.CasesByOutcome(ctx, "Guilty")
	if err != nil {
		t.Fatalf("CasesByOutcome: %v", err)
	}
	if len(guilty) != len(store.DefaultCases()) {
		t.Errorf("Guilty = %d cases", len(guilty))
	}

	hits, err := s.SearchCases(ctx, "KNIFE", 10)
	if err != nil {
		t.Fatalf("SearchCases: %v", err)
	}
	if len(hits) != 1 || hits[0].ID != "ROBBERY_001" {
		t.Errorf("SearchCases(KNIFE) = %v", hits)
	}
}

func TestSectionRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	sec := store.SectionRecord{
		Chapter: "210", Section: "9", Title: "Penalty for theft",
		Text:     "A person who commits theft shall be liable to imprisonment for 10 years.",
		Penalty:  "10 years imprisonment",
		Category: "Criminal Law",
	}
	if err := s.UpsertSection(ctx, sec); err != nil {
		t.Fatalf("UpsertSection: %v", err)
	}

	got, err := s.GetSection(ctx, "210", "9")
	if err != nil {
		t.Fatalf("GetSection: %v", err)
	}
	if got != sec {
		t.Errorf("Section = %+v, want %+v", got, sec)
	}

	hits, err := s.SearchSections(ctx, "THEFT", 5)
	if err != nil {
		t.Fatalf("SearchSections: %v", err)
	}
	if len(hits) != 1 {
		t.Errorf("SearchSections = %d hits", len(hits))
	}

	if _, err := s.GetSection(ctx, "210", "404"); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("Missing section error = %v", err)
	}
}

func TestConsultationLog(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"A", "B", "C"} {
		c := store.Consultation{
			ID:        id,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Query:     "scenario " + id,
			Facts:     []string{"appropriates_property", "acts_dishonestly"},
			Offences:  []string{"Theft"},
			Report:    "=== LEGAL ANALYSIS ===",
		}
		if err := s.InsertConsultation(ctx, c); err != nil {
			t.Fatalf("InsertConsultation(%s): %v", id, err)
		}
	}

	if err := s.InsertConsultation(ctx, store.Consultation{ID: "A", CreatedAt: base}); !errors.Is(err, internalerr.ErrDuplicate) {
		t.Errorf("Duplicate insert error = %v", err)
	}

	got, err := s.GetConsultation(ctx, "B")
	if err != nil {
		t.Fatalf("GetConsultation: %v", err)
	}
	if got.Query != "scenario B" || len(got.Facts) != 2 {
		t.Errorf("Consultation = %+v", got)
	}
	if !got.CreatedAt.Equal(base.Add(time.Minute)) {
		t.Errorf("CreatedAt = %v", got.CreatedAt)
	}

	recent, err := s.RecentConsultations(ctx, 2)
	if err != nil {
		t.Fatalf("RecentConsultations: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != "C" {
		t.Errorf("RecentConsultations = %v", recent)
	}
}

func TestEmptyListColumns(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	if err := s.UpsertCase(ctx, store.Case{ID: "BARE", Name: "Bare case"}); err != nil {
		t.Fatalf("UpsertCase: %v", err)
	}
	got, err := s.GetCase(ctx, "BARE")
	if err != nil {
		t.Fatalf("GetCase: %v", err)
	}
	if got.Charges != nil || got.Keywords != nil {
		t.Errorf("Empty lists should decode to nil, got %+v", got)
	}
}
