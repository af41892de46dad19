// Package sqlite provides the SQLite-backed Store implementation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/openlaw-hk/counsel/pkg/counsel/internalerr"
	"github.com/openlaw-hk/counsel/pkg/counsel/store"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database at path with WAL mode enabled and the
// schema initialized.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS cases (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	year INTEGER,
	court TEXT,
	facts TEXT,
	charges TEXT,
	ordinance_refs TEXT,
	outcome TEXT,
	sentence TEXT,
	principles TEXT,
	keywords TEXT
);

CREATE TABLE IF NOT EXISTS sections (
	chapter TEXT NOT NULL,
	section TEXT NOT NULL,
	title TEXT,
	body TEXT,
	penalty TEXT,
	category TEXT,
	PRIMARY KEY(chapter, section)
);

CREATE TABLE IF NOT EXISTS consultations (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	query TEXT,
	facts TEXT,
	offences TEXT,
	report TEXT
);

CREATE INDEX IF NOT EXISTS idx_cases_outcome ON cases(outcome);
CREATE INDEX IF NOT EXISTS idx_sections_category ON sections(category);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// encodeList JSON-encodes a string slice for a TEXT column.
func encodeList(xs []string) (string, error) {
	if xs == nil {
		xs = []string{}
	}
	b, err := json.Marshal(xs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeList(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var xs []string
	if err := json.Unmarshal([]byte(raw), &xs); err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return nil, nil
	}
	return xs, nil
}

func (s *sqliteStore) UpsertCase(ctx context.Context, c store.Case) error {
	if c.ID == "" {
		return fmt.Errorf("case id required: %w", internalerr.ErrInvalidInput)
	}
	charges, err := encodeList(c.Charges)
	if err != nil {
		return err
	}
	refs, err := encodeList(c.OrdinanceRefs)
	if err != nil {
		return err
	}
	principles, err := encodeList(c.Principles)
	if err != nil {
		return err
	}
	keywords, err := encodeList(c.Keywords)
	if err != nil {
		return err
	}

	const stmt = `
INSERT INTO cases (id, name, year, court, facts, charges, ordinance_refs, outcome, sentence, principles, keywords)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	name=excluded.name,
	year=excluded.year,
	court=excluded.court,
	facts=excluded.facts,
	charges=excluded.charges,
	ordinance_refs=excluded.ordinance_refs,
	outcome=excluded.outcome,
	sentence=excluded.sentence,
	principles=excluded.principles,
	keywords=excluded.keywords;
`
	_, err = s.db.ExecContext(ctx, stmt,
		c.ID, c.Name, c.Year, c.Court, c.Facts, charges, refs, c.Outcome, c.Sentence, principles, keywords)
	return err
}

const caseColumns = `id, name, year, court, facts, charges, ordinance_refs, outcome, sentence, principles, keywords`

func scanCase(row interface{ Scan(...any) error }) (store.Case, error) {
	var c store.Case
	var charges, refs, principles, keywords string
	if err := row.Scan(&c.ID, &c.Name, &c.Year, &c.Court, &c.Facts,
		&charges, &refs, &c.Outcome, &c.Sentence, &principles, &keywords); err != nil {
		return store.Case{}, err
	}
	var err error
	if c.Charges, err = decodeList(charges); err != nil {
		return store.Case{}, err
	}
	if c.OrdinanceRefs, err = decodeList(refs); err != nil {
		return store.Case{}, err
	}
	if c.Principles, err = decodeList(principles); err != nil {
		return store.Case{}, err
	}
	if c.Keywords, err = decodeList(keywords); err != nil {
		return store.Case{}, err
	}
	return c, nil
}

func (s *sqliteStore) GetCase(ctx context.Context, id string) (store.Case, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+caseColumns+` FROM cases WHERE id=?`, id)
	c, err := scanCase(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Case{}, fmt.Errorf("case %s: %w", id, internalerr.ErrNotFound)
	}
	return c, err
}

func (s *sqliteStore) queryCases(ctx context.Context, query string, args ...any) ([]store.Case, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *sqliteStore) ListCases(ctx context.Context) ([]store.Case, error) {
	return s.queryCases(ctx, `SELECT `+caseColumns+` FROM cases ORDER BY id`)
}

func (s *sqliteStore) CasesByOrdinance(ctx context.Context, chapter, section string) ([]store.Case, error) {
	pattern := `%Cap. ` + chapter + `%`
	if section != "" {
		pattern = `%Cap. ` + chapter + `%s. ` + section + `%`
	}
	return s.queryCases(ctx,
		`SELECT `+caseColumns+` FROM cases WHERE ordinance_refs LIKE ? ORDER BY id`, pattern)
}

func (s *sqliteStore) CasesByOutcome(ctx context.Context, outcome string) ([]store.Case, error) {
	return s.queryCases(ctx,
		`SELECT `+caseColumns+` FROM cases WHERE outcome=? ORDER BY id`, outcome)
}

func (s *sqliteStore) SearchCases(ctx context.Context, keyword string, limit int) ([]store.Case, error) {
	if limit <= 0 {
		limit = 20
	}
	pattern := "%" + keyword + "%"
	return s.queryCases(ctx,
		`SELECT `+caseColumns+` FROM cases
		 WHERE facts LIKE ? COLLATE NOCASE OR name LIKE ? COLLATE NOCASE OR keywords LIKE ? COLLATE NOCASE
		 ORDER BY id LIMIT ?`,
		pattern, pattern, pattern, limit)
}

func (s *sqliteStore) UpsertSection(ctx context.Context, sec store.SectionRecord) error {
	if sec.Chapter == "" || sec.Section == "" {
		return fmt.Errorf("chapter and section required: %w", internalerr.ErrInvalidInput)
	}
	const stmt = `
INSERT INTO sections (chapter, section, title, body, penalty, category)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(chapter, section) DO UPDATE SET
	title=excluded.title,
	body=excluded.body,
	penalty=excluded.penalty,
	category=excluded.category;
`
	_, err := s.db.ExecContext(ctx, stmt,
		sec.Chapter, sec.Section, sec.Title, sec.Text, sec.Penalty, sec.Category)
	return err
}

func (s *sqliteStore) GetSection(ctx context.Context, chapter, section string) (store.SectionRecord, error) {
	var sec store.SectionRecord
	err := s.db.QueryRowContext(ctx,
		`SELECT chapter, section, title, body, penalty, category FROM sections WHERE chapter=? AND section=?`,
		chapter, section).
		Scan(&sec.Chapter, &sec.Section, &sec.Title, &sec.Text, &sec.Penalty, &sec.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return store.SectionRecord{}, fmt.Errorf("cap %s s. %s: %w", chapter, section, internalerr.ErrNotFound)
	}
	return sec, err
}

func (s *sqliteStore) SearchSections(ctx context.Context, keyword string, limit int) ([]store.SectionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	pattern := "%" + keyword + "%"
	rows, err := s.db.QueryContext(ctx,
		`SELECT chapter, section, title, body, penalty, category FROM sections
		 WHERE title LIKE ? COLLATE NOCASE OR body LIKE ? COLLATE NOCASE
		 ORDER BY chapter, section LIMIT ?`,
		pattern, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.SectionRecord
	for rows.Next() {
		var sec store.SectionRecord
		if err := rows.Scan(&sec.Chapter, &sec.Section, &sec.Title, &sec.Text, &sec.Penalty, &sec.Category); err != nil {
			return nil, err
		}
		out = append(out, sec)
	}
	return out, rows.Err()
}

func (s *sqliteStore) InsertConsultation(ctx context.Context, c store.Consultation) error {
	if c.ID == "" {
		return fmt.Errorf("consultation id required: %w", internalerr.ErrInvalidInput)
	}
	facts, err := encodeList(c.Facts)
	if err != nil {
		return err
	}
	offences, err := encodeList(c.Offences)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO consultations (id, created_at, query, facts, offences, report) VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.CreatedAt.UTC().Format(time.RFC3339), c.Query, facts, offences, c.Report)
	if err != nil && isUniqueViolation(err) {
		return fmt.Errorf("consultation %s: %w", c.ID, internalerr.ErrDuplicate)
	}
	return err
}

func (s *sqliteStore) GetConsultation(ctx context.Context, id string) (store.Consultation, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, query, facts, offences, report FROM consultations WHERE id=?`, id)
	c, err := scanConsultation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Consultation{}, fmt.Errorf("consultation %s: %w", id, internalerr.ErrNotFound)
	}
	return c, err
}

func (s *sqliteStore) RecentConsultations(ctx context.Context, limit int) ([]store.Consultation, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, query, facts, offences, report FROM consultations
		 ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Consultation
	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanConsultation(row interface{ Scan(...any) error }) (store.Consultation, error) {
	var c store.Consultation
	var created, facts, offences string
	if err := row.Scan(&c.ID, &created, &c.Query, &facts, &offences, &c.Report); err != nil {
		return store.Consultation{}, err
	}
	t, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return store.Consultation{}, fmt.Errorf("parse created_at: %w", err)
	}
	c.CreatedAt = t
	if c.Facts, err = decodeList(facts); err != nil {
		return store.Consultation{}, err
	}
	if c.Offences, err = decodeList(offences); err != nil {
		return store.Consultation{}, err
	}
	return c, nil
}

func isUniqueViolation(err error) bool {
	// modernc.org/sqlite surfaces constraint failures in the error text.
	return err != nil && strings.Contains(err.Error(), "constraint failed")
}
