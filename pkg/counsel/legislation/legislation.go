// Package legislation holds the preprocessed Hong Kong ordinance database:
// loading from the JSON cache, keyword search, categorization, and parsing
// of e-legislation HTML pages into sections.
package legislation

import (
	"sort"
	"strings"
)

// Section is one numbered section of an ordinance.
type Section struct {
	Number  string `json:"number"`
	Title   string `json:"title"`
	Text    string `json:"text"`
	Penalty string `json:"penalty,omitempty"`
}

// Ordinance is one chapter of Hong Kong legislation.
type Ordinance struct {
	Chapter  string             `json:"chapter"`
	Title    string             `json:"title"`
	Category string             `json:"category"`
	Sections map[string]Section `json:"sections"`
}

// Database is the full preprocessed legislation corpus.
type Database struct {
	Ordinances map[string]Ordinance `json:"ordinances"`
	Metadata   Metadata             `json:"metadata"`
}

// Metadata describes the preprocessing run that produced the database.
type Metadata struct {
	GeneratedAt string `json:"generated_at,omitempty"`
	SourceDir   string `json:"source_dir,omitempty"`
	Version     string `json:"version,omitempty"`
}

// capKey builds the map key for a chapter number, e.g. "cap_210".
func capKey(chapter string) string {
	return "cap_" + chapter
}

// Section looks up a specific section, e.g. ("210", "9").
func (db *Database) Section(chapter, section string) (Section, bool) {
	ord, ok := db.Ordinances[capKey(chapter)]
	if !ok {
		return Section{}, false
	}
	s, ok := ord.Sections[section]
	return s, ok
}

// Ordinance looks up a chapter by number.
func (db *Database) Ordinance(chapter string) (Ordinance, bool) {
	ord, ok := db.Ordinances[capKey(chapter)]
	return ord, ok
}

// SearchResult is one keyword hit from Search.
type SearchResult struct {
	Chapter   string
	Ordinance string
	Category  string
	Section   Section
}

// Search returns sections whose title or text contains the keyword,
// case-insensitive. An empty category searches everything. Results are
// ordered by chapter then section number.
func (db *Database) Search(keyword, category string) []SearchResult {
	kw := strings.ToLower(keyword)
	var out []SearchResult
	for _, ord := range db.Ordinances {
		if category != "" && ord.Category != category {
			continue
		}
		for _, sec := range ord.Sections {
			if strings.Contains(strings.ToLower(sec.Title), kw) ||
				strings.Contains(strings.ToLower(sec.Text), kw) {
				out = append(out, SearchResult{
					Chapter:   ord.Chapter,
					Ordinance: ord.Title,
					Category:  ord.Category,
					Section:   sec,
				})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Chapter != out[j].Chapter {
			return out[i].Chapter < out[j].Chapter
		}
		return out[i].Section.Number < out[j].Section.Number
	})
	return out
}

// CategoryStat summarizes one category of the corpus.
type CategoryStat struct {
	Category   string
	Ordinances int
	Sections   int
}

// Stats returns per-category counts, sorted by section count descending.
func (db *Database) Stats() []CategoryStat {
	byCat := make(map[string]*CategoryStat)
	for _, ord := range db.Ordinances {
		st, ok := byCat[ord.Category]
		if !ok {
			st = &CategoryStat{Category: ord.Category}
			byCat[ord.Category] = st
		}
		st.Ordinances++
		st.Sections += len(ord.Sections)
	}
	out := make([]CategoryStat, 0, len(byCat))
	for _, st := range byCat {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sections != out[j].Sections {
			return out[i].Sections > out[j].Sections
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// EmbeddingText builds the search-optimized text for a section: ordinance
// context, number, title, body, and penalty when present.
func EmbeddingText(ord Ordinance, sec Section) string {
	var parts []string
	if ord.Title != "" {
		parts = append(parts, "From "+ord.Title+":")
	}
	if sec.Number != "" {
		parts = append(parts, "Section "+sec.Number)
	}
	if sec.Title != "" {
		parts = append(parts, sec.Title)
	}
	if sec.Text != "" {
		parts = append(parts, sec.Text)
	}
	if sec.Penalty != "" {
		parts = append(parts, "Penalty: "+sec.Penalty)
	}
	return strings.Join(parts, " ")
}

// Ref renders the conventional citation for a section of a chapter.
func Ref(chapter, section string) string {
	return "Cap. " + chapter + ", s. " + section
}
