package legislation

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/openlaw-hk/counsel/pkg/counsel/internalerr"
)

// Load reads the preprocessed legislation database from a JSON file.
func Load(path string) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("legislation database %s: %w", path, internalerr.ErrNotFound)
		}
		return nil, fmt.Errorf("open legislation database: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a legislation database from JSON.
func Decode(r io.Reader) (*Database, error) {
	var db Database
	if err := json.NewDecoder(r).Decode(&db); err != nil {
		return nil, fmt.Errorf("decode legislation database: %w", err)
	}
	if db.Ordinances == nil {
		db.Ordinances = make(map[string]Ordinance)
	}
	// Backfill fields the preprocessor may have omitted.
	for key, ord := range db.Ordinances {
		if ord.Category == "" {
			ord.Category = Categorize(ord.Chapter, ord.Title)
			db.Ordinances[key] = ord
		}
		for num, sec := range ord.Sections {
			if sec.Number == "" {
				sec.Number = num
				ord.Sections[num] = sec
			}
		}
	}
	return &db, nil
}

// Save writes the database back to a JSON file.
func Save(db *Database, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create legislation database: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(db); err != nil {
		f.Close()
		return fmt.Errorf("encode legislation database: %w", err)
	}
	return f.Close()
}
