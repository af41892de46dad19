package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/openlaw-hk/counsel/pkg/counsel/internalerr"
	"github.com/openlaw-hk/counsel/pkg/counsel/legislation"
	"github.com/openlaw-hk/counsel/pkg/counsel/store"
)

func init() {
	var (
		chapter string
		title   string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "import-legislation file.html...",
		Short: "Parse e-legislation HTML into the ordinance database",
		Long: "Parses downloaded e-legislation HTML pages for one chapter and merges\n" +
			"the extracted sections into the JSON ordinance database at --out.",
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if chapter == "" {
				exitErr("import", fmt.Errorf("--chapter is required"))
			}

			db, err := legislation.Load(out)
			if err != nil {
				if !errors.Is(err, internalerr.ErrNotFound) {
					exitErr("load database", err)
				}
				db = &legislation.Database{Ordinances: map[string]legislation.Ordinance{}}
			}

			key := "cap_" + chapter
			ord, ok := db.Ordinances[key]
			if !ok {
				ord = legislation.Ordinance{
					Chapter:  chapter,
					Title:    title,
					Category: legislation.Categorize(chapter, title),
					Sections: map[string]legislation.Section{},
				}
			}
			if title != "" {
				ord.Title = title
				ord.Category = legislation.Categorize(chapter, title)
			}

			var added int
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					exitErr("open", err)
				}
				secs, err := legislation.ParseHTML(f)
				f.Close()
				if err != nil {
					exitErr(fmt.Sprintf("parse %s", path), err)
				}
				for _, s := range secs {
					ord.Sections[s.Number] = s
					added++
				}
			}

			db.Ordinances[key] = ord
			db.Metadata.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
			if err := legislation.Save(db, out); err != nil {
				exitErr("save database", err)
			}

			// With a corpus database the sections also go into the store,
			// so keyword search over statutes works without the JSON cache.
			if dbPath != "" {
				st, err := openStore(cmd.Context())
				if err != nil {
					exitErr("open store", err)
				}
				defer st.Close()
				for _, s := range ord.Sections {
					rec := store.SectionRecord{
						Chapter:  ord.Chapter,
						Section:  s.Number,
						Title:    s.Title,
						Text:     s.Text,
						Penalty:  s.Penalty,
						Category: ord.Category,
					}
					if err := st.UpsertSection(cmd.Context(), rec); err != nil {
						exitErr(fmt.Sprintf("store section %s", s.Number), err)
					}
				}
			}

			fmt.Printf("imported %d sections into Cap. %s (%s)\n", added, chapter, out)
		},
	}

	cmd.Flags().StringVarP(&chapter, "chapter", "c", "", "chapter number, e.g. 210")
	cmd.Flags().StringVarP(&title, "title", "t", "", "ordinance title, e.g. \"Theft Ordinance\"")
	cmd.Flags().StringVarP(&out, "out", "o", "legislation.json", "database file to create or update")

	RootCmd.AddCommand(cmd)
}
