package legislation

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/openlaw-hk/counsel/pkg/counsel/internalerr"
)

// Section headings on e-legislation pages look like "9. Penalty for theft"
// or "118A. Aiding and abetting".
var headingPattern = regexp.MustCompile(`^(\d+[A-Z]{0,2})\.\s+(.+)$`)

// penaltyPattern spots penalty clauses inside section text.
var penaltyPattern = regexp.MustCompile(`(?i)liable[^.]*(?:imprisonment|fine)[^.]*\.`)

// ParseHTML parses an e-legislation ordinance page into sections. Headings
// (h2/h3) matching "N. Title" open a section; following paragraph text
// belongs to it until the next heading.
func ParseHTML(r io.Reader) ([]Section, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse legislation page: %w", err)
	}

	var sections []Section
	var current *Section
	var body strings.Builder

	flush := func() {
		if current == nil {
			return
		}
		current.Text = collapseSpace(body.String())
		if m := penaltyPattern.FindString(current.Text); m != "" {
			current.Penalty = m
		}
		sections = append(sections, *current)
		current = nil
		body.Reset()
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "nav", "header", "footer":
				return
			case "h1", "h2", "h3", "h4":
				heading := collapseSpace(nodeText(n))
				if m := headingPattern.FindStringSubmatch(heading); m != nil {
					flush()
					current = &Section{Number: m[1], Title: m[2]}
				}
				return
			case "p", "li", "td", "blockquote":
				if current != nil {
					body.WriteString(nodeText(n))
					body.WriteString(" ")
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	flush()

	if len(sections) == 0 {
		return nil, fmt.Errorf("no sections found in page: %w", internalerr.ErrInvalidInput)
	}
	return sections, nil
}

// nodeText concatenates all text beneath a node.
func nodeText(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
