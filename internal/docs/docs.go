package docs

import (
	"fmt"
	"strings"
)

// Chapter holds one section of the "How to solve" reference.
type Chapter struct {
	Name    string // short slug used as CLI argument
	Title   string // human-readable title
	Summary string // one-line description for chapter listing
	Content string // full text (plain text, no ANSI)
}

// All returns every chapter in reading order.
func All() []Chapter {
	return chapters
}

// Get looks up a chapter by name, ignoring case. Returns an error with a hint
// if not found.
func Get(name string) (Chapter, error) {
	for _, c := range chapters {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return Chapter{}, fmt.Errorf("unknown chapter %q — run 'dpsheet guide' to list chapters", name)
}

// Full returns the whole reference as one document.
func Full() string {
	var b strings.Builder
	for i, c := range chapters {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(c.Content)
	}
	return b.String()
}
