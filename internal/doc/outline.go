package doc

import "fmt"

// OutlineEntry is one heading in the extracted outline. Page is
// zero-based in output.
type OutlineEntry struct {
	Level string `json:"level"` // "H1".."H<n>"
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Outline is the final extraction result for one document.
type Outline struct {
	Title   string         `json:"title"`
	Entries []OutlineEntry `json:"outline"`
}

// NewOutline returns an outline whose entry slice marshals as [],
// never null.
func NewOutline(title string) *Outline {
	return &Outline{Title: title, Entries: []OutlineEntry{}}
}

// HeadingLevel renders a numeric level as its output form.
func HeadingLevel(n int) string {
	return fmt.Sprintf("H%d", n)
}
