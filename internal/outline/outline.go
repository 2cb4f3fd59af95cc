// Package outline infers a heading outline from a parsed document.
// Documents that carry an embedded table of contents are mapped
// directly; everything else goes through layout analysis, which
// reconstructs the heading hierarchy from font sizes and positions.
package outline

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/doclift/doclift/internal/config"
	"github.com/doclift/doclift/internal/doc"
)

// Extract produces the outline for a parsed document. An empty result
// is a legitimate outcome, not an error: many documents simply have no
// detectable headings.
func Extract(d *doc.Document, rules config.Rules) *doc.Outline {
	out := doc.NewOutline(ResolveTitle(d))
	if len(d.TOC) > 0 {
		out.Entries = FromTOC(d.TOC, rules.MaxHeadingLevels)
		return out
	}
	out.Entries = FromLayout(d, rules)
	return out
}

// FromTOC maps embedded TOC entries one-to-one onto outline entries.
// Levels deeper than maxLevels are clamped to it, text is normalized,
// and pages convert from one-based to zero-based. Entries whose text
// normalizes to nothing are kept, so the result always has as many
// entries as the TOC.
func FromTOC(toc []doc.TOCEntry, maxLevels int) []doc.OutlineEntry {
	entries := make([]doc.OutlineEntry, 0, len(toc))
	for _, e := range toc {
		level := e.Level
		if level > maxLevels {
			level = maxLevels
		}
		entries = append(entries, doc.OutlineEntry{
			Level: doc.HeadingLevel(level),
			Text:  doc.CleanText(e.Title),
			Page:  e.Page - 1,
		})
	}
	return entries
}

// ResolveTitle returns the document title. A metadata title wins when
// it normalizes to something non-empty; otherwise the filename stem is
// made readable, with underscores as spaces and words title-cased.
func ResolveTitle(d *doc.Document) string {
	if t := doc.CleanText(d.Meta.Title); t != "" {
		return t
	}
	base := filepath.Base(d.Path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	caser := cases.Title(language.English)
	return doc.CleanText(caser.String(strings.ReplaceAll(stem, "_", " ")))
}
