package outline

import (
	"sort"
	"strings"

	"github.com/doclift/doclift/internal/config"
	"github.com/doclift/doclift/internal/doc"
)

// entry carries a numeric level and vertical position through sorting
// and smoothing. Both are gone from the final form.
type entry struct {
	level int
	text  string
	page  int
	y     float64
}

// rankStyles orders styles by visual prominence and assigns levels
// 1..k to the top maxLevels of them. Larger sizes rank higher; at
// equal size bold outranks regular; the family name breaks remaining
// ties so ranking is identical run to run. Styles past the cap get no
// level at all, so their candidates are dropped rather than folded
// into a deeper level.
func rankStyles(styles []doc.StyleKey, maxLevels int) map[doc.StyleKey]int {
	sort.Slice(styles, func(i, j int) bool {
		a, b := styles[i], styles[j]
		if a.Size != b.Size {
			return a.Size > b.Size
		}
		if a.Bold != b.Bold {
			return a.Bold
		}
		return a.Family < b.Family
	})

	levels := make(map[doc.StyleKey]int, len(styles))
	for i, s := range styles {
		if i >= maxLevels {
			break
		}
		levels[s] = i + 1
	}
	return levels
}

// assemble turns leveled candidates into the final outline: strip
// structural prefixes from the text, order entries by reading
// position, smooth level jumps, and render the level tags.
func assemble(cands []candidate, levels map[doc.StyleKey]int, rules config.Rules) []doc.OutlineEntry {
	entries := make([]entry, 0, len(cands))
	for _, c := range cands {
		level, ok := levels[c.style]
		if !ok {
			continue
		}
		text := strings.TrimSpace(rules.StripHeadingPrefix(c.text))
		if text == "" {
			continue
		}
		entries = append(entries, entry{level: level, text: text, page: c.page, y: c.y})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].page != entries[j].page {
			return entries[i].page < entries[j].page
		}
		return entries[i].y < entries[j].y
	})

	// A heading may nest at most one step deeper than its predecessor.
	// Each clamped value feeds the next comparison.
	for i := 1; i < len(entries); i++ {
		if entries[i].level > entries[i-1].level+1 {
			entries[i].level = entries[i-1].level + 1
		}
	}

	out := make([]doc.OutlineEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, doc.OutlineEntry{
			Level: doc.HeadingLevel(e.level),
			Text:  e.text,
			Page:  e.page,
		})
	}
	return out
}
