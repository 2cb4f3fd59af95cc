package parser

import (
	"math"
	"strings"
)

// boldMarkers are the weight names that make a font read as bold.
// "demi" covers demibold and its spelled-out variants.
var boldMarkers = []string{"bold", "black", "heavy", "demi"}

// normalizeFamily strips the subset prefix ("ABCDEF+Helvetica") and
// lowercases the remainder so visually identical fonts compare equal.
func normalizeFamily(font string) string {
	if i := strings.LastIndex(font, "+"); i >= 0 {
		font = font[i+1:]
	}
	return strings.ToLower(font)
}

// detectBold reports whether a normalized family name denotes a bold
// weight. PDF font descriptors are not read, so the name is the only
// signal available.
func detectBold(family string) bool {
	for _, m := range boldMarkers {
		if strings.Contains(family, m) {
			return true
		}
	}
	return false
}

// roundSize rounds a point size to the nearest integer, halves away
// from zero.
func roundSize(size float64) int {
	return int(math.Round(size))
}
