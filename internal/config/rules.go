package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Defaults for heading detection.
const (
	DefaultStripPattern     = `^\s*\d+(\.\d+)*\.?\s+`
	DefaultMinHeadingWords  = 1
	DefaultMaxHeadingWords  = 12
	DefaultMaxHeadingLevels = 4
)

// ErrRulesNotFound is returned when the rules file does not exist.
var ErrRulesNotFound = errors.New("rules file not found")

// Rules controls heading detection. The strip pattern is compiled once
// at load time; the compiled form is shared by every document, so the
// per-line paths never touch the regexp package.
type Rules struct {
	// StripPattern matches structural numbering prefixes ("3. ",
	// "2.1 ") that are removed from heading text.
	StripPattern string `yaml:"strip_pattern"`

	// Word-count bounds for a heading line, inclusive.
	MinHeadingWords int `yaml:"min_heading_words"`
	MaxHeadingWords int `yaml:"max_heading_words"`

	// MaxHeadingLevels caps the number of distinct levels (H1..Hn).
	MaxHeadingLevels int `yaml:"max_heading_levels"`

	strip *regexp.Regexp
}

// DefaultRules returns the built-in rules, already compiled.
func DefaultRules() Rules {
	return Rules{
		StripPattern:     DefaultStripPattern,
		MinHeadingWords:  DefaultMinHeadingWords,
		MaxHeadingWords:  DefaultMaxHeadingWords,
		MaxHeadingLevels: DefaultMaxHeadingLevels,
		strip:            regexp.MustCompile(DefaultStripPattern),
	}
}

// LoadRules reads a YAML rules file. Omitted keys keep their defaults.
// The returned rules are compiled and validated.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Rules{}, ErrRulesNotFound
		}
		return Rules{}, fmt.Errorf("read rules: %w", err)
	}

	rules := DefaultRules()
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("parse rules: %w", err)
	}
	if err := rules.Compile(); err != nil {
		return Rules{}, err
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// Compile builds the strip regexp from StripPattern.
func (r *Rules) Compile() error {
	re, err := regexp.Compile(r.StripPattern)
	if err != nil {
		return fmt.Errorf("compile strip_pattern: %w", err)
	}
	r.strip = re
	return nil
}

// Validate checks bounds. Call after Compile.
func (r Rules) Validate() error {
	if r.MinHeadingWords < 1 {
		return fmt.Errorf("min_heading_words must be >= 1, got %d", r.MinHeadingWords)
	}
	if r.MaxHeadingWords < r.MinHeadingWords {
		return fmt.Errorf("max_heading_words (%d) must be >= min_heading_words (%d)",
			r.MaxHeadingWords, r.MinHeadingWords)
	}
	if r.MaxHeadingLevels < 1 || r.MaxHeadingLevels > 9 {
		return fmt.Errorf("max_heading_levels must be in 1..9, got %d", r.MaxHeadingLevels)
	}
	if r.strip == nil {
		return fmt.Errorf("strip pattern is not compiled")
	}
	return nil
}

// StripHeadingPrefix removes a structural numbering prefix from s.
func (r Rules) StripHeadingPrefix(s string) string {
	if r.strip == nil {
		return s
	}
	return r.strip.ReplaceAllString(s, "")
}
