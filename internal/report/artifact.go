package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/doclift/doclift/internal/doc"
)

// Format selects which artifact files Save produces.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatBoth     Format = "both"
)

// ParseFormat validates a format name from a flag or request field.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatMarkdown:
		return FormatMarkdown, nil
	case FormatBoth:
		return FormatBoth, nil
	}
	return "", fmt.Errorf("unknown format %q (want json, markdown or both)", s)
}

// ArtifactPath names the output file for a document: the input stem
// plus the format extension, inside dir.
func ArtifactPath(dir, docPath, ext string) string {
	base := filepath.Base(docPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+ext)
}

// Save writes the outline artifacts for one document into dir and
// returns the paths written.
func Save(dir, docPath string, o *doc.Outline, format Format) ([]string, error) {
	var paths []string

	if format == FormatJSON || format == FormatBoth {
		path := ArtifactPath(dir, docPath, ".json")
		if err := saveWith(path, o, func(f *os.File) Writer { return NewJSONWriter(f) }); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	if format == FormatMarkdown || format == FormatBoth {
		path := ArtifactPath(dir, docPath, ".md")
		if err := saveWith(path, o, func(f *os.File) Writer { return NewMarkdownWriter(f) }); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func saveWith(path string, o *doc.Outline, writer func(*os.File) Writer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := writer(f).Write(o); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
