package report

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/doclift/doclift/internal/doc"
)

func sampleOutline() *doc.Outline {
	o := doc.NewOutline("Annual Report")
	o.Entries = append(o.Entries,
		doc.OutlineEntry{Level: "H1", Text: "Introduction", Page: 0},
		doc.OutlineEntry{Level: "H2", Text: "Scope", Page: 1},
	)
	return o
}

func TestJSONWriter_ArtifactFormat(t *testing.T) {
	var buf bytes.Buffer
	n, err := NewJSONWriter(&buf).Write(sampleOutline())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{
    "title": "Annual Report",
    "outline": [
        {
            "level": "H1",
            "text": "Introduction",
            "page": 0
        },
        {
            "level": "H2",
            "text": "Scope",
            "page": 1
        }
    ]
}
`
	if got := buf.String(); got != want {
		t.Errorf("artifact mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
	if n != buf.Len() {
		t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
	}
}

func TestJSONWriter_EmptyOutlineIsArray(t *testing.T) {
	var buf bytes.Buffer
	if _, err := NewJSONWriter(&buf).Write(doc.NewOutline("Blank")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{
    "title": "Blank",
    "outline": []
}
`
	if got := buf.String(); got != want {
		t.Errorf("expected empty array form:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestJSONWriter_Compact(t *testing.T) {
	var buf bytes.Buffer
	if _, err := NewJSONWriter(&buf, WithCompact()).Write(sampleOutline()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"title":"Annual Report","outline":[{"level":"H1","text":"Introduction","page":0},{"level":"H2","text":"Scope","page":1}]}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("compact mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestJSONWriter_NoHTMLEscaping(t *testing.T) {
	o := doc.NewOutline("Q&A <Session>")
	var buf bytes.Buffer
	if _, err := NewJSONWriter(&buf).Write(o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Q&A <Session>") {
		t.Errorf("expected raw title in output, got %q", buf.String())
	}
}

func TestMarkdownWriter_RendersTable(t *testing.T) {
	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(sampleOutline()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "# Annual Report") {
		t.Error("expected title heading")
	}
	if !strings.Contains(out, "2 headings, deepest level H2.") {
		t.Errorf("expected summary line, got:\n%s", out)
	}
	if !strings.Contains(out, "Introduction") || !strings.Contains(out, "Scope") {
		t.Error("expected heading rows")
	}
}

func TestMarkdownWriter_EmptyOutline(t *testing.T) {
	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(doc.NewOutline("Blank")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No headings were detected.") {
		t.Errorf("expected empty notice, got:\n%s", buf.String())
	}
}

func TestMarkdownWriter_UntitledFallback(t *testing.T) {
	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(doc.NewOutline("")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "# Untitled Document") {
		t.Errorf("expected fallback title, got:\n%s", buf.String())
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "markdown", "both", "JSON"} {
		if _, err := ParseFormat(name); err != nil {
			t.Errorf("expected %q to parse, got %v", name, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestArtifactPath(t *testing.T) {
	got := ArtifactPath("/out", "/in/annual_report.pdf", ".json")
	want := "/out/annual_report.json"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSave_WritesBothFormats(t *testing.T) {
	dir := t.TempDir()

	paths, err := Save(dir, "/in/report.pdf", sampleOutline(), FormatBoth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 artifacts, got %d", len(paths))
	}

	data, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatalf("read json artifact: %v", err)
	}
	if !strings.Contains(string(data), `"title": "Annual Report"`) {
		t.Errorf("unexpected json artifact:\n%s", data)
	}

	md, err := os.ReadFile(paths[1])
	if err != nil {
		t.Fatalf("read markdown artifact: %v", err)
	}
	if !strings.Contains(string(md), "# Annual Report") {
		t.Errorf("unexpected markdown artifact:\n%s", md)
	}
}
