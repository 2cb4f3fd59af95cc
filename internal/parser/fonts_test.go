package parser

import "testing"

func TestNormalizeFamily(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Helvetica", "helvetica"},
		{"ABCDEF+Helvetica-Bold", "helvetica-bold"},
		{"Times-Roman", "times-roman"},
		{"AAAAAA+BBBBBB+Calibri", "calibri"},
		{"", ""},
	}
	for _, c := range cases {
		if got := normalizeFamily(c.in); got != c.want {
			t.Errorf("normalizeFamily(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDetectBold(t *testing.T) {
	cases := []struct {
		family string
		want   bool
	}{
		{"helvetica-bold", true},
		{"arial-black", true},
		{"helveticaneue-heavy", true},
		{"futura-demibold", true},
		{"timesnewromanps-boldmt", true},
		{"helvetica", false},
		{"times-roman", false},
		{"garamond-italic", false},
	}
	for _, c := range cases {
		if got := detectBold(c.family); got != c.want {
			t.Errorf("detectBold(%q) = %v, want %v", c.family, got, c.want)
		}
	}
}

func TestRoundSize(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{12, 12},
		{11.5, 12},
		{11.49, 11},
		{11.96, 12},
		{9.04, 9},
	}
	for _, c := range cases {
		if got := roundSize(c.in); got != c.want {
			t.Errorf("roundSize(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestForFile(t *testing.T) {
	p, err := ForFile("report.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*PDFParser); !ok {
		t.Errorf("expected *PDFParser, got %T", p)
	}

	if _, err := ForFile("report.docx"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestIsSupportedExtension(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"a.pdf", true},
		{"a.PDF", true},
		{"archive/deep/b.pdf", true},
		{"a.txt", false},
		{"a", false},
	}
	for _, c := range cases {
		if got := IsSupportedExtension(c.name); got != c.want {
			t.Errorf("IsSupportedExtension(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}
