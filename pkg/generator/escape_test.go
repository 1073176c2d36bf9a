package generator

import (
	"strings"
	"testing"
)

func TestEscapeSQL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"simple", "simple"},
		{"with'quote", "with''quote"},
		{"multiple'quotes'here", "multiple''quotes''here"},
		{"", ""},
		{"no quotes at all", "no quotes at all"},
		{"'", "''"},
		{"''", "''''"},
		{"it's a test", "it''s a test"},
		{"O'Brien's data", "O''Brien''s data"},
		{`back\slash`, `back\slash`},
		{"دليل المصنع's", "دليل المصنع''s"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := EscapeSQL(tt.input)
			if got != tt.want {
				t.Errorf("EscapeSQL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeSQL_DoublesEveryQuote(t *testing.T) {
	inputs := []string{"", "'", "a'b'c", "'''", "no quotes", "it's 'quoted'"}
	for _, in := range inputs {
		k := strings.Count(in, "'")
		got := strings.Count(EscapeSQL(in), "'")
		if got != 2*k {
			t.Errorf("EscapeSQL(%q) has %d quotes, want %d", in, got, 2*k)
		}
	}
}

func TestQuoteString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"simple", "'simple'"},
		{"with'quote", "'with''quote'"},
		{"", "''"},
		{"hello world", "'hello world'"},
		{"it's", "'it''s'"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := QuoteString(tt.input)
			if got != tt.want {
				t.Errorf("QuoteString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name    string
		content string
		n       int
		want    string
	}{
		{"shorter than limit", "short", 150, "short..."},
		{"exactly limit", strings.Repeat("a", 150), 150, strings.Repeat("a", 150) + "..."},
		{"truncated", strings.Repeat("b", 200), 150, strings.Repeat("b", 150) + "..."},
		{"empty", "", 150, "..."},
		{"zero length", "abc", 0, "..."},
		{"negative length", "abc", -5, "..."},
		// The cut is taken from raw content, so a quote at position 149 is
		// kept and doubled, and one at position 150 is dropped.
		{"quote inside cut", strings.Repeat("x", 149) + "'yyy", 150, strings.Repeat("x", 149) + "''..."},
		{"quote just past cut", strings.Repeat("x", 150) + "'yyy", 150, strings.Repeat("x", 150) + "..."},
		{"counts characters not bytes", strings.Repeat("م", 200), 150, strings.Repeat("م", 150) + "..."},
		{"newlines kept", "line1\nline2", 150, "line1\nline2..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Excerpt(tt.content, tt.n)
			if got != tt.want {
				t.Errorf("Excerpt(%q, %d) = %q, want %q", tt.content, tt.n, got, tt.want)
			}
		})
	}
}

func TestExcerpt_MarkerNeverEscaped(t *testing.T) {
	content := strings.Repeat("'", 200)
	got := Excerpt(content, DefaultExcerptLength)

	if !strings.HasSuffix(got, "''...") {
		t.Fatalf("expected escaped slice followed by marker, got suffix %q", got[len(got)-8:])
	}
	if n := strings.Count(got, "'"); n != 2*DefaultExcerptLength {
		t.Errorf("expected %d quotes, got %d", 2*DefaultExcerptLength, n)
	}
}

func TestJoinTags(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want string
	}{
		{"two", []string{"a", "b"}, "a,b"},
		{"none", nil, ""},
		{"one", []string{"solo"}, "solo"},
		{"comma inside tag", []string{"a,b", "c"}, "a,b,c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinTags(tt.tags); got != tt.want {
				t.Errorf("JoinTags(%q) = %q, want %q", tt.tags, got, tt.want)
			}
		})
	}
}
