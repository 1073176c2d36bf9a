package article

import (
	"strings"
	"testing"
)

func TestDefaultMapping(t *testing.T) {
	m := DefaultMapping(Arabic)

	want := FieldMapping{
		Language: Arabic,
		Title:    "title_ar",
		Slug:     "slug_ar",
		Content:  "content_ar",
		Category: "category_ar",
		Tags:     "tags_ar",
	}
	if m != want {
		t.Errorf("DefaultMapping(ar) = %+v, want %+v", m, want)
	}
}

func TestFieldMapping_WithOverrides(t *testing.T) {
	m, err := DefaultMapping(English).WithOverrides(map[string]string{
		FieldTitle: "headline_en",
		FieldTags:  "keywords",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Title != "headline_en" {
		t.Errorf("Title = %q, want %q", m.Title, "headline_en")
	}
	if m.Tags != "keywords" {
		t.Errorf("Tags = %q, want %q", m.Tags, "keywords")
	}
	if m.Slug != "slug_en" {
		t.Errorf("Slug = %q, want untouched %q", m.Slug, "slug_en")
	}
}

func TestFieldMapping_WithOverridesErrors(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
		errMsg    string
	}{
		{"unknown field", map[string]string{"summary": "summary_en"}, "unknown field"},
		{"empty key", map[string]string{FieldSlug: ""}, "empty key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DefaultMapping(English).WithOverrides(tt.overrides)
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %v", tt.errMsg, err)
			}
		})
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input   string
		want    Language
		wantErr bool
	}{
		{"ar", Arabic, false},
		{"en", English, false},
		{" EN ", English, false},
		{"fr", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLanguage(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLanguage(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLanguage(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRecord_WithSlugSuffix(t *testing.T) {
	orig := Record{Slug: "widget-co", Tags: []string{"a"}, Language: English}

	got := orig.WithSlugSuffix("-en")
	if got.Slug != "widget-co-en" {
		t.Errorf("Slug = %q, want %q", got.Slug, "widget-co-en")
	}
	if orig.Slug != "widget-co" {
		t.Errorf("original slug mutated to %q", orig.Slug)
	}

	got.Tags[0] = "changed"
	if orig.Tags[0] != "a" {
		t.Errorf("original tags share backing array with copy")
	}

	if same := orig.WithSlugSuffix(""); same.Slug != "widget-co" {
		t.Errorf("empty suffix changed slug to %q", same.Slug)
	}
}
