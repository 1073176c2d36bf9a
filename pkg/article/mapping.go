package article

import (
	"fmt"
	"sort"
)

// Canonical field names accepted by FieldMapping.WithOverrides.
const (
	FieldTitle    = "title"
	FieldSlug     = "slug"
	FieldContent  = "content"
	FieldCategory = "category"
	FieldTags     = "tags"
)

// FieldMapping names the raw JSON key that holds each canonical field for
// one language partition.
type FieldMapping struct {
	Language Language
	Title    string
	Slug     string
	Content  string
	Category string
	Tags     string
}

// DefaultMapping returns the suffixed key layout used by the article
// datasets, e.g. title_ar, slug_ar, content_ar, category_ar, tags_ar.
func DefaultMapping(lang Language) FieldMapping {
	suffix := "_" + string(lang)
	return FieldMapping{
		Language: lang,
		Title:    FieldTitle + suffix,
		Slug:     FieldSlug + suffix,
		Content:  FieldContent + suffix,
		Category: FieldCategory + suffix,
		Tags:     FieldTags + suffix,
	}
}

// WithOverrides returns a copy of m with the raw keys replaced for the
// canonical fields named in overrides.
func (m FieldMapping) WithOverrides(overrides map[string]string) (FieldMapping, error) {
	// Sorted so that the first reported error is stable.
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		key := overrides[name]
		if key == "" {
			return m, fmt.Errorf("field %q: empty key", name)
		}
		switch name {
		case FieldTitle:
			m.Title = key
		case FieldSlug:
			m.Slug = key
		case FieldContent:
			m.Content = key
		case FieldCategory:
			m.Category = key
		case FieldTags:
			m.Tags = key
		default:
			return m, fmt.Errorf("unknown field %q", name)
		}
	}
	return m, nil
}

type fieldKey struct {
	field string
	key   string
}

// keys lists the mapping in record field order.
func (m FieldMapping) keys() []fieldKey {
	return []fieldKey{
		{FieldTitle, m.Title},
		{FieldSlug, m.Slug},
		{FieldContent, m.Content},
		{FieldCategory, m.Category},
		{FieldTags, m.Tags},
	}
}
