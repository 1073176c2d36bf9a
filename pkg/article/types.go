package article

import (
	"fmt"
	"strings"
)

// Language identifies a dataset partition.
type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"
)

// ValidLanguages maps language tags to Language constants.
var ValidLanguages = map[string]Language{
	"ar": Arabic,
	"en": English,
}

// ParseLanguage returns the Language for a tag such as "ar" or "EN".
func ParseLanguage(s string) (Language, error) {
	lang, ok := ValidLanguages[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unknown language %q", s)
	}
	return lang, nil
}

// Record is one article from a language partition, already mapped from the
// language-suffixed source keys onto canonical fields.
type Record struct {
	Title    string
	Slug     string
	Content  string
	Category string
	Tags     []string
	Language Language
}

// WithSlugSuffix returns a copy of the record with suffix appended to its slug.
func (r Record) WithSlugSuffix(suffix string) Record {
	if suffix == "" {
		return r
	}
	r.Slug += suffix
	r.Tags = append([]string(nil), r.Tags...)
	return r
}
