package config

import (
	"fmt"
	"sort"
)

// Built-in jobs reproducing the two generations of the article migration.
var presets = map[string]Job{
	// First generation: no lang column, English slugs suffixed to stay
	// unique against Arabic slugs generated from the same source id.
	"legacy": {
		Table:     DefaultTable,
		Comment:   "Migration to add 100 articles (50 Arabic, 50 English)",
		AuthorID:  1,
		Featured:  0,
		Published: 1,
		Output:    "drizzle/migrations/add_100_articles.sql",
		Partitions: []Partition{
			{Language: "ar", Source: "arabic_articles.json"},
			{Language: "en", Source: "english_articles.json", SlugSuffix: "-en"},
		},
	},
	// Second generation: lang column separates the partitions, so slugs
	// are kept as-is.
	"final": {
		Table:          DefaultTable,
		Comment:        "Migration to add 100 articles (50 Arabic, 50 English) with language separation",
		AuthorID:       1,
		Featured:       0,
		Published:      1,
		LanguageColumn: true,
		Output:         "drizzle/migrations/add_100_articles_final.sql",
		Partitions: []Partition{
			{Language: "ar", Source: "arabic_articles_final.json"},
			{Language: "en", Source: "english_articles_final.json"},
		},
	},
}

// Preset returns a copy of the named built-in job.
func Preset(name string) (*Job, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (available: %v)", name, PresetNames())
	}

	job := p
	job.Partitions = append([]Partition(nil), p.Partitions...)
	return &job, nil
}

// PresetNames returns the sorted names of the built-in jobs.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
