package generator

import "strings"

// DefaultExcerptLength is the number of characters of content kept in an excerpt.
const DefaultExcerptLength = 150

// excerptMarker is appended to every excerpt after escaping.
const excerptMarker = "..."

// EscapeSQL escapes single quotes in a string for a SQL string literal by
// doubling them (SQL-standard, accepted by MySQL and SQLite).
func EscapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// QuoteString wraps a string in single quotes with proper escaping.
func QuoteString(s string) string {
	return "'" + EscapeSQL(s) + "'"
}

// Excerpt returns the first n characters of the raw content, escaped, with
// "..." appended. Characters are counted as code points, so a cut can land
// inside a word or a combining sequence.
func Excerpt(content string, n int) string {
	if n < 0 {
		n = 0
	}
	count := 0
	for i := range content {
		if count == n {
			content = content[:i]
			break
		}
		count++
	}
	return EscapeSQL(content) + excerptMarker
}

// JoinTags flattens tags into one comma-separated string. Commas inside a
// tag are not escaped.
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}
