package database

import (
	"context"
	"database/sql"
	"strings"
	"testing"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := EnsureTable(context.Background(), db, DriverSQLite, "blog_posts"); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	return db
}

func TestOpen_Errors(t *testing.T) {
	tests := []struct {
		name   string
		driver string
		dsn    string
		errMsg string
	}{
		{"empty dsn", DriverSQLite, "", "DSN is required"},
		{"unknown driver", "postgres", "host=x", "unsupported database driver"},
		{"bad mysql dsn", DriverMySQL, "not a dsn", "invalid MySQL DSN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(context.Background(), tt.driver, tt.dsn)
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %v", tt.errMsg, err)
			}
		})
	}
}

func TestApply(t *testing.T) {
	db := openSQLite(t)

	stmt := "-- Migration to add articles\n" +
		"INSERT INTO blog_posts (title, lang, slug, content, excerpt, authorId, category, tags, featured, published) VALUES\n" +
		"('A''s Shop', 'en', 'a-shop', 'body', 'body...', 1, 'Shops', 'a,b', 0, 1),\n" +
		"('دليل', 'ar', 'a-shop', 'نص', 'نص...', 1, 'عام', 'س', 0, 1);"

	n, err := Apply(context.Background(), db, stmt)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if n != 2 {
		t.Errorf("rows affected = %d, want 2", n)
	}

	var title string
	if err := db.QueryRow("SELECT title FROM blog_posts WHERE slug = 'a-shop' AND lang = 'en'").Scan(&title); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if title != "A's Shop" {
		t.Errorf("title = %q, want %q", title, "A's Shop")
	}
}

func TestApply_Errors(t *testing.T) {
	db := openSQLite(t)

	if _, err := Apply(context.Background(), db, "-- only a comment"); err == nil {
		t.Error("expected error for comment-only statement")
	}
	if _, err := Apply(context.Background(), db, "INSERT INTO missing_table (a) VALUES (1);"); err == nil {
		t.Error("expected error for missing table")
	}
}

func TestExistingSlugs(t *testing.T) {
	db := openSQLite(t)

	_, err := db.Exec(`INSERT INTO blog_posts (title, slug, content, authorId, lang) VALUES
		('a', 'first', 'x', 1, 'ar'), ('b', 'second', 'y', 1, 'en'), ('c', 'first', 'z', 1, 'en')`)
	if err != nil {
		t.Fatalf("seed insert failed: %v", err)
	}

	tests := []struct {
		name       string
		byLanguage bool
		want       []SlugKey
	}{
		{
			name:       "slug only",
			byLanguage: false,
			want:       []SlugKey{{Slug: "first"}, {Slug: "second"}},
		},
		{
			name:       "slug and language",
			byLanguage: true,
			want:       []SlugKey{{"first", "ar"}, {"second", "en"}, {"first", "en"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, err := ExistingSlugs(context.Background(), db, "blog_posts", tt.byLanguage)
			if err != nil {
				t.Fatalf("ExistingSlugs failed: %v", err)
			}
			if len(keys) != len(tt.want) {
				t.Errorf("expected %d keys, got %d: %v", len(tt.want), len(keys), keys)
			}
			for _, k := range tt.want {
				if _, ok := keys[k]; !ok {
					t.Errorf("missing key %+v", k)
				}
			}
		})
	}
}

func TestExistingSlugs_InvalidTable(t *testing.T) {
	db := openSQLite(t)
	if _, err := ExistingSlugs(context.Background(), db, "blog_posts; DROP TABLE x", false); err == nil {
		t.Error("expected error for invalid table name")
	}
}

func TestEnsureTable_Idempotent(t *testing.T) {
	db := openSQLite(t)
	if err := EnsureTable(context.Background(), db, DriverSQLite, "blog_posts"); err != nil {
		t.Errorf("second EnsureTable failed: %v", err)
	}
	if err := EnsureTable(context.Background(), db, "oracle", "blog_posts"); err == nil {
		t.Error("expected error for unsupported driver")
	}
}

func TestStripLeadingComments(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"INSERT 1;", "INSERT 1;"},
		{"-- c\nINSERT 1;", "INSERT 1;"},
		{"-- a\n-- b\n\nINSERT 1;", "INSERT 1;"},
		{"-- only", ""},
		{"  \n-- c\r\nINSERT 1;", "INSERT 1;"},
	}

	for _, tt := range tests {
		if got := stripLeadingComments(tt.input); got != tt.want {
			t.Errorf("stripLeadingComments(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
