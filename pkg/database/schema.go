package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// blog_posts layout of the site schema, with the lang column used by the
// language-separated migration. Slugs are unique per language.
const mysqlBlogPosts = "CREATE TABLE IF NOT EXISTS `%s` (" +
	"`id` int AUTO_INCREMENT PRIMARY KEY, " +
	"`title` text NOT NULL, " +
	"`lang` varchar(5) NOT NULL DEFAULT 'en', " +
	"`slug` varchar(255) NOT NULL, " +
	"`content` text NOT NULL, " +
	"`excerpt` text, " +
	"`authorId` int NOT NULL, " +
	"`category` varchar(100), " +
	"`tags` text, " +
	"`featured` int DEFAULT 0, " +
	"`published` int DEFAULT 0, " +
	"`createdAt` timestamp NOT NULL DEFAULT CURRENT_TIMESTAMP, " +
	"`updatedAt` timestamp NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP, " +
	"UNIQUE KEY `%s_slug_lang_unique` (`slug`, `lang`)" +
	") DEFAULT CHARSET=utf8mb4"

const sqliteBlogPosts = `CREATE TABLE IF NOT EXISTS %s (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	lang TEXT NOT NULL DEFAULT 'en',
	slug TEXT NOT NULL,
	content TEXT NOT NULL,
	excerpt TEXT,
	authorId INTEGER NOT NULL,
	category TEXT,
	tags TEXT,
	featured INTEGER DEFAULT 0,
	published INTEGER DEFAULT 0,
	createdAt TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updatedAt TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (slug, lang)
)`

// EnsureTable creates the blog posts table if it does not exist.
// It is meant for local development databases.
func EnsureTable(ctx context.Context, db *sql.DB, driver, table string) error {
	if !identPattern.MatchString(table) {
		return fmt.Errorf("invalid table name %q", table)
	}

	var ddl string
	switch driver {
	case DriverMySQL:
		ddl = fmt.Sprintf(mysqlBlogPosts, table, table)
	case DriverSQLite:
		ddl = fmt.Sprintf(sqliteBlogPosts, table)
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}

	slog.Debug("ensured table", "table", table, "driver", driver)
	return nil
}
