package posts

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "modernc.org/sqlite"
)

// SQLiteSource reads posts from a pubengine-style SQLite database. It never
// writes to the database.
type SQLiteSource struct {
	db *sql.DB
}

// OpenSQLite opens the database at path read-only.
func OpenSQLite(path string) (*SQLiteSource, error) {
	dsn := (&url.URL{
		Scheme:   "file",
		Opaque:   path,
		RawQuery: "mode=ro&_pragma=busy_timeout(5000)",
	}).String()
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(2)
	return &SQLiteSource{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// List implements Source. Unpublished rows are skipped.
func (s *SQLiteSource) List(ctx context.Context) ([]Post, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slug, title, date, tags, summary, content FROM posts WHERE published = 1 ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	var items []Post
	for rows.Next() {
		var slug, title, date, tags, summary, content string
		if err := rows.Scan(&slug, &title, &date, &tags, &summary, &content); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, Post{
			Slug:    slug,
			Title:   title,
			Date:    date,
			Tags:    parseTags(tags),
			Excerpt: summary,
			Body:    content,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return Sort(items), nil
}
