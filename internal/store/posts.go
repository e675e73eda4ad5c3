package store

import (
	"context"
	"fmt"
	"time"

	"github.com/bunniesplumbing/chat-gateway/internal/model/blog"
)

const postsSchema = `
CREATE TABLE IF NOT EXISTS posts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    slug TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    topic TEXT NOT NULL,
    category TEXT,
    meta_description TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`

// SavePost records a published post and fills in its ID and creation time.
func (d *Database) SavePost(ctx context.Context, p *blog.Post) error {
	query := `
        INSERT INTO posts (slug, title, topic, category, meta_description)
        VALUES (?, ?, ?, ?, ?)
        RETURNING id, created_at`

	return d.db.QueryRowContext(ctx, query,
		p.Slug, p.Title, p.Topic, p.Category, p.MetaDescription,
	).Scan(&p.ID, &p.CreatedAt)
}

// RecentPosts returns the newest posts, newest first.
func (d *Database) RecentPosts(ctx context.Context, limit int) ([]blog.Post, error) {
	rows, err := d.db.QueryContext(ctx, `
        SELECT id, slug, title, topic, category, meta_description, created_at
        FROM posts ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	var out []blog.Post
	for rows.Next() {
		var p blog.Post
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.Topic,
			&p.Category, &p.MetaDescription, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SlugExists reports whether a post with the slug was already published.
func (d *Database) SlugExists(ctx context.Context, slug string) (bool, error) {
	var n int
	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM posts WHERE slug = ?`, slug).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return n > 0, nil
}

// PostsCreatedSince counts posts published at or after t.
func (d *Database) PostsCreatedSince(ctx context.Context, t time.Time) (int, error) {
	var n int
	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM posts WHERE created_at >= ?`, t).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}
