// Package blog holds the generated-post model for the site's SEO blog.
package blog

import "time"

// Content is the structured article the model is asked to return as JSON.
// Body arrives as ready-to-publish HTML markup.
type Content struct {
	Title           string `json:"title"`
	MetaDescription string `json:"meta_description"`
	Keywords        string `json:"keywords"`
	Excerpt         string `json:"excerpt"`
	Category        string `json:"category"`
	Body            string `json:"content"`
}

// Post is one published article as tracked in storage. The tracker exists
// to prevent topic and slug reuse and to enforce the daily cap.
type Post struct {
	ID              int64     `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Topic           string    `json:"topic"`
	Category        string    `json:"category"`
	MetaDescription string    `json:"metaDescription"`
	CreatedAt       time.Time `json:"createdAt"`
}

// SitePage describes one internal page posts are asked to link to.
type SitePage struct {
	// URL is relative to the posts/ directory.
	URL     string
	Anchors []string
	UseWhen string
}
