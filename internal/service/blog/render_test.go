package blog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	blogmodel "github.com/bunniesplumbing/chat-gateway/internal/model/blog"
)

func sampleContent() *blogmodel.Content {
	return &blogmodel.Content{
		Title:           "How Hydro Jetting Clears Stubborn Drains",
		MetaDescription: "Hydro jetting explained.",
		Keywords:        "hydro jetting, drain cleaning",
		Excerpt:         "When the snake fails, water pressure wins.",
		Category:        "Drain Cleaning",
		Body:            "<h2>How It Works</h2><p>High pressure water scours the pipe walls.</p>",
	}
}

func TestReadingTime(t *testing.T) {
	cases := []struct {
		words int
		want  int
	}{
		{10, 1},
		{200, 1},
		{450, 2},
		{1200, 6},
	}
	for _, tc := range cases {
		body := "<p>" + strings.Repeat("word ", tc.words) + "</p>"
		if got := readingTime(body); got != tc.want {
			t.Fatalf("readingTime(%d words) = %d, want %d", tc.words, got, tc.want)
		}
	}
}

func TestReadingTimeIgnoresMarkup(t *testing.T) {
	if got := readingTime(`<a href="../contact.html">call</a>`); got != 1 {
		t.Fatalf("got %d", got)
	}
}

func TestCategoryIconFallback(t *testing.T) {
	if got := categoryIcon("Drain Cleaning"); got != "fas fa-shower" {
		t.Fatalf("got %q", got)
	}
	if got := categoryIcon("Never Heard Of It"); got != "fas fa-wrench" {
		t.Fatalf("unknown categories should fall back, got %q", got)
	}
}

func TestRenderPostPageKeepsBodyMarkup(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	page, err := renderPostPage(sampleContent(), "how-hydro-jetting-clears-stubborn-drains", now)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(page)
	if !strings.Contains(html, "<h2>How It Works</h2>") {
		t.Fatal("body markup was escaped")
	}
	if !strings.Contains(html, `datetime="2026-09-01"`) {
		t.Fatal("ISO date missing")
	}
	if !strings.Contains(html, "September 1, 2026") {
		t.Fatal("display date missing")
	}
	if !strings.Contains(html, "(408) 427-5318") {
		t.Fatal("footer phone number missing")
	}
}

func TestRenderPostPageEscapesMetadata(t *testing.T) {
	content := sampleContent()
	content.Title = `Drains & "Pipes" <test>`

	page, err := renderPostPage(content, "slug", time.Now())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(page), "<test>") {
		t.Fatal("title markup must be escaped")
	}
}

func TestInsertBlogCardPrepends(t *testing.T) {
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "blog.html")
	seed := `<div class="blog__grid">
                    <div class="blog-card">old post</div>
</div>`
	if err := os.WriteFile(indexPath, []byte(seed), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	if err := insertBlogCard(indexPath, sampleContent(), "new-post", now); err != nil {
		t.Fatalf("insert: %v", err)
	}

	updated, _ := os.ReadFile(indexPath)
	html := string(updated)
	newIdx := strings.Index(html, `href="posts/new-post.html"`)
	oldIdx := strings.Index(html, "old post")
	if newIdx == -1 {
		t.Fatal("new card missing")
	}
	if newIdx > oldIdx {
		t.Fatal("new card must come before existing cards")
	}
}

func TestInsertBlogCardRequiresMarker(t *testing.T) {
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "blog.html")
	os.WriteFile(indexPath, []byte("<html><body></body></html>"), 0o644)

	if err := insertBlogCard(indexPath, sampleContent(), "slug", time.Now()); err == nil {
		t.Fatal("missing grid marker must fail loudly")
	}
}
