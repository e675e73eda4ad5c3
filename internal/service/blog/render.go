package blog

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/bunniesplumbing/chat-gateway/internal/knowledge"
	blogmodel "github.com/bunniesplumbing/chat-gateway/internal/model/blog"
)

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// readingTime estimates minutes to read HTML content at 200 words/min.
func readingTime(htmlBody string) int {
	text := tagPattern.ReplaceAllString(htmlBody, " ")
	words := len(strings.Fields(text))
	minutes := (words + 100) / 200
	if minutes < 1 {
		return 1
	}
	return minutes
}

var categoryIcons = map[string]string{
	"trenchless technology": "fas fa-hard-hat",
	"maintenance":           "fas fa-wrench",
	"home maintenance":      "fas fa-home",
	"emergency tips":        "fas fa-exclamation-triangle",
	"sewer lines":           "fas fa-water",
	"water heaters":         "fas fa-temperature-high",
	"safety":                "fas fa-shield-alt",
	"plumbing tips":         "fas fa-tools",
	"drain cleaning":        "fas fa-shower",
	"repiping":              "fas fa-random",
	"gas lines":             "fas fa-fire",
	"diy & prevention":      "fas fa-toolbox",
	"our services":          "fas fa-concierge-bell",
	"company news":          "fas fa-newspaper",
}

func categoryIcon(category string) string {
	if icon, ok := categoryIcons[strings.ToLower(category)]; ok {
		return icon
	}
	return "fas fa-wrench"
}

type pageData struct {
	Title           string
	TitleShort      string
	MetaDescription string
	Keywords        string
	DateDisplay     string
	DateISO         string
	Category        string
	ReadingTime     int
	Slug            string
	CompanyName     string
	CompanyPhone    string
	// Body is model-produced HTML and is inserted unescaped; it never
	// contains visitor input.
	Body template.HTML
}

var postTemplate = template.Must(template.New("post").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} | {{.CompanyName}}</title>
    <meta name="description" content="{{.MetaDescription}}">
    <meta name="keywords" content="{{.Keywords}}">
    <link rel="canonical" href="https://bunniesplumbing.com/posts/{{.Slug}}.html">
    <link rel="stylesheet" href="../css/style.css">
</head>
<body>
    <main class="post">
        <article class="post__article">
            <header class="post__header">
                <nav class="post__breadcrumb"><a href="../blog.html">Blog</a> / {{.TitleShort}}</nav>
                <span class="post__meta">{{.Category}} &mdash; {{.DateDisplay}} &mdash; {{.ReadingTime}} min read</span>
                <h1>{{.Title}}</h1>
            </header>
            <div class="post__body">
{{.Body}}
            </div>
            <footer class="post__footer">
                <p>Need a hand? Call {{.CompanyName}} at <a href="tel:+14084275318">{{.CompanyPhone}}</a> or <a href="../contact.html">book a service online</a>.</p>
                <time datetime="{{.DateISO}}">{{.DateDisplay}}</time>
            </footer>
        </article>
    </main>
</body>
</html>
`))

func renderPostPage(content *blogmodel.Content, postSlug string, now time.Time) ([]byte, error) {
	titleShort := content.Title
	if len(titleShort) > 50 {
		titleShort = titleShort[:50] + "..."
	}

	data := pageData{
		Title:           content.Title,
		TitleShort:      titleShort,
		MetaDescription: content.MetaDescription,
		Keywords:        content.Keywords,
		DateDisplay:     now.Format("January 2, 2006"),
		DateISO:         now.Format("2006-01-02"),
		Category:        content.Category,
		ReadingTime:     readingTime(content.Body),
		Slug:            postSlug,
		CompanyName:     knowledge.CompanyName,
		CompanyPhone:    knowledge.CompanyPhone,
		Body:            template.HTML(content.Body),
	}

	var out bytes.Buffer
	if err := postTemplate.Execute(&out, data); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

type cardData struct {
	Title       string
	Excerpt     string
	Category    string
	DateDisplay string
	Slug        string
	Icon        string
}

var cardTemplate = template.Must(template.New("card").Parse(`
                    <div class="blog-card animate-on-scroll fade-up">
                        <div class="blog-card__img">
                            <i class="{{.Icon}}"></i>
                        </div>
                        <div class="blog-card__body">
                            <span class="blog-card__meta">{{.Category}} &mdash; {{.DateDisplay}}</span>
                            <h3><a href="posts/{{.Slug}}.html">{{.Title}}</a></h3>
                            <p>{{.Excerpt}}</p>
                            <a href="posts/{{.Slug}}.html" class="blog-card__link">Read More <i class="fas fa-arrow-right"></i></a>
                        </div>
                    </div>`))

// blogGridMarker anchors card insertion in the blog index page.
const blogGridMarker = `<div class="blog__grid">`

// insertBlogCard prepends a card for the new post inside the index page's
// grid, so the newest post renders first.
func insertBlogCard(indexPath string, content *blogmodel.Content, postSlug string, now time.Time) error {
	page, err := os.ReadFile(indexPath)
	if err != nil {
		return fmt.Errorf("read blog index: %w", err)
	}

	idx := bytes.Index(page, []byte(blogGridMarker))
	if idx == -1 {
		return fmt.Errorf("blog index has no %q marker", blogGridMarker)
	}
	insertAt := idx + len(blogGridMarker)

	var card bytes.Buffer
	err = cardTemplate.Execute(&card, cardData{
		Title:       content.Title,
		Excerpt:     content.Excerpt,
		Category:    content.Category,
		DateDisplay: now.Format("Jan 2, 2006"),
		Slug:        postSlug,
		Icon:        categoryIcon(content.Category),
	})
	if err != nil {
		return fmt.Errorf("render blog card: %w", err)
	}

	var updated bytes.Buffer
	updated.Write(page[:insertAt])
	updated.Write(card.Bytes())
	updated.Write(page[insertAt:])

	return os.WriteFile(indexPath, updated.Bytes(), 0o644)
}
