package dto

import "time"

// ArticleData is the structured result of extracting one article page.
// Optional metadata that could not be found stays nil/empty; callers fall
// back to sitemap lastmod timestamps where needed.
type ArticleData struct {
	Title         string
	PublishedTime *time.Time
	ModifiedTime  *time.Time
	AuthorName    string
	BodyText      string
}

// Fact is one extracted factual statement with its newsworthiness score.
// The score is a crude length-based proxy (rune count / 100) until a
// calibrated model replaces it.
type Fact struct {
	Content        string
	Newsworthiness float64
}
