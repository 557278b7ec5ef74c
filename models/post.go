package models

// Post represents a published daily-log entry. Content is the raw markdown
// body; list endpoints return it fully hydrated from blob storage.
type Post struct {
	Slug    string   `json:"slug"`
	Title   string   `json:"title"`
	Date    string   `json:"date"` // ISO 8601
	Excerpt string   `json:"excerpt"`
	Tags    []string `json:"tags"`
	Content string   `json:"content"`
}
