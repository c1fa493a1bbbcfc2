package reader

import "time"

// Document is a single saved item from the Reader inbox.
type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	SiteName    string    `json:"site_name"`
	SourceURL   string    `json:"source_url"`
	Summary     string    `json:"summary"`
	HTMLContent string    `json:"html_content"`
	WordCount   int       `json:"word_count"`
	Location    string    `json:"location"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Content returns the best available text for analysis: the full HTML
// content when present, otherwise the short summary.
func (d *Document) Content() string {
	if d.HTMLContent != "" {
		return d.HTMLContent
	}
	return d.Summary
}

// DisplayTitle returns the title, or a placeholder for untitled saves.
func (d *Document) DisplayTitle() string {
	if d.Title == "" {
		return "Untitled"
	}
	return d.Title
}

// listResponse is one page of the list endpoint.
type listResponse struct {
	Count          int        `json:"count"`
	NextPageCursor string     `json:"nextPageCursor"`
	Results        []Document `json:"results"`
}
