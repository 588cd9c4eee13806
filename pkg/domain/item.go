package domain

import "time"

// FeedItem represents a single entry from an RSS feed as shown in the reader.
// Published keeps the feed's own date string, falling back to the fetch time
// when the feed omits it.
type FeedItem struct {
	Title     string
	Link      string
	Published string
	Source    string
}

// SummaryUpdate represents one completed summary produced by the background
// worker, keyed by article link.
type SummaryUpdate struct {
	Link    string
	Summary string
}

// SavedArticle represents an article the user explicitly saved, with the
// summary and full text captured at save time.
type SavedArticle struct {
	ID            int64
	Title         string
	Link          string
	PublishedDate string
	Summary       string
	Content       string
	Source        string
	Comment       string
	CreatedAt     time.Time
}
