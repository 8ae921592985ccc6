package domain

import "time"

// GoldenBookEntry is one page of the troop's historical golden book.
type GoldenBookEntry struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	EventDate  time.Time `json:"event_date"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
