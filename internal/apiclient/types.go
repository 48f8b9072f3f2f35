package apiclient

import "time"

// Place is the place shape returned by nearby and detail lookups.
type Place struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	Category  string     `json:"category"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// PlaceDetail adds review aggregates to Place.
type PlaceDetail struct {
	Place
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
}

// SearchPlace is one search hit. Source is "naver" or "local".
type SearchPlace struct {
	Place
	Description string `json:"description,omitempty"`
	Telephone   string `json:"telephone,omitempty"`
	Link        string `json:"link,omitempty"`
	Source      string `json:"source"`
}

type SearchResult struct {
	Places  []SearchPlace `json:"places"`
	Total   int           `json:"total"`
	HasMore bool          `json:"hasMore"`
}

type Review struct {
	ID         string    `json:"id"`
	PlaceID    string    `json:"place_id"`
	AuthorName string    `json:"author_name"`
	Rating     int       `json:"rating"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReviewPage struct {
	Reviews []Review `json:"reviews"`
	Total   int      `json:"total"`
	HasMore bool     `json:"hasMore"`
}

// CreateReviewRequest is the review submission body.
type CreateReviewRequest struct {
	AuthorName string `json:"authorName"`
	Rating     int    `json:"rating"`
	Content    string `json:"content"`
	Password   string `json:"password"`
}

type CreatedReview struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"authorName"`
	Rating     int       `json:"rating"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}
