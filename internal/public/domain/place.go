package domain

import "time"

// Source values tag where a search result came from.
const (
	SourceLocal = "local"
	SourceNaver = "naver"
)

// Place represents a publicly visible place.
type Place struct {
	ID        string
	Name      string
	Address   string
	Category  string
	Latitude  float64
	Longitude float64
	CreatedAt time.Time
}

// PlaceDetail is a Place with rating aggregates computed at read time.
type PlaceDetail struct {
	Place
	AverageRating float64
	ReviewCount   int
}

// SearchPlace is a Place-shaped search hit. Provider results carry the optional fields.
type SearchPlace struct {
	Place
	Source      string
	Description string
	Telephone   string
	Link        string
}

// SearchPage is one page of keyword search results.
type SearchPage struct {
	Places  []SearchPlace
	Total   int
	HasMore bool
	Source  string
}

// ValidCoordinates reports whether lat/lng are inside WGS 84 bounds.
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
