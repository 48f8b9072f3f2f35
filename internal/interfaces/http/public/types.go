package public

import (
	"time"

	"github.com/sngm3741/matjip-map/api/internal/public/domain"
)

type placeResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	Category  string     `json:"category"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type placeDetailResponse struct {
	placeResponse
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
}

type searchPlaceResponse struct {
	placeResponse
	Description string `json:"description,omitempty"`
	Telephone   string `json:"telephone,omitempty"`
	Link        string `json:"link,omitempty"`
	Source      string `json:"source"`
}

type nearbyResponse struct {
	Places []placeResponse `json:"places"`
}

type placeDetailEnvelope struct {
	Place placeDetailResponse `json:"place"`
}

type searchResponse struct {
	Places  []searchPlaceResponse `json:"places"`
	Total   int                   `json:"total"`
	HasMore bool                  `json:"hasMore"`
}

type createReviewRequest = domain.ReviewInput

type createdReviewResponse struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"authorName"`
	Rating     int       `json:"rating"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

type createReviewResponse struct {
	Review createdReviewResponse `json:"review"`
}

type reviewResponse struct {
	ID         string    `json:"id"`
	PlaceID    string    `json:"place_id"`
	AuthorName string    `json:"author_name"`
	Rating     int       `json:"rating"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type reviewListResponse struct {
	Reviews []reviewResponse `json:"reviews"`
	Total   int              `json:"total"`
	HasMore bool             `json:"hasMore"`
}
