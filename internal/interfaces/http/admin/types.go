package admin

import "time"

type adminPlaceCreateRequest struct {
	Name      string   `json:"name" validate:"required"`
	Address   string   `json:"address" validate:"required"`
	Category  string   `json:"category"`
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

type adminPlaceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Category  string    `json:"category"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

type adminPlaceCreateResponse struct {
	Place   adminPlaceResponse `json:"place"`
	Created bool               `json:"created"`
}

type adminPlaceListResponse struct {
	Items []adminPlaceResponse `json:"items"`
}
