package domain

import (
	"errors"
	"time"
)

// ErrDuplicatePlace is returned when a place with the same name and address already exists.
var ErrDuplicatePlace = errors.New("place already exists")

// Place aggregates data required for place ingestion.
type Place struct {
	ID        string
	Name      PlaceName
	Address   Address
	Category  Category
	Location  Coordinate
	CreatedAt time.Time
}

// NewPlace validates raw input into a Place without an ID.
func NewPlace(name, address, category string, lat, lng float64) (*Place, error) {
	n, err := NewPlaceName(name)
	if err != nil {
		return nil, err
	}
	a, err := NewAddress(address)
	if err != nil {
		return nil, err
	}
	c, err := NewCategory(category)
	if err != nil {
		return nil, err
	}
	loc, err := NewCoordinate(lat, lng)
	if err != nil {
		return nil, err
	}
	return &Place{Name: n, Address: a, Category: c, Location: loc}, nil
}

// RestorePlace rebuilds a stored place as-is. Stored rows may come from other ingestion paths,
// so they are not re-validated or normalized.
func RestorePlace(id, name, address, category string, lat, lng float64, createdAt time.Time) Place {
	return Place{
		ID:        id,
		Name:      PlaceName(name),
		Address:   Address(address),
		Category:  Category(category),
		Location:  Coordinate{Lat: lat, Lng: lng},
		CreatedAt: createdAt,
	}
}
