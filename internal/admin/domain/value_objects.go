package domain

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	maxPlaceNameRunes = 100
	maxAddressRunes   = 200
	maxCategoryRunes  = 50
)

// categoryAliases maps loose inputs onto canonical Korean labels.
var categoryAliases = map[string]string{
	"korean":   "한식",
	"japanese": "일식",
	"chinese":  "중식",
	"western":  "양식",
	"cafe":     "카페",
	"coffee":   "카페",
	"bar":      "술집",
	"pub":      "술집",
	"bakery":   "베이커리",
	"dessert":  "디저트",
}

// Value object failures. Handlers translate these into user facing messages.
var (
	ErrPlaceNameRequired = errors.New("place name is required")
	ErrPlaceNameTooLong  = errors.New("place name is too long")
	ErrAddressRequired   = errors.New("address is required")
	ErrAddressTooLong    = errors.New("address is too long")
	ErrCategoryTooLong   = errors.New("category is too long")
	ErrLatitudeRange     = errors.New("latitude must be between -90 and 90")
	ErrLongitudeRange    = errors.New("longitude must be between -180 and 180")
)

type PlaceName string

func NewPlaceName(value string) (PlaceName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", ErrPlaceNameRequired
	}
	if utf8.RuneCountInString(trimmed) > maxPlaceNameRunes {
		return "", ErrPlaceNameTooLong
	}
	return PlaceName(trimmed), nil
}

func (n PlaceName) String() string {
	return string(n)
}

type Address string

func NewAddress(value string) (Address, error) {
	trimmed := strings.Join(strings.Fields(value), " ")
	if trimmed == "" {
		return "", ErrAddressRequired
	}
	if utf8.RuneCountInString(trimmed) > maxAddressRunes {
		return "", ErrAddressTooLong
	}
	return Address(trimmed), nil
}

func (a Address) String() string {
	return string(a)
}

// Category is a ">"-separated path such as "한식>국밥". The empty category is allowed.
type Category string

func NewCategory(value string) (Category, error) {
	parts := strings.Split(value, ">")
	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if alias, ok := categoryAliases[strings.ToLower(part)]; ok {
			part = alias
		}
		cleaned = append(cleaned, part)
	}
	result := strings.Join(cleaned, ">")
	if utf8.RuneCountInString(result) > maxCategoryRunes {
		return "", ErrCategoryTooLong
	}
	return Category(result), nil
}

func (c Category) String() string {
	return string(c)
}

type Coordinate struct {
	Lat float64
	Lng float64
}

func NewCoordinate(lat, lng float64) (Coordinate, error) {
	if lat < -90 || lat > 90 {
		return Coordinate{}, ErrLatitudeRange
	}
	if lng < -180 || lng > 180 {
		return Coordinate{}, ErrLongitudeRange
	}
	return Coordinate{Lat: lat, Lng: lng}, nil
}
