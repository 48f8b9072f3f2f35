package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	cases := map[string]string{
		"":          "",
		"한식>국밥":     "한식>국밥",
		" 한식 > 국밥 ": "한식>국밥",
		"Korean>국밥": "한식>국밥",
		"cafe":      "카페",
		"술집>>이자카야":  "술집>이자카야",
		"  >  ":     "",
	}
	for in, want := range cases {
		got, err := NewCategory(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String(), in)
	}

	_, err := NewCategory(strings.Repeat("가", 51))
	assert.ErrorIs(t, err, ErrCategoryTooLong)
}

func TestNewPlace(t *testing.T) {
	place, err := NewPlace("  을지면옥 ", "서울 중구   을지로 1", "한식>냉면", 37.56, 126.99)
	require.NoError(t, err)
	assert.Equal(t, "을지면옥", place.Name.String())
	assert.Equal(t, "서울 중구 을지로 1", place.Address.String())
	assert.Equal(t, "한식>냉면", place.Category.String())
	assert.Equal(t, Coordinate{Lat: 37.56, Lng: 126.99}, place.Location)

	invalid := []struct {
		name, address string
		lat, lng      float64
		want          error
	}{
		{"", "주소", 0, 0, ErrPlaceNameRequired},
		{strings.Repeat("a", 101), "주소", 0, 0, ErrPlaceNameTooLong},
		{"이름", " ", 0, 0, ErrAddressRequired},
		{"이름", strings.Repeat("a", 201), 0, 0, ErrAddressTooLong},
		{"이름", "주소", 91, 0, ErrLatitudeRange},
		{"이름", "주소", 0, -181, ErrLongitudeRange},
	}
	for _, tc := range invalid {
		_, err := NewPlace(tc.name, tc.address, "", tc.lat, tc.lng)
		assert.ErrorIs(t, err, tc.want)
	}
}

func TestRestorePlaceKeepsStoredValues(t *testing.T) {
	long := strings.Repeat("가", 150)
	place := RestorePlace("ext-1", long, "주소", "cafe", 37.5, 127, time.Time{})
	assert.Equal(t, long, place.Name.String())
	assert.Equal(t, "cafe", place.Category.String())
	assert.Equal(t, "ext-1", place.ID)
}
