package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoundingBox(t *testing.T) {
	t.Run("contains center and is symmetric", func(t *testing.T) {
		cases := []struct {
			lat, lng, radius float64
		}{
			{37.5665, 126.978, 1000},
			{0, 0, 1},
			{-33.8688, 151.2093, 5000},
			{89.9, -179.9, 250},
		}
		for _, tc := range cases {
			box := NewBoundingBox(tc.lat, tc.lng, tc.radius)
			assert.True(t, box.Contains(tc.lat, tc.lng))
			assert.InDelta(t, tc.lat-box.MinLat, box.MaxLat-tc.lat, 1e-9)
			assert.InDelta(t, tc.lng-box.MinLng, box.MaxLng-tc.lng, 1e-9)
		}
	})

	t.Run("latitude delta follows meters per degree", func(t *testing.T) {
		box := NewBoundingBox(0, 0, 111000)
		assert.InDelta(t, -1, box.MinLat, 1e-9)
		assert.InDelta(t, 1, box.MaxLat, 1e-9)
		assert.InDelta(t, 1, box.MaxLng, 1e-9)
	})

	t.Run("longitude span widens away from the equator", func(t *testing.T) {
		equator := NewBoundingBox(0, 0, 1000)
		seoul := NewBoundingBox(37.5, 0, 1000)
		require.Greater(t, seoul.MaxLng-seoul.MinLng, equator.MaxLng-equator.MinLng)
	})

	t.Run("points outside are excluded", func(t *testing.T) {
		box := NewBoundingBox(37.5665, 126.978, 1000)
		assert.False(t, box.Contains(37.6, 126.978))
		assert.False(t, box.Contains(37.5665, 127.1))
	})
}

func TestDistance(t *testing.T) {
	assert.Zero(t, Distance(DefaultCenter, DefaultCenter))

	// 서울시청 → 강남역 is roughly 8.8km.
	gangnam := Point{Lat: 37.4979, Lng: 127.0276}
	d := Distance(DefaultCenter, gangnam)
	assert.InDelta(t, 8800, d, 300)
	assert.InDelta(t, d, Distance(gangnam, DefaultCenter), 1e-6)

	// One degree of latitude is about 111km.
	assert.InDelta(t, 111195, Distance(Point{0, 0}, Point{1, 0}), 10)
}
