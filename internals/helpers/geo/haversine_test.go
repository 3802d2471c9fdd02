package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	// titik identik
	assert.Equal(t, 0.0, Haversine(-6.2, 106.8, -6.2, 106.8))

	// 1 derajat lintang ≈ 111.195 km di bola R=6371 km
	d := Haversine(0, 0, 1, 0)
	assert.InDelta(t, 111194.9, d, 10)

	// simetris
	a := Haversine(-6.2, 106.8, -6.9, 107.6)
	b := Haversine(-6.9, 107.6, -6.2, 106.8)
	assert.InDelta(t, a, b, 0.0001)
}

func TestWithinRadius(t *testing.T) {
	// ~111.195 km dari pusat; radius pas di jarak → masih di dalam (<=)
	d, inside := WithinRadius(1, 0, 0, 0, 111195.0)
	assert.True(t, inside)
	assert.InDelta(t, 111194.9, d, 10)

	_, inside = WithinRadius(1, 0, 0, 0, 111000.0)
	assert.False(t, inside)

	// titik di pusat selalu di dalam
	d, inside = WithinRadius(-6.2, 106.8, -6.2, 106.8, 1)
	assert.True(t, inside)
	assert.Equal(t, 0.0, d)
}
