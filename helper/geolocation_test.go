package helper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// offset lintang (derajat) yang menempuh jarak meter tertentu di meridian
func latOffsetForMeters(meters float64) float64 {
	return meters / 6371000.0 * 180 / math.Pi
}

func TestGeolocationZero(t *testing.T) {
	assert.Equal(t, 0.0, Geolocation(0, 0, 0, 0))
	assert.Equal(t, 0.0, Geolocation(-6.2, 106.8, -6.2, 106.8))
}

func TestGeolocationSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{-6.2, 106.8, -6.9, 107.6},
		{0, 0, 51.5, -0.12},
		{10, 10, -10, -170},
	}
	for _, p := range pairs {
		assert.Equal(t, Geolocation(p[0], p[1], p[2], p[3]), Geolocation(p[2], p[3], p[0], p[1]))
	}
}

func TestGeolocationAntipodal(t *testing.T) {
	d := Geolocation(0, 0, 0, 180)
	assert.False(t, math.IsNaN(d))
	// setengah keliling bumi, kurang lebih 20015 km
	assert.InDelta(t, 20015000, d, 10000)
}

func TestWithinRadiusBoundary(t *testing.T) {
	at100 := latOffsetForMeters(100)
	at101 := latOffsetForMeters(101)

	assert.Equal(t, 100.0, Geolocation(0, 0, at100, 0))
	assert.Equal(t, 101.0, Geolocation(0, 0, at101, 0))

	assert.True(t, WithinRadius(0, 0, at100, 0, 100))
	assert.False(t, WithinRadius(0, 0, at101, 0, 100))

	// evaluasi berulang tidak boleh berubah hasil
	for i := 0; i < 10; i++ {
		assert.True(t, WithinRadius(0, 0, at100, 0, 100))
	}
}
