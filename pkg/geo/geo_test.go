package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKmSamePoint(t *testing.T) {
	d := DistanceKm(30.0444, 31.2357, 30.0444, 31.2357)
	assert.Equal(t, 0.0, d)
}

func TestDistanceKmCairoAlexandria(t *testing.T) {
	// Cairo to Alexandria is roughly 179 km as the crow flies.
	d := DistanceKm(30.0444, 31.2357, 31.2001, 29.9187)
	assert.InDelta(t, 179.0, d, 2.0)
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := DistanceKm(30.0444, 31.2357, 31.2001, 29.9187)
	b := DistanceKm(31.2001, 29.9187, 30.0444, 31.2357)
	assert.InDelta(t, a, b, 1e-9)
}

type site struct {
	name string
	lat  float64
	lng  float64
}

func TestWithinRadiusExcludesFarCandidates(t *testing.T) {
	origin := Point{Latitude: 30.0444, Longitude: 31.2357}
	candidates := []site{
		{name: "same-spot", lat: 30.0444, lng: 31.2357},
		// ~15 km north of the origin (1 degree latitude is ~111 km).
		{name: "fifteen-km", lat: 30.1795, lng: 31.2357},
		// ~5 km north of the origin.
		{name: "five-km", lat: 30.0894, lng: 31.2357},
	}

	matches := WithinRadius(origin, candidates, 10, func(s site) Point {
		return Point{Latitude: s.lat, Longitude: s.lng}
	})

	require.Len(t, matches, 2)
	assert.Equal(t, "same-spot", matches[0].Item.name)
	assert.Equal(t, "five-km", matches[1].Item.name)
}

func TestWithinRadiusInclusiveBoundary(t *testing.T) {
	origin := Point{Latitude: 0, Longitude: 0}
	candidates := []site{{name: "on-origin", lat: 0, lng: 0}}

	matches := WithinRadius(origin, candidates, 0, func(s site) Point {
		return Point{Latitude: s.lat, Longitude: s.lng}
	})

	require.Len(t, matches, 1)
	assert.Equal(t, 0.0, matches[0].DistanceKm)
}

func TestWithinRadiusOrdersNearestFirst(t *testing.T) {
	origin := Point{Latitude: 30.0, Longitude: 31.0}
	candidates := []site{
		{name: "far", lat: 30.08, lng: 31.0},
		{name: "near", lat: 30.01, lng: 31.0},
		{name: "mid", lat: 30.04, lng: 31.0},
	}

	matches := WithinRadius(origin, candidates, 100, func(s site) Point {
		return Point{Latitude: s.lat, Longitude: s.lng}
	})

	require.Len(t, matches, 3)
	assert.Equal(t, "near", matches[0].Item.name)
	assert.Equal(t, "mid", matches[1].Item.name)
	assert.Equal(t, "far", matches[2].Item.name)
}
