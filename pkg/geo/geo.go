// Package geo computes great-circle distances and radius filters for
// proximity matching. All functions are pure; coordinate range checks are
// a caller-side validation concern.
package geo

import (
	"math"
	"sort"
)

const EarthRadiusKm = 6371.0

type Point struct {
	Latitude  float64
	Longitude float64
}

// DistanceKm returns the Haversine great-circle distance in kilometers.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// Match pairs a candidate with its distance from the origin.
type Match[T any] struct {
	Item       T
	DistanceKm float64
}

// WithinRadius keeps candidates whose distance from origin is at most
// radiusKm (inclusive), ordered nearest first.
func WithinRadius[T any](origin Point, candidates []T, radiusKm float64, location func(T) Point) []Match[T] {
	matches := make([]Match[T], 0, len(candidates))
	for _, candidate := range candidates {
		p := location(candidate)
		d := DistanceKm(origin.Latitude, origin.Longitude, p.Latitude, p.Longitude)
		if d <= radiusKm {
			matches = append(matches, Match[T]{Item: candidate, DistanceKm: d})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})

	return matches
}
