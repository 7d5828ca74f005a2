package utils

import (
	"math"
	"sort"

	"github.com/wanderhub/wanderhub-api/schema"
)

const earthRadiusKm = 6371

// DistanceKm returns the great-circle distance between two coordinates
// using the haversine formula on a mean earth radius of 6371 km. The
// result is symmetric in its arguments. Identical coordinates yield a
// value that may be a tiny positive number rather than exactly zero;
// callers must not assert exact zero.
func DistanceKm(a, b schema.Location) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// SortByDistance orders items ascending by their distance from origin.
// Items whose coordinate cannot be resolved sort last. The sort is
// stable so equal distances keep their input order.
func SortByDistance[T any](origin schema.Location, items []T, coordinate func(T) *schema.Location) []T {
	distances := make([]float64, len(items))
	for i, item := range items {
		loc := coordinate(item)
		if loc == nil {
			distances[i] = math.Inf(1)
			continue
		}
		distances[i] = DistanceKm(origin, *loc)
	}

	indexes := make([]int, len(items))
	for i := range indexes {
		indexes[i] = i
	}
	sort.SliceStable(indexes, func(i, j int) bool {
		return distances[indexes[i]] < distances[indexes[j]]
	})

	sorted := make([]T, len(items))
	for i, idx := range indexes {
		sorted[i] = items[idx]
	}
	return sorted
}
