package score

import (
	"sort"

	"github.com/wanderhub/wanderhub-api/schema"
	"github.com/wanderhub/wanderhub-api/utils"
)

// CoarseRadiusDegrees bounds the cheap pre-filter that selects
// candidates before the exact haversine pass. 0.5 degrees is roughly
// 55 km at the equator, a deliberate overestimate of the 50 km serving
// radius so the coarse phase never drops a true positive.
const CoarseRadiusDegrees = 0.5

// NearbyRadiusKm is the exact-phase serving radius.
const NearbyRadiusKm = 50

// WithinRadius runs the exact phase of the proximity filter: it
// computes the haversine distance from origin for every candidate,
// keeps those within radiusKm, and returns them ordered ascending by
// distance. Equal distances keep the candidate set's prior order.
func WithinRadius(origin schema.Location, candidates []schema.Destination, radiusKm float64) []schema.ScoredDestination {
	nearby := make([]schema.ScoredDestination, 0, len(candidates))
	for _, d := range candidates {
		distance := utils.DistanceKm(origin, d.Location())
		if distance > radiusKm {
			continue
		}
		nearby = append(nearby, schema.ScoredDestination{
			Destination: d,
			Distance:    distance,
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].Distance < nearby[j].Distance
	})

	return nearby
}
