package score

import (
	"sort"

	"github.com/wanderhub/wanderhub-api/schema"
)

// RankByDistance is the generic search ranking profile: ascending
// distance, nothing else. The notification path applies the richer
// NearbyScore profile instead; the two are kept as separate named
// profiles on purpose.
func RankByDistance(candidates []schema.ScoredDestination) []schema.ScoredDestination {
	ranked := make([]schema.ScoredDestination, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})

	return ranked
}
