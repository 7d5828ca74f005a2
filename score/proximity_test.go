package score

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wanderhub/wanderhub-api/schema"
)

var origin = schema.Location{Latitude: 28.6139, Longitude: 77.2090}

// destinationAtKm builds a destination due north of origin at an exact
// haversine distance.
func destinationAtKm(name string, km float64) schema.Destination {
	return schema.Destination{
		ID:        name,
		Name:      name,
		Category:  schema.CategoryOther,
		Latitude:  origin.Latitude + (km/6371)*180/math.Pi,
		Longitude: origin.Longitude,
	}
}

func TestWithinRadiusFiltersAndSorts(t *testing.T) {
	candidates := []schema.Destination{
		destinationAtKm("mid", 20),
		destinationAtKm("far", 60),
		destinationAtKm("near", 5),
	}

	nearby := WithinRadius(origin, candidates, NearbyRadiusKm)

	assert.Len(t, nearby, 2)
	assert.Equal(t, "near", nearby[0].Name)
	assert.Equal(t, "mid", nearby[1].Name)
	assert.InDelta(t, 5, nearby[0].Distance, 1e-6)
	assert.InDelta(t, 20, nearby[1].Distance, 1e-6)
}

func TestWithinRadiusBoundary(t *testing.T) {
	candidates := []schema.Destination{
		destinationAtKm("edge", 49.999),
		destinationAtKm("past", 50.001),
	}

	nearby := WithinRadius(origin, candidates, NearbyRadiusKm)

	assert.Len(t, nearby, 1)
	assert.Equal(t, "edge", nearby[0].Name)
}

func TestWithinRadiusEmptyInput(t *testing.T) {
	assert.Empty(t, WithinRadius(origin, nil, NearbyRadiusKm))
}

func TestCoarseBoxIsSuperset(t *testing.T) {
	// anything the exact phase keeps at the 50 km radius must fall
	// inside the 0.5 degree coarse box
	for km := 1.0; km <= 50; km += 7 {
		d := destinationAtKm("probe", km)
		assert.LessOrEqual(t, math.Abs(d.Latitude-origin.Latitude), CoarseRadiusDegrees)
		assert.LessOrEqual(t, math.Abs(d.Longitude-origin.Longitude), CoarseRadiusDegrees)
	}
}
