package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wanderhub/wanderhub-api/schema"
)

func TestTemplePlace(t *testing.T) {
	types := []string{"establishment",
		"place_of_worship",
		"point_of_interest",
	}

	category := ReadPlaceCategory(types)
	assert.Equal(t, schema.CategoryTemples, category)
}

func TestBeachPlace(t *testing.T) {
	types := []string{"establishment",
		"beach",
		"natural_feature",
		"point_of_interest",
	}

	category := ReadPlaceCategory(types)
	assert.Equal(t, schema.CategoryBeaches, category)
}

func TestListOrderWins(t *testing.T) {
	// natural_feature appears before park, so nature wins even though
	// both have mappings
	types := []string{"natural_feature",
		"park",
		"point_of_interest",
	}

	category := ReadPlaceCategory(types)
	assert.Equal(t, schema.CategoryNature, category)
}

func TestHillPlaceByHikingArea(t *testing.T) {
	types := []string{"establishment",
		"hiking_area",
		"point_of_interest",
	}

	category := ReadPlaceCategory(types)
	assert.Equal(t, schema.CategoryHills, category)
}

func TestRestaurantPlace(t *testing.T) {
	types := []string{"establishment",
		"food",
		"point_of_interest",
		"restaurant",
	}

	category := ReadPlaceCategory(types)
	assert.Equal(t, schema.CategoryRestaurants, category)
}

func TestUnknownPlace(t *testing.T) {
	types := []string{"establishment",
		"point_of_interest",
	}

	category := ReadPlaceCategory(types)
	assert.Equal(t, schema.CategoryOther, category)
}

func TestNoTypes(t *testing.T) {
	category := ReadPlaceCategory(nil)
	assert.Equal(t, schema.CategoryOther, category)
}
