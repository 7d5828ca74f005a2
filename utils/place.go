package utils

import (
	"github.com/wanderhub/wanderhub-api/schema"
)

// placeCategories maps external place type tags to destination
// categories.
var placeCategories = map[string]string{
	"beach":              schema.CategoryBeaches,
	"natural_feature":    schema.CategoryNature,
	"park":               schema.CategoryParks,
	"tourist_attraction": schema.CategoryAttractions,
	"place_of_worship":   schema.CategoryTemples,
	"waterfall":          schema.CategoryWaterfalls,
	"mountain":           schema.CategoryHills,
	"hiking_area":        schema.CategoryHills,
	"campground":         schema.CategoryCamping,
	"museum":             schema.CategoryMuseums,
	"restaurant":         schema.CategoryRestaurants,
	"cafe":               schema.CategoryCafes,
}

// ReadPlaceCategory returns a destination category by analyzing a list
// of given place types. The provider's list order is authoritative: the
// first type with a mapping wins.
func ReadPlaceCategory(types []string) string {
	for _, t := range types {
		if category, ok := placeCategories[t]; ok {
			return category
		}
	}
	return schema.CategoryOther
}
