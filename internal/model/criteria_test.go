package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterCriteria_RequiredFeatures(t *testing.T) {
	c := FilterCriteria{FeatureFilters: map[string]bool{"Wi-Fi": true, "Parking": false, "CCTV Camera": true}}
	assert.Equal(t, []string{"CCTV Camera", "Wi-Fi"}, c.RequiredFeatures())
	assert.Empty(t, FilterCriteria{}.RequiredFeatures())
}

func TestFilterCriteria_CacheKey(t *testing.T) {
	base := FilterCriteria{
		SelectedGender: "boy",
		Category:       "1 RK",
		SearchText:     "room",
		FeatureFilters: map[string]bool{"Wi-Fi": true, "Parking": true, "Bed/Mattress": false},
		MaxPrice:       6000,
	}
	key := base.CacheKey()
	assert.Len(t, key, 64)

	for i := 0; i < 20; i++ {
		same := FilterCriteria{
			SelectedGender: "boy",
			Category:       "1 RK",
			SearchText:     "room",
			FeatureFilters: map[string]bool{"Bed/Mattress": false, "Parking": true, "Wi-Fi": true},
			MaxPrice:       6000,
		}
		assert.Equal(t, key, same.CacheKey(), "map order must not change the key")
	}

	variants := map[string]FilterCriteria{
		"gender":        {SelectedGender: "girl", Category: "1 RK", SearchText: "room", FeatureFilters: base.FeatureFilters, MaxPrice: 6000},
		"category":      {SelectedGender: "boy", Category: "1 BHK", SearchText: "room", FeatureFilters: base.FeatureFilters, MaxPrice: 6000},
		"search":        {SelectedGender: "boy", Category: "1 RK", SearchText: "rooms", FeatureFilters: base.FeatureFilters, MaxPrice: 6000},
		"price":         {SelectedGender: "boy", Category: "1 RK", SearchText: "room", FeatureFilters: base.FeatureFilters, MaxPrice: 6001},
		"false entry":   {SelectedGender: "boy", Category: "1 RK", SearchText: "room", FeatureFilters: map[string]bool{"Wi-Fi": true, "Parking": true}, MaxPrice: 6000},
		"field overlap": {SelectedGender: "boy|", Category: "1 RK", SearchText: "room", FeatureFilters: base.FeatureFilters, MaxPrice: 6000},
	}
	for name, v := range variants {
		assert.NotEqual(t, key, v.CacheKey(), name)
	}
}
