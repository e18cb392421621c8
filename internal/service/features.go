package service

import (
	"sort"

	"roomfinder/internal/model"
	"roomfinder/internal/utils"
)

// AvailableFeatures collects the canonical labels of every feature present
// across the rooms, sorted and without duplicates
func AvailableFeatures(rooms []*model.Room) []string {
	set := make(map[string]struct{})
	for _, room := range rooms {
		if room == nil {
			continue
		}
		for _, f := range room.Features {
			if f == "" {
				continue
			}
			if label := utils.NormalizeFeature(f); label != "" {
				set[label] = struct{}{}
			}
		}
	}

	features := make([]string, 0, len(set))
	for label := range set {
		features = append(features, label)
	}
	sort.Strings(features)
	return features
}
