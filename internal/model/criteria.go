package model

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
)

// FilterCriteria is the immutable set of inputs to the room filter.
// FeatureFilters maps canonical feature labels to whether they are required;
// false entries are ignored by the filter but still part of the cache key
type FilterCriteria struct {
	SelectedGender string          `json:"selected_gender,omitempty"`
	Category       string          `json:"category,omitempty"`
	SearchText     string          `json:"search_text,omitempty"`
	FeatureFilters map[string]bool `json:"feature_filters,omitempty"`
	MaxPrice       float64         `json:"max_price"`
}

// RequiredFeatures returns the labels whose filter value is true, sorted
func (c FilterCriteria) RequiredFeatures() []string {
	required := make([]string, 0, len(c.FeatureFilters))
	for label, on := range c.FeatureFilters {
		if on {
			required = append(required, label)
		}
	}
	sort.Strings(required)
	return required
}

// CacheKey returns a stable digest over every criterion, including the
// full feature map in sorted order
func (c FilterCriteria) CacheKey() string {
	var b strings.Builder
	b.WriteString(strconv.Quote(c.SelectedGender))
	b.WriteByte('|')
	b.WriteString(strconv.Quote(c.Category))
	b.WriteByte('|')
	b.WriteString(strconv.Quote(c.SearchText))
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(c.MaxPrice, 'g', -1, 64))

	labels := make([]string, 0, len(c.FeatureFilters))
	for label := range c.FeatureFilters {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		b.WriteByte('|')
		b.WriteString(strconv.Quote(label))
		b.WriteByte('=')
		b.WriteString(strconv.FormatBool(c.FeatureFilters[label]))
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
