package utils

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FeatureRule maps a keyword predicate to a canonical feature label.
// The predicate receives the lower-cased, trimmed feature text
type FeatureRule struct {
	Label   string
	Matches func(s string) bool
}

// featureRules is evaluated in order; the first matching rule wins
var featureRules = []FeatureRule{
	{"Wi-Fi", containsAny("wifi")},
	{"Hot Water", func(s string) bool {
		return strings.Contains(s, "geyser") || s == "hot water" || strings.Contains(s, "solar")
	}},
	{"Cupboard", containsAny("cupboard", "cubert")},
	{"Bed/Mattress", containsAny("bed", "mattress")},
	{"Shoe Stand", containsAny("shoe stand", "shoes stand", "shoe-stand", "shoestand")},
	{"Emergency Light", containsAny("charging bulb")},
	{"Drinking Water", containsAny("aqua", "water jar", "drinking water")},
	{"Owner's Mess", containsAll("owner", "mess")},
	{"Nearby Mess", func(s string) bool {
		return (strings.Contains(s, "near") || strings.Contains(s, "neighbour")) && strings.Contains(s, "mess")
	}},
	{"Parking", containsAny("parking")},
	{"Terrace Access", containsAny("terrace")},
	{"Parents Allowed", containsAny("parents")},
	{"Group Study Allowed", containsAny("group stud")},
	{"New Room", containsAny("new room")},
	{"Separate Light Meter", containsAll("light bill", "meter")},
	{"Cooking Allowed", containsAny("induction", "cooking")},
	{"Dressing Table", containsAny("dressing")},
	{"CCTV Camera", containsAny("cctv")},
}

// FeatureRules returns a copy of the ordered normalization rules
func FeatureRules() []FeatureRule {
	rules := make([]FeatureRule, len(featureRules))
	copy(rules, featureRules)
	return rules
}

// NormalizeFeature maps a free-text amenity to its canonical label.
// Unknown amenities are returned in title case; empty input yields ""
func NormalizeFeature(feature string) string {
	trimmed := strings.TrimSpace(feature)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)
	for _, rule := range featureRules {
		if rule.Matches(lower) {
			return rule.Label
		}
	}

	return titleWords(lower)
}

// titleWords upper-cases the first rune of each whitespace-separated word
// and leaves the rest as given. Hyphens, digits and apostrophes do not
// start a new word
func titleWords(s string) string {
	// Casers are stateful, so one is built per call
	upper := cases.Upper(language.Und)

	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if r == utf8.RuneError {
			continue
		}
		words[i] = upper.String(string(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func containsAny(keywords ...string) func(string) bool {
	return func(s string) bool {
		for _, k := range keywords {
			if strings.Contains(s, k) {
				return true
			}
		}
		return false
	}
}

func containsAll(keywords ...string) func(string) bool {
	return func(s string) bool {
		for _, k := range keywords {
			if !strings.Contains(s, k) {
				return false
			}
		}
		return true
	}
}
