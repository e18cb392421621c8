package service

import (
	"strings"

	"roomfinder/internal/model"
)

// Translator resolves a display label for a key, returning the key
// unchanged when no translation exists
type Translator func(key string) string

// IdentityTranslator returns every key untranslated
func IdentityTranslator(key string) string { return key }

var genderAliases = map[string][]string{
	model.GenderBoy:  {"boy", "boys", "male"},
	model.GenderGirl: {"girl", "girls", "female"},
}

// MatchesCategory reports whether a room belongs to the requested category.
// roomType is compared exactly against the canonical and translated labels;
// rooms is searched case-insensitively for either label as a substring
func MatchesCategory(room *model.Room, category string, translate Translator) bool {
	if category == "" || category == model.CategoryAll {
		return true
	}
	if translate == nil {
		translate = IdentityTranslator
	}
	translated := translate(category)
	if translated == "" {
		translated = category
	}

	roomType := model.StringValue(room.RoomType)
	if roomType == category || roomType == translated {
		return true
	}

	rooms := strings.ToLower(model.StringValue(room.Rooms))
	if rooms == "" {
		return false
	}
	return strings.Contains(rooms, strings.ToLower(category)) ||
		strings.Contains(rooms, strings.ToLower(translated))
}

// MatchesGender reports whether a room's free-text gender fits the selector.
// "boy" and "girl" accept their common spellings; any other selector must
// equal the gender case-insensitively
func MatchesGender(room *model.Room, selected string) bool {
	return matchesGenderText(room.Gender, selected)
}

func matchesGenderText(gender *string, selected string) bool {
	selected = strings.TrimSpace(selected)
	if selected == "" {
		return true
	}

	normalized := strings.ToLower(strings.TrimSpace(model.StringValue(gender)))
	if aliases, ok := genderAliases[selected]; ok {
		for _, a := range aliases {
			if normalized == a {
				return true
			}
		}
		return false
	}

	return strings.EqualFold(normalized, selected)
}
