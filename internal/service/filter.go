package service

import (
	"strings"

	"roomfinder/internal/model"
	"roomfinder/internal/utils"
)

// FilterRooms returns the rooms that satisfy every criterion, in input order.
// It never mutates its inputs and is safe for concurrent use
func FilterRooms(rooms []*model.Room, criteria model.FilterCriteria, translate Translator) []*model.Room {
	if translate == nil {
		translate = IdentityTranslator
	}
	search := strings.ToLower(criteria.SearchText)
	required := criteria.RequiredFeatures()

	results := make([]*model.Room, 0, len(rooms))
	for _, room := range rooms {
		if room == nil {
			continue
		}
		if !MatchesGender(room, criteria.SelectedGender) {
			continue
		}
		if !MatchesCategory(room, criteria.Category, translate) {
			continue
		}
		if !matchesSearch(room.Title, search) {
			continue
		}
		if !withinPrice(room.Rent, criteria.MaxPrice) {
			continue
		}
		if !hasFeatures(room.Features, required) {
			continue
		}
		results = append(results, room)
	}

	return results
}

// FilterMesses applies the gender, text search and price ceiling criteria
// to mess listings. Category and feature filters do not apply to messes
func FilterMesses(messes []*model.Mess, criteria model.FilterCriteria) []*model.Mess {
	search := strings.ToLower(criteria.SearchText)

	results := make([]*model.Mess, 0, len(messes))
	for _, mess := range messes {
		if mess == nil {
			continue
		}
		if !matchesGenderText(mess.Gender, criteria.SelectedGender) {
			continue
		}
		if !matchesSearch(mess.Title, search) {
			continue
		}
		if !withinPrice(mess.MonthlyCharge, criteria.MaxPrice) {
			continue
		}
		results = append(results, mess)
	}

	return results
}

// matchesSearch expects search to be lower-cased already. A missing title
// never matches, even for an empty search
func matchesSearch(title *string, search string) bool {
	if title == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*title), search)
}

// withinPrice lets a missing or zero price through unconditionally
func withinPrice(price *float64, maxPrice float64) bool {
	if price == nil || *price == 0 {
		return true
	}
	return *price <= maxPrice
}

func hasFeatures(features []string, required []string) bool {
	if len(required) == 0 {
		return true
	}

	present := make(map[string]struct{}, len(features))
	for _, f := range features {
		if label := utils.NormalizeFeature(f); label != "" {
			present[label] = struct{}{}
		}
	}
	for _, label := range required {
		if _, ok := present[label]; !ok {
			return false
		}
	}
	return true
}
