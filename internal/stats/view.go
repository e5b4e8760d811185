package stats

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"burgerlog/internal/models"
)

// SortMode selects the ordering applied by BuildView.
type SortMode string

const (
	SortRecent SortMode = "recent"
	SortRating SortMode = "rating"
	SortName   SortMode = "name"
)

// UserAll disables the per-user filter.
const UserAll = "all"

// Query carries the user-selected search, filter and sort settings for the
// place list view.
type Query struct {
	Search string
	User   string // UserAll or one of the two fixed identities
	Sort   SortMode
}

// Place names are Spanish-leaning; collate accent-aware instead of byte-wise.
var nameCollator = collate.New(language.Spanish)

// BuildView filters and orders places for display. Search matches the place
// name case-insensitively as a substring; the user filter keeps only places
// with at least one rating from that user; both combine with logical AND and
// apply before sorting.
//
// Unlike the leaderboard, rating sort does not drop unrated places: they
// score 0 and sink to the bottom.
func BuildView(places []models.Place, ratings []models.Rating, q Query) []models.Place {
	byPlace := make(map[string][]models.Rating)
	for _, r := range ratings {
		byPlace[r.PlaceID] = append(byPlace[r.PlaceID], r)
	}

	view := make([]models.Place, 0, len(places))
	for _, p := range places {
		if q.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Search)) {
			continue
		}
		if q.User != "" && q.User != UserAll {
			if !hasRatingFrom(byPlace[p.ID], q.User) {
				continue
			}
		}
		view = append(view, p)
	}

	switch q.Sort {
	case SortName:
		sort.SliceStable(view, func(i, j int) bool {
			return nameCollator.CompareString(view[i].Name, view[j].Name) < 0
		})
	case SortRating:
		scores := make(map[string]float64, len(view))
		for _, p := range view {
			scores[p.ID] = CombinedPlaceScore(byPlace[p.ID])
		}
		sort.SliceStable(view, func(i, j int) bool {
			return scores[view[i].ID] > scores[view[j].ID]
		})
	default: // SortRecent
		sort.SliceStable(view, func(i, j int) bool {
			return view[i].CreatedAt.After(view[j].CreatedAt)
		})
	}

	return view
}

func hasRatingFrom(ratings []models.Rating, user string) bool {
	for _, r := range ratings {
		if r.UserName == user {
			return true
		}
	}
	return false
}
