package stats

import (
	"sort"

	"burgerlog/internal/models"
)

// RankedPlace pairs a place with its combined score for leaderboard display.
type RankedPlace struct {
	Place   models.Place `json:"place"`
	Score   float64      `json:"score"`
	Ratings int          `json:"ratings"`
}

// TopPlaces returns up to n places ordered by combined score, descending.
// Places with zero ratings never appear: a never-rated place cannot be on a
// leaderboard. When fewer than n places qualify, all of them are returned.
//
// Ties keep the input order of places (stable sort); callers should not rely
// on any particular tie order.
func TopPlaces(places []models.Place, ratings []models.Rating, n int) []RankedPlace {
	byPlace := make(map[string][]models.Rating)
	for _, r := range ratings {
		byPlace[r.PlaceID] = append(byPlace[r.PlaceID], r)
	}

	ranked := make([]RankedPlace, 0, len(places))
	for _, p := range places {
		rs := byPlace[p.ID]
		if len(rs) == 0 {
			continue
		}
		ranked = append(ranked, RankedPlace{
			Place:   p,
			Score:   CombinedPlaceScore(rs),
			Ratings: len(rs),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
