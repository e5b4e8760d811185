package stats

import "burgerlog/internal/models"

// Category identifies one scored flavor category.
type Category string

const (
	CategoryMeat      Category = "meat"
	CategoryCheese    Category = "cheese"
	CategoryJuiciness Category = "juiciness"
	CategoryBread     Category = "bread"
	CategorySauce     Category = "sauce"
	CategoryFries     Category = "fries"
)

// MandatoryCategories lists the five always-present categories in display
// order. The order doubles as the tie-break for FavoriteCategory.
var MandatoryCategories = []Category{
	CategoryMeat,
	CategoryCheese,
	CategoryJuiciness,
	CategoryBread,
	CategorySauce,
}

// Summary holds aggregate statistics for one group of ratings.
//
// An empty group has the zero value: Count 0, Average 0, no per-category
// entries. Consumers must check Count before treating Average as meaningful;
// 0 with Count 0 means "no data", not "lowest possible score".
type Summary struct {
	Count       int                  `json:"count"`
	Average     float64              `json:"average"`
	PerCategory map[Category]float64 `json:"per_category,omitempty"`
}

// Summarize aggregates a group of ratings into count, mean normalized score
// and per-category means. The fries average divides by the number of ratings
// that actually supplied a fries score, since absence is optional rather
// than zero; the key is only present when at least one rating supplied it.
func Summarize(ratings []models.Rating) Summary {
	if len(ratings) == 0 {
		return Summary{}
	}

	var scoreSum float64
	var meat, cheese, juiciness, bread, sauce int
	var fries, friesCount int
	for _, r := range ratings {
		scoreSum += Score(r)
		meat += r.Meat
		cheese += r.Cheese
		juiciness += r.Juiciness
		bread += r.Bread
		sauce += r.Sauce
		if r.Fries != nil {
			fries += *r.Fries
			friesCount++
		}
	}

	n := float64(len(ratings))
	perCategory := map[Category]float64{
		CategoryMeat:      float64(meat) / n,
		CategoryCheese:    float64(cheese) / n,
		CategoryJuiciness: float64(juiciness) / n,
		CategoryBread:     float64(bread) / n,
		CategorySauce:     float64(sauce) / n,
	}
	if friesCount > 0 {
		perCategory[CategoryFries] = float64(fries) / float64(friesCount)
	}

	return Summary{
		Count:       len(ratings),
		Average:     scoreSum / n,
		PerCategory: perCategory,
	}
}

// GroupByUser buckets ratings by user name and summarizes each bucket.
func GroupByUser(ratings []models.Rating) map[string]Summary {
	return groupBy(ratings, func(r models.Rating) string { return r.UserName })
}

// GroupByPlace buckets ratings by the place they belong to (via the rating's
// visit/burger chain) and summarizes each bucket.
func GroupByPlace(ratings []models.Rating) map[string]Summary {
	return groupBy(ratings, func(r models.Rating) string { return r.PlaceID })
}

// GroupByBurger buckets ratings by burger and summarizes each bucket.
// Ratings without a burger reference are skipped.
func GroupByBurger(ratings []models.Rating) map[string]Summary {
	groups := make(map[string][]models.Rating)
	for _, r := range ratings {
		if r.BurgerID == "" {
			continue
		}
		groups[r.BurgerID] = append(groups[r.BurgerID], r)
	}
	return summarizeGroups(groups)
}

func groupBy(ratings []models.Rating, key func(models.Rating) string) map[string]Summary {
	groups := make(map[string][]models.Rating)
	for _, r := range ratings {
		groups[key(r)] = append(groups[key(r)], r)
	}
	return summarizeGroups(groups)
}

func summarizeGroups(groups map[string][]models.Rating) map[string]Summary {
	out := make(map[string]Summary, len(groups))
	for k, rs := range groups {
		out[k] = Summarize(rs)
	}
	return out
}

// CombinedPlaceScore computes a place's display score from the ratings that
// belong to it: the mean of each user's own average, so both users weigh
// equally regardless of how many separate burgers or visits they rated.
// With a single contributor the result is that user's average; with no
// ratings it is 0.
func CombinedPlaceScore(ratings []models.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}

	var sum float64
	var users int
	for _, user := range models.Users() {
		var userSum float64
		var n int
		for _, r := range ratings {
			if r.UserName == user {
				userSum += Score(r)
				n++
			}
		}
		if n > 0 {
			sum += userSum / float64(n)
			users++
		}
	}
	if users == 0 {
		return 0
	}
	return sum / float64(users)
}

// FavoriteCategory returns the mandatory category with the highest average
// in the summary. Ties keep the earlier category in MandatoryCategories
// order. An empty summary falls back to meat.
func FavoriteCategory(s Summary) Category {
	best := CategoryMeat
	bestAvg := s.PerCategory[CategoryMeat]
	for _, c := range MandatoryCategories[1:] {
		if s.PerCategory[c] > bestAvg {
			best = c
			bestAvg = s.PerCategory[c]
		}
	}
	return best
}
