package stats

import (
	"math"
	"sort"
	"time"

	"burgerlog/internal/models"
)

// ConsecutiveDayStreak counts consecutive calendar days with at least one
// event, walking backward from the most recent recorded day. Timestamps are
// reduced to distinct local calendar dates; the most recent day counts as 1
// and the walk stops at the first gap of two or more days.
//
// The streak is deliberately not anchored to "today": if the latest entry is
// in the past the streak still counts backward from that date.
func ConsecutiveDayStreak(times []time.Time) int {
	if len(times) == 0 {
		return 0
	}

	seen := make(map[time.Time]struct{})
	for _, t := range times {
		seen[dayOf(t)] = struct{}{}
	}

	days := make([]time.Time, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 1
	for i := 0; i < len(days)-1; i++ {
		if days[i].AddDate(0, 0, -1).Equal(days[i+1]) {
			streak++
		} else {
			break
		}
	}
	return streak
}

// DaysSinceJointVisit returns the number of whole days since the most recent
// place rated by both users. A place qualifies once each fixed identity has
// at least one rating attached to it; the place's creation timestamp stands
// in for "when jointly visited". The second result is false when no place
// qualifies.
func DaysSinceJointVisit(places []models.Place, ratings []models.Rating, now time.Time) (int, bool) {
	byPlace := make(map[string][]models.Rating)
	for _, r := range ratings {
		byPlace[r.PlaceID] = append(byPlace[r.PlaceID], r)
	}

	var latest time.Time
	found := false
	for _, p := range places {
		rs := byPlace[p.ID]
		hasLolo, hasDavid := false, false
		for _, r := range rs {
			switch r.UserName {
			case models.UserLolo:
				hasLolo = true
			case models.UserDavid:
				hasDavid = true
			}
		}
		if !hasLolo || !hasDavid {
			continue
		}
		if !found || p.CreatedAt.After(latest) {
			latest = p.CreatedAt
			found = true
		}
	}
	if !found {
		return 0, false
	}

	return int(math.Floor(now.Sub(latest).Hours() / 24)), true
}

// dayOf normalizes a timestamp to its local calendar date, represented as
// midnight UTC so that AddDate arithmetic is immune to DST transitions.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
