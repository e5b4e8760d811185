package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"burgerlog/internal/models"
)

func day(offset int) time.Time {
	base := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.Local)
	return base.AddDate(0, 0, offset)
}

func TestConsecutiveDayStreak(t *testing.T) {
	tests := []struct {
		name  string
		times []time.Time
		want  int
	}{
		{name: "empty", times: nil, want: 0},
		{name: "single day", times: []time.Time{day(0)}, want: 1},
		{name: "three consecutive days", times: []time.Time{day(0), day(-1), day(-2)}, want: 3},
		{name: "gap breaks the streak", times: []time.Time{day(0), day(-2)}, want: 1},
		{name: "gap after two days", times: []time.Time{day(0), day(-1), day(-3), day(-4)}, want: 2},
		{
			name:  "same day twice counts once",
			times: []time.Time{day(0), day(0).Add(3 * time.Hour), day(-1)},
			want:  2,
		},
		{
			name:  "unordered input",
			times: []time.Time{day(-2), day(0), day(-1)},
			want:  3,
		},
		{
			// Not anchored to today: a purely historical run still counts.
			name:  "historical streak",
			times: []time.Time{day(-100), day(-101)},
			want:  2,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ConsecutiveDayStreak(tc.times))
		})
	}
}

func TestDaysSinceJointVisitNoQualifyingPlace(t *testing.T) {
	places := []models.Place{{ID: "p1", CreatedAt: day(-3)}}
	ratings := []models.Rating{flat(models.UserLolo, "p1", 4)}

	_, ok := DaysSinceJointVisit(places, ratings, day(0))
	assert.False(t, ok)
}

func TestDaysSinceJointVisitToday(t *testing.T) {
	now := day(0)
	places := []models.Place{{ID: "p1", CreatedAt: now.Add(-2 * time.Hour)}}
	ratings := []models.Rating{
		flat(models.UserLolo, "p1", 4),
		flat(models.UserDavid, "p1", 3),
	}

	days, ok := DaysSinceJointVisit(places, ratings, now)
	assert.True(t, ok)
	assert.Equal(t, 0, days)
}

func TestDaysSinceJointVisitPicksMostRecent(t *testing.T) {
	now := day(0)
	places := []models.Place{
		{ID: "old", CreatedAt: day(-10)},
		{ID: "new", CreatedAt: day(-3)},
	}
	ratings := []models.Rating{
		flat(models.UserLolo, "old", 4), flat(models.UserDavid, "old", 4),
		flat(models.UserLolo, "new", 5), flat(models.UserDavid, "new", 2),
	}

	days, ok := DaysSinceJointVisit(places, ratings, now)
	assert.True(t, ok)
	assert.Equal(t, 3, days)
}

func TestDaysSinceJointVisitIgnoresHalfRatedPlaces(t *testing.T) {
	now := day(0)
	places := []models.Place{
		{ID: "joint", CreatedAt: day(-7)},
		{ID: "solo", CreatedAt: day(-1)}, // newer, but only Lolo rated it
	}
	ratings := []models.Rating{
		flat(models.UserLolo, "joint", 4), flat(models.UserDavid, "joint", 4),
		flat(models.UserLolo, "solo", 5),
	}

	days, ok := DaysSinceJointVisit(places, ratings, now)
	assert.True(t, ok)
	assert.Equal(t, 7, days)
}
