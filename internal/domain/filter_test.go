package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeWindowStart(t *testing.T) {
	// 2024-01-01 is a Monday, so the first week of January lines up
	// with the calendar month.
	wednesday := time.Date(2024, 1, 3, 15, 4, 5, 0, time.UTC)
	sunday := time.Date(2024, 1, 7, 23, 59, 59, 0, time.UTC)
	monday := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		timeFilter string
		now        time.Time
		want       time.Time
		ok         bool
	}{
		{
			name:       "today is midnight of the current day",
			timeFilter: TimeFilterToday,
			now:        wednesday,
			want:       time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			ok:         true,
		},
		{
			name:       "this week starts on Monday",
			timeFilter: TimeFilterThisWeek,
			now:        wednesday,
			want:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			ok:         true,
		},
		{
			name:       "sunday still belongs to the week begun last Monday",
			timeFilter: TimeFilterThisWeek,
			now:        sunday,
			want:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			ok:         true,
		},
		{
			name:       "monday is its own week start",
			timeFilter: TimeFilterThisWeek,
			now:        monday,
			want:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			ok:         true,
		},
		{
			name:       "this month starts on the first",
			timeFilter: TimeFilterThisMonth,
			now:        time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC),
			want:       time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			ok:         true,
		},
		{
			name:       "matching is case-insensitive",
			timeFilter: "This Week",
			now:        wednesday,
			want:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			ok:         true,
		},
		{
			name:       "unknown filter reports false",
			timeFilter: "yesterday",
			now:        wednesday,
			ok:         false,
		},
		{
			name:       "empty filter reports false",
			timeFilter: "",
			now:        wednesday,
			ok:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TimeWindowStart(tt.timeFilter, tt.now)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("window keeps the caller's location", func(t *testing.T) {
		wat := time.FixedZone("WAT", 3600)
		now := time.Date(2024, 1, 3, 0, 30, 0, 0, wat)

		got, ok := TimeWindowStart(TimeFilterToday, now)

		assert.True(t, ok)
		assert.Equal(t, wat, got.Location())
		assert.True(t, got.Equal(time.Date(2024, 1, 3, 0, 0, 0, 0, wat)))
	})
}

func TestStructuredFilter_WantsNearby(t *testing.T) {
	tests := []struct {
		locationType string
		want         bool
	}{
		{"nearby", true},
		{"NEARBY", true},
		{"city", false},
		{"", false},
	}

	for _, tt := range tests {
		f := &StructuredFilter{LocationType: tt.locationType}
		assert.Equal(t, tt.want, f.WantsNearby(), "location_type %q", tt.locationType)
	}
}
