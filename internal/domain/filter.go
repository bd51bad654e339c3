package domain

import (
	"strings"
	"time"
)

// Time filter values understood by post queries
const (
	TimeFilterToday     = "today"
	TimeFilterThisWeek  = "this week"
	TimeFilterThisMonth = "this month"
)

// StructuredFilter - search intent extracted from a free-text query.
// Field names follow the JSON contract of the translation prompt; null
// values unmarshal to zero values.
type StructuredFilter struct {
	PostTypes    []string `json:"post_types"`
	Keywords     []string `json:"keywords"`
	Categories   []string `json:"categories"`
	TimeFilter   string   `json:"time_filter"`
	LocationType string   `json:"location_type"`
}

// WantsNearby reports whether the query asked for proximity ranking
func (f *StructuredFilter) WantsNearby() bool {
	return strings.EqualFold(f.LocationType, "nearby")
}

// TimeWindowStart resolves a time filter to the start of its window:
// midnight today, midnight Monday of the current week, or midnight on
// the first of the current month. Unknown values report false.
func TimeWindowStart(timeFilter string, now time.Time) (time.Time, bool) {
	switch strings.ToLower(timeFilter) {
	case TimeFilterToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), true
	case TimeFilterThisWeek:
		offset := (int(now.Weekday()) + 6) % 7 // Monday-based
		monday := now.AddDate(0, 0, -offset)
		y, m, d := monday.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), true
	case TimeFilterThisMonth:
		y, m, _ := now.Date()
		return time.Date(y, m, 1, 0, 0, 0, 0, now.Location()), true
	}
	return time.Time{}, false
}
