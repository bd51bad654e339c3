package domain

import "time"

// Post type values
const (
	PostTypeJob        = "job"
	PostTypeInternship = "internship"
	PostTypeEvent      = "event"
	PostTypeNews       = "news"
)

// Visibility values
const (
	VisibilityPublic     = "public"
	VisibilityNearbyOnly = "nearby_only"
	VisibilityFollowers  = "followers"
)

// MapLocation - labeled point a post is pinned to
type MapLocation struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// SmartSuggestions - AI-produced companions of a post
type SmartSuggestions struct {
	SuggestedTags []string `json:"suggested_tags,omitempty"`
	RelatedPosts  []string `json:"related_posts,omitempty"`
}

// InstitutionPost - content published by an institution. Geohash is
// derived from MapLocation at write time and always encodes it; the two
// fields change together.
type InstitutionPost struct {
	ID               string                 `json:"id,omitempty"`
	InstitutionID    string                 `json:"institution_id"`
	Title            string                 `json:"title"`
	Content          string                 `json:"content"`
	TypeOfPost       string                 `json:"type_of_post"`
	Tags             []string               `json:"tags,omitempty"`
	Sentiment        *string                `json:"sentiment,omitempty"`
	POIID            *string                `json:"poi_id,omitempty"`
	Categories       []string               `json:"categories,omitempty"`
	ImageURL         *string                `json:"image_url,omitempty"`
	Visibility       string                 `json:"visibility"`
	MapLocation      *MapLocation           `json:"map_location,omitempty"`
	Geohash          string                 `json:"geohash,omitempty"`
	SmartSuggestions *SmartSuggestions      `json:"smart_suggestions,omitempty"`
	Summary          *string                `json:"summary,omitempty"`
	Details          map[string]interface{} `json:"details,omitempty"`
	PublishedAt      time.Time              `json:"published_at"`
	CreatedAt        time.Time              `json:"created_at"`
}

// RelatedPostsCount - popularity proxy used by sort=popular
func (p *InstitutionPost) RelatedPostsCount() int {
	if p.SmartSuggestions == nil {
		return 0
	}
	return len(p.SmartSuggestions.RelatedPosts)
}

// RankedPost - post annotated with the distance from a search origin,
// meters. The distance is transient and never persisted.
type RankedPost struct {
	InstitutionPost
	Distance float64 `json:"distance,omitempty"`
}
