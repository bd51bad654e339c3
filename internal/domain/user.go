package domain

import "time"

// GeoPoint - plain latitude/longitude pair
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LocationHistoryEntry - one recorded position of a user
type LocationHistoryEntry struct {
	Location  GeoPoint  `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}

type NotificationSettings struct {
	NewPosts          bool `json:"new_posts"`
	ProximityAlerts   bool `json:"proximity_alerts"`
	AIRecommendations bool `json:"ai_recommendations"`
}

type PrivacySettings struct {
	ShareLocationHistory bool `json:"share_location_history"`
}

// User - city app account
type User struct {
	ID                   string                 `json:"id,omitempty"`
	FullName             string                 `json:"full_name"`
	Email                string                 `json:"email"`
	Role                 string                 `json:"role"`
	PreferredCategories  []string               `json:"preferred_categories,omitempty"`
	Language             string                 `json:"language"`
	Location             *GeoPoint              `json:"location,omitempty"`
	LocationHistory      []LocationHistoryEntry `json:"location_history,omitempty"`
	NotificationSettings NotificationSettings   `json:"notification_settings"`
	Privacy              PrivacySettings        `json:"privacy"`
	ProfileImageURL      *string                `json:"profile_image_url,omitempty"`
	Bio                  *string                `json:"bio,omitempty"`
	Followers            []string               `json:"followers,omitempty"`
	Following            []string               `json:"following,omitempty"`
	CreatedAt            time.Time              `json:"created_at"`
}
