package domain

import "time"

// POI - named point of interest with a coverage radius
type POI struct {
	ID            string    `json:"id,omitempty"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	Lat           float64   `json:"lat"`
	Lng           float64   `json:"lng"`
	Location      string    `json:"location"`
	RadiusM       float64   `json:"radius_m"`
	Type          string    `json:"type"`
	Tags          []string  `json:"tags,omitempty"`
	CoverImageURL *string   `json:"cover_image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
