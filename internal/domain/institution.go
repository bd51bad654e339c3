package domain

import "time"

// Institution - organization that publishes posts on the platform
type Institution struct {
	ID            string    `json:"id,omitempty"`
	OwnerID       string    `json:"owner_id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Description   *string   `json:"description,omitempty"`
	LogoURL       *string   `json:"logo_url,omitempty"`
	Lat           float64   `json:"lat"`
	Lng           float64   `json:"lng"`
	Location      string    `json:"location"`
	POIID         *string   `json:"poi_id,omitempty"`
	Region        string    `json:"region"`
	Website       *string   `json:"website,omitempty"`
	ContactEmail  *string   `json:"contact_email,omitempty"`
	CoverImageURL *string   `json:"cover_image_url,omitempty"`
	Verified      bool      `json:"verified"`
	CreatedAt     time.Time `json:"created_at"`
}
