package dto

import (
	"time"

	"github.com/citypulse-backend/internal/domain"
)

// CreateUserRequest - payload for creating a user profile
type CreateUserRequest struct {
	ID                   string                       `json:"id,omitempty"`
	FullName             string                       `json:"full_name" validate:"required,min=1,max=200"`
	Email                string                       `json:"email" validate:"required,email"`
	Role                 string                       `json:"role,omitempty"`
	PreferredCategories  []string                     `json:"preferred_categories,omitempty"`
	Language             string                       `json:"language,omitempty"`
	Location             *domain.GeoPoint             `json:"location,omitempty"`
	NotificationSettings *domain.NotificationSettings `json:"notification_settings,omitempty"`
	Privacy              *domain.PrivacySettings      `json:"privacy,omitempty"`
	ProfileImageURL      string                       `json:"profile_image_url,omitempty"`
	Bio                  string                       `json:"bio,omitempty"`
}

// UpdateUserRequest - partial user update, nil fields are left untouched
type UpdateUserRequest struct {
	FullName             *string                      `json:"full_name,omitempty" validate:"omitempty,min=1,max=200"`
	Email                *string                      `json:"email,omitempty" validate:"omitempty,email"`
	Role                 *string                      `json:"role,omitempty"`
	PreferredCategories  []string                     `json:"preferred_categories,omitempty"`
	Language             *string                      `json:"language,omitempty"`
	Location             *domain.GeoPoint             `json:"location,omitempty"`
	NotificationSettings *domain.NotificationSettings `json:"notification_settings,omitempty"`
	Privacy              *domain.PrivacySettings      `json:"privacy,omitempty"`
	ProfileImageURL      *string                      `json:"profile_image_url,omitempty"`
	Bio                  *string                      `json:"bio,omitempty"`
}

// Attrs returns only the fields present in the update.
func (r UpdateUserRequest) Attrs() map[string]interface{} {
	attrs := make(map[string]interface{})
	if r.FullName != nil {
		attrs["full_name"] = *r.FullName
	}
	if r.Email != nil {
		attrs["email"] = *r.Email
	}
	if r.Role != nil {
		attrs["role"] = *r.Role
	}
	if r.PreferredCategories != nil {
		attrs["preferred_categories"] = r.PreferredCategories
	}
	if r.Language != nil {
		attrs["language"] = *r.Language
	}
	if r.Location != nil {
		attrs["location"] = r.Location
	}
	if r.NotificationSettings != nil {
		attrs["notification_settings"] = r.NotificationSettings
	}
	if r.Privacy != nil {
		attrs["privacy"] = r.Privacy
	}
	if r.ProfileImageURL != nil {
		attrs["profile_image_url"] = *r.ProfileImageURL
	}
	if r.Bio != nil {
		attrs["bio"] = *r.Bio
	}
	return attrs
}

// CreatePOIRequest - payload for creating a point of interest
type CreatePOIRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=200"`
	Description   string   `json:"description,omitempty"`
	Lat           float64  `json:"lat" validate:"min=-90,max=90"`
	Lng           float64  `json:"lng" validate:"min=-180,max=180"`
	Location      string   `json:"location,omitempty"`
	RadiusM       float64  `json:"radius_m,omitempty" validate:"omitempty,min=0"`
	Type          string   `json:"type,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	CoverImageURL string   `json:"cover_image_url,omitempty"`
}

// UpdatePOIRequest - partial POI update
type UpdatePOIRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description   *string  `json:"description,omitempty"`
	Lat           *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lng           *float64 `json:"lng,omitempty" validate:"omitempty,min=-180,max=180"`
	Location      *string  `json:"location,omitempty"`
	RadiusM       *float64 `json:"radius_m,omitempty" validate:"omitempty,min=0"`
	Type          *string  `json:"type,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	CoverImageURL *string  `json:"cover_image_url,omitempty"`
}

func (r UpdatePOIRequest) Attrs() map[string]interface{} {
	attrs := make(map[string]interface{})
	if r.Name != nil {
		attrs["name"] = *r.Name
	}
	if r.Description != nil {
		attrs["description"] = *r.Description
	}
	if r.Lat != nil {
		attrs["lat"] = *r.Lat
	}
	if r.Lng != nil {
		attrs["lng"] = *r.Lng
	}
	if r.Location != nil {
		attrs["location"] = *r.Location
	}
	if r.RadiusM != nil {
		attrs["radius_m"] = *r.RadiusM
	}
	if r.Type != nil {
		attrs["type"] = *r.Type
	}
	if r.Tags != nil {
		attrs["tags"] = r.Tags
	}
	if r.CoverImageURL != nil {
		attrs["cover_image_url"] = *r.CoverImageURL
	}
	return attrs
}

// CreateInstitutionRequest - payload for registering an institution
type CreateInstitutionRequest struct {
	OwnerID       string  `json:"owner_id" validate:"required"`
	Name          string  `json:"name" validate:"required,min=1,max=200"`
	Category      string  `json:"category" validate:"required"`
	Description   string  `json:"description,omitempty"`
	LogoURL       string  `json:"logo_url,omitempty"`
	Lat           float64 `json:"lat" validate:"min=-90,max=90"`
	Lng           float64 `json:"lng" validate:"min=-180,max=180"`
	Location      string  `json:"location,omitempty"`
	PoiID         string  `json:"poi_id,omitempty"`
	Region        string  `json:"region,omitempty"`
	Website       string  `json:"website,omitempty" validate:"omitempty,url"`
	ContactEmail  string  `json:"contact_email,omitempty" validate:"omitempty,email"`
	CoverImageURL string  `json:"cover_image_url,omitempty"`
}

// UpdateInstitutionRequest - partial institution update
type UpdateInstitutionRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Category      *string  `json:"category,omitempty"`
	Description   *string  `json:"description,omitempty"`
	LogoURL       *string  `json:"logo_url,omitempty"`
	Lat           *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lng           *float64 `json:"lng,omitempty" validate:"omitempty,min=-180,max=180"`
	Location      *string  `json:"location,omitempty"`
	PoiID         *string  `json:"poi_id,omitempty"`
	Region        *string  `json:"region,omitempty"`
	Website       *string  `json:"website,omitempty" validate:"omitempty,url"`
	ContactEmail  *string  `json:"contact_email,omitempty" validate:"omitempty,email"`
	CoverImageURL *string  `json:"cover_image_url,omitempty"`
	Verified      *bool    `json:"verified,omitempty"`
}

func (r UpdateInstitutionRequest) Attrs() map[string]interface{} {
	attrs := make(map[string]interface{})
	if r.Name != nil {
		attrs["name"] = *r.Name
	}
	if r.Category != nil {
		attrs["category"] = *r.Category
	}
	if r.Description != nil {
		attrs["description"] = *r.Description
	}
	if r.LogoURL != nil {
		attrs["logo_url"] = *r.LogoURL
	}
	if r.Lat != nil {
		attrs["lat"] = *r.Lat
	}
	if r.Lng != nil {
		attrs["lng"] = *r.Lng
	}
	if r.Location != nil {
		attrs["location"] = *r.Location
	}
	if r.PoiID != nil {
		attrs["poi_id"] = *r.PoiID
	}
	if r.Region != nil {
		attrs["region"] = *r.Region
	}
	if r.Website != nil {
		attrs["website"] = *r.Website
	}
	if r.ContactEmail != nil {
		attrs["contact_email"] = *r.ContactEmail
	}
	if r.CoverImageURL != nil {
		attrs["cover_image_url"] = *r.CoverImageURL
	}
	if r.Verified != nil {
		attrs["verified"] = *r.Verified
	}
	return attrs
}

// CreatePostRequest - payload for publishing an institution post
type CreatePostRequest struct {
	InstitutionID    string                   `json:"institution_id" validate:"required"`
	Title            string                   `json:"title" validate:"required,min=1,max=300"`
	Content          string                   `json:"content" validate:"required"`
	TypeOfPost       string                   `json:"type_of_post" validate:"required,oneof=job internship event news"`
	Tags             []string                 `json:"tags,omitempty"`
	Sentiment        string                   `json:"sentiment,omitempty"`
	PoiID            string                   `json:"poi_id,omitempty"`
	Categories       []string                 `json:"categories,omitempty"`
	ImageURL         string                   `json:"image_url,omitempty"`
	Visibility       string                   `json:"visibility,omitempty" validate:"omitempty,oneof=public nearby_only followers"`
	MapLocation      *domain.MapLocation      `json:"map_location,omitempty"`
	SmartSuggestions *domain.SmartSuggestions `json:"smart_suggestions,omitempty"`
	Summary          string                   `json:"summary,omitempty"`
	Details          map[string]interface{}   `json:"details,omitempty"`
	PublishedAt      time.Time                `json:"published_at,omitempty"`
}

// UpdatePostRequest - partial institution post update
type UpdatePostRequest struct {
	Title            *string                  `json:"title,omitempty" validate:"omitempty,min=1,max=300"`
	Content          *string                  `json:"content,omitempty"`
	TypeOfPost       *string                  `json:"type_of_post,omitempty" validate:"omitempty,oneof=job internship event news"`
	Tags             []string                 `json:"tags,omitempty"`
	Sentiment        *string                  `json:"sentiment,omitempty"`
	PoiID            *string                  `json:"poi_id,omitempty"`
	Categories       []string                 `json:"categories,omitempty"`
	ImageURL         *string                  `json:"image_url,omitempty"`
	Visibility       *string                  `json:"visibility,omitempty" validate:"omitempty,oneof=public nearby_only followers"`
	MapLocation      *domain.MapLocation      `json:"map_location,omitempty"`
	SmartSuggestions *domain.SmartSuggestions `json:"smart_suggestions,omitempty"`
	Summary          *string                  `json:"summary,omitempty"`
	Details          map[string]interface{}   `json:"details,omitempty"`
	PublishedAt      *time.Time               `json:"published_at,omitempty"`
}

func (r UpdatePostRequest) Attrs() map[string]interface{} {
	attrs := make(map[string]interface{})
	if r.Title != nil {
		attrs["title"] = *r.Title
	}
	if r.Content != nil {
		attrs["content"] = *r.Content
	}
	if r.TypeOfPost != nil {
		attrs["type_of_post"] = *r.TypeOfPost
	}
	if r.Tags != nil {
		attrs["tags"] = r.Tags
	}
	if r.Sentiment != nil {
		attrs["sentiment"] = *r.Sentiment
	}
	if r.PoiID != nil {
		attrs["poi_id"] = *r.PoiID
	}
	if r.Categories != nil {
		attrs["categories"] = r.Categories
	}
	if r.ImageURL != nil {
		attrs["image_url"] = *r.ImageURL
	}
	if r.Visibility != nil {
		attrs["visibility"] = *r.Visibility
	}
	if r.MapLocation != nil {
		attrs["map_location"] = r.MapLocation
	}
	if r.SmartSuggestions != nil {
		attrs["smart_suggestions"] = r.SmartSuggestions
	}
	if r.Summary != nil {
		attrs["summary"] = *r.Summary
	}
	if r.Details != nil {
		attrs["details"] = r.Details
	}
	if r.PublishedAt != nil {
		attrs["published_at"] = r.PublishedAt.UTC().Truncate(time.Second)
	}
	return attrs
}

// ListPostsRequest - filters for listing institution posts
type ListPostsRequest struct {
	Category   string `json:"category,omitempty"`
	TimeFilter string `json:"time_filter,omitempty"`
	Sort       string `json:"sort,omitempty"`
	Limit      int    `json:"limit,omitempty" validate:"omitempty,min=1,max=200"`
}

// NearbyPostsRequest - proximity query around a point
type NearbyPostsRequest struct {
	Lat     float64 `json:"lat" validate:"min=-90,max=90"`
	Lon     float64 `json:"lon" validate:"min=-180,max=180"`
	RadiusM float64 `json:"radius" validate:"omitempty,min=0"`
}

// AISearchRequest - natural language post search, optionally location-aware
type AISearchRequest struct {
	Query   string   `json:"q" validate:"required,min=2"`
	Lat     *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lon     *float64 `json:"lon,omitempty" validate:"omitempty,min=-180,max=180"`
	RadiusM float64  `json:"radius,omitempty" validate:"omitempty,min=0"`
}

// CreateNewsRequest - payload for storing a curated news entry
type CreateNewsRequest struct {
	Headline        string           `json:"headline" validate:"required,min=1,max=300"`
	Summary         string           `json:"summary,omitempty"`
	Source          string           `json:"source,omitempty"`
	Tags            []string         `json:"tags,omitempty"`
	Topic           string           `json:"topic,omitempty"`
	Location        *domain.GeoPoint `json:"location,omitempty"`
	ShowFullArticle bool             `json:"show_full_article,omitempty"`
	ArticleURL      string           `json:"article_url,omitempty" validate:"omitempty,url"`
	Timestamp       time.Time        `json:"timestamp,omitempty"`
}

// UpdateNewsRequest - partial news entry update
type UpdateNewsRequest struct {
	Headline        *string          `json:"headline,omitempty" validate:"omitempty,min=1,max=300"`
	Summary         *string          `json:"summary,omitempty"`
	Source          *string          `json:"source,omitempty"`
	Tags            []string         `json:"tags,omitempty"`
	Topic           *string          `json:"topic,omitempty"`
	Location        *domain.GeoPoint `json:"location,omitempty"`
	ShowFullArticle *bool            `json:"show_full_article,omitempty"`
	ArticleURL      *string          `json:"article_url,omitempty" validate:"omitempty,url"`
	Timestamp       *time.Time       `json:"timestamp,omitempty"`
}

func (r UpdateNewsRequest) Attrs() map[string]interface{} {
	attrs := make(map[string]interface{})
	if r.Headline != nil {
		attrs["headline"] = *r.Headline
	}
	if r.Summary != nil {
		attrs["summary"] = *r.Summary
	}
	if r.Source != nil {
		attrs["source"] = *r.Source
	}
	if r.Tags != nil {
		attrs["tags"] = r.Tags
	}
	if r.Topic != nil {
		attrs["topic"] = *r.Topic
	}
	if r.Location != nil {
		attrs["location"] = r.Location
	}
	if r.ShowFullArticle != nil {
		attrs["show_full_article"] = *r.ShowFullArticle
	}
	if r.ArticleURL != nil {
		attrs["article_url"] = *r.ArticleURL
	}
	if r.Timestamp != nil {
		attrs["timestamp"] = r.Timestamp.UTC().Truncate(time.Second)
	}
	return attrs
}

// SearchNewsRequest - aggregated web news search
type SearchNewsRequest struct {
	Query    string `json:"q,omitempty"`
	Page     int    `json:"page,omitempty" validate:"omitempty,min=1"`
	PageSize int    `json:"page_size,omitempty" validate:"omitempty,min=1,max=50"`
	Provider string `json:"provider,omitempty"`
}

// ArticleRequest - readable-article extraction by URL
type ArticleRequest struct {
	URL string `json:"url" validate:"required,url"`
}
