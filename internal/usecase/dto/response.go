package dto

import "github.com/citypulse-backend/internal/domain"

// UserListResponse - user collection listing
type UserListResponse struct {
	Users []domain.User `json:"users"`
	Total int           `json:"total"`
}

// POIListResponse - POI collection listing
type POIListResponse struct {
	POIs  []domain.POI `json:"pois"`
	Total int          `json:"total"`
}

// InstitutionListResponse - institution collection listing
type InstitutionListResponse struct {
	Institutions []domain.Institution `json:"institutions"`
	Total        int                  `json:"total"`
}

// PostListResponse - institution post listing
type PostListResponse struct {
	Posts []domain.InstitutionPost `json:"posts"`
	Total int                      `json:"total"`
}

// NearbyPostsResponse - proximity search results, nearest first
type NearbyPostsResponse struct {
	Posts []domain.RankedPost `json:"posts"`
	Total int                 `json:"total"`
}

// AISearchResponse - translated natural language search results
type AISearchResponse struct {
	Posts []domain.RankedPost `json:"posts"`
	Total int                 `json:"total"`
}

// NewsListResponse - stored news listing
type NewsListResponse struct {
	News  []domain.News `json:"news"`
	Total int           `json:"total"`
}

// SearchNewsResponse - aggregated web news search results
type SearchNewsResponse struct {
	Items    []domain.NewsItem `json:"items"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// ArticleResponse - extracted readable article
type ArticleResponse struct {
	Article domain.Article `json:"article"`
}
