package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/citypulse-backend/internal/domain"
	"github.com/citypulse-backend/internal/domain/repository"
	"github.com/citypulse-backend/internal/pkg/errors"
	"github.com/citypulse-backend/internal/pkg/geo"
	"github.com/citypulse-backend/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	defaultNearbyRadiusM   = 500.0
	defaultAISearchRadiusM = 5000.0
	defaultPostListLimit   = 50
)

// PostUseCase - institution post CRUD, proximity search and AI search
type PostUseCase struct {
	docRepo        repository.DocumentRepository
	translator     *TranslateUseCase
	logger         *zap.Logger
	writePrecision uint
	queryPrecision uint
	maxResults     int
}

func NewPostUseCase(
	docRepo repository.DocumentRepository,
	translator *TranslateUseCase,
	logger *zap.Logger,
	writePrecision uint,
	queryPrecision uint,
	maxResults int,
) *PostUseCase {
	return &PostUseCase{
		docRepo:        docRepo,
		translator:     translator,
		logger:         logger,
		writePrecision: writePrecision,
		queryPrecision: queryPrecision,
		maxResults:     maxResults,
	}
}

func (uc *PostUseCase) Create(ctx context.Context, req dto.CreatePostRequest) (*domain.InstitutionPost, error) {
	// The post must belong to an existing institution
	if _, err := uc.docRepo.Get(ctx, domain.CollectionInstitutions, req.InstitutionID); err != nil {
		if errors.Is(err, errors.ErrDocumentNotFound) {
			return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"institution_id": req.InstitutionID,
				"reason":         "institution not found",
			})
		}
		uc.logger.Error("Failed to check institution", zap.Error(err))
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Second)

	post := domain.InstitutionPost{
		InstitutionID:    req.InstitutionID,
		Title:            req.Title,
		Content:          req.Content,
		TypeOfPost:       req.TypeOfPost,
		Tags:             req.Tags,
		Categories:       req.Categories,
		Visibility:       req.Visibility,
		MapLocation:      req.MapLocation,
		SmartSuggestions: req.SmartSuggestions,
		Details:          req.Details,
		PublishedAt:      now,
		CreatedAt:        now,
	}
	if post.Visibility == "" {
		post.Visibility = domain.VisibilityPublic
	}
	if !req.PublishedAt.IsZero() {
		post.PublishedAt = req.PublishedAt.UTC().Truncate(time.Second)
	}
	if req.Sentiment != "" {
		post.Sentiment = &req.Sentiment
	}
	if req.PoiID != "" {
		post.POIID = &req.PoiID
	}
	if req.ImageURL != "" {
		post.ImageURL = &req.ImageURL
	}
	if req.Summary != "" {
		post.Summary = &req.Summary
	}

	// Geohash is derived from the pinned location in the same write
	if post.MapLocation != nil {
		post.Geohash = geo.Encode(post.MapLocation.Lat, post.MapLocation.Lng, uc.writePrecision)
	}

	attrs, err := domain.ToAttrs(&post)
	if err != nil {
		uc.logger.Error("Failed to encode post", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	id, err := uc.docRepo.Create(ctx, domain.CollectionInstitutionPosts, "", attrs)
	if err != nil {
		uc.logger.Error("Failed to create post", zap.Error(err))
		return nil, err
	}
	post.ID = id

	return &post, nil
}

func (uc *PostUseCase) Get(ctx context.Context, id string) (*domain.InstitutionPost, error) {
	doc, err := uc.docRepo.Get(ctx, domain.CollectionInstitutionPosts, id)
	if err != nil {
		return nil, err
	}

	var post domain.InstitutionPost
	if err := doc.Decode(&post); err != nil {
		uc.logger.Error("Failed to decode post", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	post.ID = doc.ID

	return &post, nil
}

func (uc *PostUseCase) List(ctx context.Context, req dto.ListPostsRequest) (*dto.PostListResponse, error) {
	if req.Limit == 0 {
		req.Limit = defaultPostListLimit
	}

	query := domain.DocumentQuery{
		OrderBy:    "created_at",
		Descending: true,
		Limit:      req.Limit,
	}
	if req.Category != "" {
		query.Filters = append(query.Filters, domain.DocumentFilter{
			Field: "categories",
			Op:    domain.OpArrayContains,
			Value: req.Category,
		})
	}
	if req.TimeFilter != "" {
		if start, ok := domain.TimeWindowStart(req.TimeFilter, time.Now()); ok {
			query.Filters = append(query.Filters, domain.DocumentFilter{
				Field: "created_at",
				Op:    domain.OpGreaterOrEqual,
				Value: start,
			})
		}
	}

	docs, err := uc.docRepo.Query(ctx, domain.CollectionInstitutionPosts, query)
	if err != nil {
		uc.logger.Error("Failed to list posts", zap.Error(err))
		return nil, err
	}

	posts := uc.decodePosts(docs)

	if req.Sort == "popular" {
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].RelatedPostsCount() > posts[j].RelatedPostsCount()
		})
	}

	return &dto.PostListResponse{
		Posts: posts,
		Total: len(posts),
	}, nil
}

func (uc *PostUseCase) Update(ctx context.Context, id string, req dto.UpdatePostRequest) (*domain.InstitutionPost, error) {
	attrs := req.Attrs()
	if len(attrs) == 0 {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "no fields to update",
		})
	}

	// A moved pin invalidates the stored geohash, recompute both together
	if req.MapLocation != nil {
		attrs["geohash"] = geo.Encode(req.MapLocation.Lat, req.MapLocation.Lng, uc.writePrecision)
	}

	if err := uc.docRepo.Update(ctx, domain.CollectionInstitutionPosts, id, attrs); err != nil {
		if !errors.Is(err, errors.ErrDocumentNotFound) {
			uc.logger.Error("Failed to update post", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}

	return uc.Get(ctx, id)
}

func (uc *PostUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.docRepo.Delete(ctx, domain.CollectionInstitutionPosts, id); err != nil {
		uc.logger.Error("Failed to delete post", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// Nearby finds posts pinned within a radius of a point. The stored
// geohash narrows the scan to the cell range covering the bounding box;
// exact distances are computed for every candidate because cell
// membership alone overshoots the circle.
func (uc *PostUseCase) Nearby(ctx context.Context, req dto.NearbyPostsRequest) (*dto.NearbyPostsResponse, error) {
	if req.RadiusM == 0 {
		req.RadiusM = defaultNearbyRadiusM
	}

	if !geo.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	if !geo.ValidateRadius(req.RadiusM) {
		return nil, errors.ErrInvalidRadius
	}

	box := geo.NewBoundingBox(req.Lat, req.Lon, req.RadiusM)
	start, end := geo.CellRange(box, uc.queryPrecision)

	docs, err := uc.docRepo.Query(ctx, domain.CollectionInstitutionPosts, domain.DocumentQuery{
		Filters: []domain.DocumentFilter{
			{Field: "geohash", Op: domain.OpGreaterOrEqual, Value: start},
			{Field: "geohash", Op: domain.OpLessOrEqual, Value: end},
		},
		OrderBy: "geohash",
	})
	if err != nil {
		uc.logger.Error("Failed to query posts by geohash range",
			zap.String("start", start),
			zap.String("end", end),
			zap.Error(err))
		return nil, err
	}

	ranked := uc.rankByDistance(uc.decodePosts(docs), req.Lat, req.Lon, req.RadiusM)
	if len(ranked) > uc.maxResults {
		ranked = ranked[:uc.maxResults]
	}

	uc.logger.Debug("Nearby search completed",
		zap.Float64("lat", req.Lat),
		zap.Float64("lon", req.Lon),
		zap.Float64("radius_m", req.RadiusM),
		zap.Int("candidates", len(docs)),
		zap.Int("matches", len(ranked)))

	return &dto.NearbyPostsResponse{
		Posts: ranked,
		Total: len(ranked),
	}, nil
}

// AISearch translates a natural language query into structured filters
// and runs them against the store. When translation fails the query
// degrades to a plain keyword search instead of erroring out.
func (uc *PostUseCase) AISearch(ctx context.Context, req dto.AISearchRequest) (*dto.AISearchResponse, error) {
	filter, err := uc.translator.Translate(ctx, req.Query)
	if err != nil {
		uc.logger.Warn("Query translation failed, falling back to keyword search",
			zap.String("query", req.Query),
			zap.Error(err))
		filter = &domain.StructuredFilter{Keywords: []string{req.Query}}
	}

	query := domain.DocumentQuery{
		OrderBy:    "created_at",
		Descending: true,
	}
	if len(filter.Categories) > 0 {
		query.Filters = append(query.Filters, domain.DocumentFilter{
			Field: "categories",
			Op:    domain.OpArrayContainsAny,
			Value: filter.Categories,
		})
	}
	if len(filter.PostTypes) > 0 {
		query.Filters = append(query.Filters, domain.DocumentFilter{
			Field: "type_of_post",
			Op:    domain.OpIn,
			Value: filter.PostTypes,
		})
	}
	if filter.TimeFilter != "" {
		if start, ok := domain.TimeWindowStart(filter.TimeFilter, time.Now()); ok {
			query.Filters = append(query.Filters, domain.DocumentFilter{
				Field: "created_at",
				Op:    domain.OpGreaterOrEqual,
				Value: start,
			})
		}
	}

	docs, err := uc.docRepo.Query(ctx, domain.CollectionInstitutionPosts, query)
	if err != nil {
		uc.logger.Error("Failed to query posts for AI search", zap.Error(err))
		return nil, err
	}

	posts := filterByKeywords(uc.decodePosts(docs), filter.Keywords)

	var ranked []domain.RankedPost
	if filter.WantsNearby() && req.Lat != nil && req.Lon != nil {
		radius := req.RadiusM
		if radius == 0 {
			radius = defaultAISearchRadiusM
		}
		ranked = uc.rankByDistance(posts, *req.Lat, *req.Lon, radius)
	} else {
		ranked = make([]domain.RankedPost, 0, len(posts))
		for _, post := range posts {
			ranked = append(ranked, domain.RankedPost{InstitutionPost: post})
		}
	}

	if len(ranked) > uc.maxResults {
		ranked = ranked[:uc.maxResults]
	}

	return &dto.AISearchResponse{
		Posts: ranked,
		Total: len(ranked),
	}, nil
}

func (uc *PostUseCase) decodePosts(docs []*domain.Document) []domain.InstitutionPost {
	posts := make([]domain.InstitutionPost, 0, len(docs))
	for _, doc := range docs {
		var post domain.InstitutionPost
		if err := doc.Decode(&post); err != nil {
			uc.logger.Warn("Skipping undecodable post",
				zap.String("id", doc.ID),
				zap.Error(err))
			continue
		}
		post.ID = doc.ID
		posts = append(posts, post)
	}
	return posts
}

// rankByDistance drops posts without a pinned location, filters by exact
// great-circle distance and sorts nearest first.
func (uc *PostUseCase) rankByDistance(posts []domain.InstitutionPost, lat, lon, radiusM float64) []domain.RankedPost {
	ranked := make([]domain.RankedPost, 0, len(posts))
	for _, post := range posts {
		if post.MapLocation == nil {
			continue
		}
		d := geo.HaversineDistance(lat, lon, post.MapLocation.Lat, post.MapLocation.Lng)
		if d <= radiusM {
			ranked = append(ranked, domain.RankedPost{InstitutionPost: post, Distance: d})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})

	return ranked
}

// filterByKeywords keeps posts whose title, content or tags contain at
// least one of the keywords, case-insensitively.
func filterByKeywords(posts []domain.InstitutionPost, keywords []string) []domain.InstitutionPost {
	if len(keywords) == 0 {
		return posts
	}

	filtered := make([]domain.InstitutionPost, 0, len(posts))
	for _, post := range posts {
		searchable := strings.ToLower(post.Title + " " + post.Content + " " + strings.Join(post.Tags, " "))
		for _, kw := range keywords {
			if kw != "" && strings.Contains(searchable, strings.ToLower(kw)) {
				filtered = append(filtered, post)
				break
			}
		}
	}
	return filtered
}
