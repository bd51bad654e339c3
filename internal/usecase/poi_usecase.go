package usecase

import (
	"context"
	"time"

	"github.com/citypulse-backend/internal/domain"
	"github.com/citypulse-backend/internal/domain/repository"
	"github.com/citypulse-backend/internal/pkg/errors"
	"github.com/citypulse-backend/internal/pkg/geo"
	"github.com/citypulse-backend/internal/usecase/dto"
	"go.uber.org/zap"
)

const defaultPOIListLimit = 50

// POIUseCase - point of interest CRUD over the document store
type POIUseCase struct {
	docRepo repository.DocumentRepository
	logger  *zap.Logger
}

func NewPOIUseCase(
	docRepo repository.DocumentRepository,
	logger *zap.Logger,
) *POIUseCase {
	return &POIUseCase{
		docRepo: docRepo,
		logger:  logger,
	}
}

func (uc *POIUseCase) Create(ctx context.Context, req dto.CreatePOIRequest) (*domain.POI, error) {
	if !geo.ValidateCoordinates(req.Lat, req.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	poi := domain.POI{
		Name:      req.Name,
		Lat:       req.Lat,
		Lng:       req.Lng,
		Location:  req.Location,
		RadiusM:   req.RadiusM,
		Type:      req.Type,
		Tags:      req.Tags,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if req.Description != "" {
		poi.Description = &req.Description
	}
	if req.CoverImageURL != "" {
		poi.CoverImageURL = &req.CoverImageURL
	}

	attrs, err := domain.ToAttrs(&poi)
	if err != nil {
		uc.logger.Error("Failed to encode POI", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	id, err := uc.docRepo.Create(ctx, domain.CollectionPOIs, "", attrs)
	if err != nil {
		uc.logger.Error("Failed to create POI", zap.Error(err))
		return nil, err
	}
	poi.ID = id

	return &poi, nil
}

func (uc *POIUseCase) Get(ctx context.Context, id string) (*domain.POI, error) {
	doc, err := uc.docRepo.Get(ctx, domain.CollectionPOIs, id)
	if err != nil {
		return nil, err
	}

	var poi domain.POI
	if err := doc.Decode(&poi); err != nil {
		uc.logger.Error("Failed to decode POI", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	poi.ID = doc.ID

	return &poi, nil
}

func (uc *POIUseCase) List(ctx context.Context, limit int) (*dto.POIListResponse, error) {
	if limit == 0 {
		limit = defaultPOIListLimit
	}

	docs, err := uc.docRepo.Query(ctx, domain.CollectionPOIs, domain.DocumentQuery{
		OrderBy:    "created_at",
		Descending: true,
		Limit:      limit,
	})
	if err != nil {
		uc.logger.Error("Failed to list POIs", zap.Error(err))
		return nil, err
	}

	pois := make([]domain.POI, 0, len(docs))
	for _, doc := range docs {
		var poi domain.POI
		if err := doc.Decode(&poi); err != nil {
			uc.logger.Warn("Skipping undecodable POI",
				zap.String("id", doc.ID),
				zap.Error(err))
			continue
		}
		poi.ID = doc.ID
		pois = append(pois, poi)
	}

	return &dto.POIListResponse{
		POIs:  pois,
		Total: len(pois),
	}, nil
}

func (uc *POIUseCase) Update(ctx context.Context, id string, req dto.UpdatePOIRequest) (*domain.POI, error) {
	attrs := req.Attrs()
	if len(attrs) == 0 {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "no fields to update",
		})
	}

	if err := uc.docRepo.Update(ctx, domain.CollectionPOIs, id, attrs); err != nil {
		if !errors.Is(err, errors.ErrDocumentNotFound) {
			uc.logger.Error("Failed to update POI", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}

	return uc.Get(ctx, id)
}

func (uc *POIUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.docRepo.Delete(ctx, domain.CollectionPOIs, id); err != nil {
		uc.logger.Error("Failed to delete POI", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
