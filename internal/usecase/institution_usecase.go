package usecase

import (
	"context"
	"time"

	"github.com/citypulse-backend/internal/domain"
	"github.com/citypulse-backend/internal/domain/repository"
	"github.com/citypulse-backend/internal/pkg/errors"
	"github.com/citypulse-backend/internal/usecase/dto"
	"go.uber.org/zap"
)

const defaultInstitutionListLimit = 50

// InstitutionUseCase - institution CRUD over the document store
type InstitutionUseCase struct {
	docRepo repository.DocumentRepository
	logger  *zap.Logger
}

func NewInstitutionUseCase(
	docRepo repository.DocumentRepository,
	logger *zap.Logger,
) *InstitutionUseCase {
	return &InstitutionUseCase{
		docRepo: docRepo,
		logger:  logger,
	}
}

func (uc *InstitutionUseCase) Create(ctx context.Context, req dto.CreateInstitutionRequest) (*domain.Institution, error) {
	inst := domain.Institution{
		OwnerID:   req.OwnerID,
		Name:      req.Name,
		Category:  req.Category,
		Lat:       req.Lat,
		Lng:       req.Lng,
		Location:  req.Location,
		Region:    req.Region,
		Verified:  false,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if req.Description != "" {
		inst.Description = &req.Description
	}
	if req.LogoURL != "" {
		inst.LogoURL = &req.LogoURL
	}
	if req.PoiID != "" {
		inst.POIID = &req.PoiID
	}
	if req.Website != "" {
		inst.Website = &req.Website
	}
	if req.ContactEmail != "" {
		inst.ContactEmail = &req.ContactEmail
	}
	if req.CoverImageURL != "" {
		inst.CoverImageURL = &req.CoverImageURL
	}

	attrs, err := domain.ToAttrs(&inst)
	if err != nil {
		uc.logger.Error("Failed to encode institution", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	id, err := uc.docRepo.Create(ctx, domain.CollectionInstitutions, "", attrs)
	if err != nil {
		uc.logger.Error("Failed to create institution", zap.Error(err))
		return nil, err
	}
	inst.ID = id

	return &inst, nil
}

func (uc *InstitutionUseCase) Get(ctx context.Context, id string) (*domain.Institution, error) {
	doc, err := uc.docRepo.Get(ctx, domain.CollectionInstitutions, id)
	if err != nil {
		return nil, err
	}

	var inst domain.Institution
	if err := doc.Decode(&inst); err != nil {
		uc.logger.Error("Failed to decode institution", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	inst.ID = doc.ID

	return &inst, nil
}

func (uc *InstitutionUseCase) List(ctx context.Context, limit int) (*dto.InstitutionListResponse, error) {
	if limit == 0 {
		limit = defaultInstitutionListLimit
	}

	docs, err := uc.docRepo.Query(ctx, domain.CollectionInstitutions, domain.DocumentQuery{
		OrderBy:    "created_at",
		Descending: true,
		Limit:      limit,
	})
	if err != nil {
		uc.logger.Error("Failed to list institutions", zap.Error(err))
		return nil, err
	}

	institutions := make([]domain.Institution, 0, len(docs))
	for _, doc := range docs {
		var inst domain.Institution
		if err := doc.Decode(&inst); err != nil {
			uc.logger.Warn("Skipping undecodable institution",
				zap.String("id", doc.ID),
				zap.Error(err))
			continue
		}
		inst.ID = doc.ID
		institutions = append(institutions, inst)
	}

	return &dto.InstitutionListResponse{
		Institutions: institutions,
		Total:        len(institutions),
	}, nil
}

func (uc *InstitutionUseCase) Update(ctx context.Context, id string, req dto.UpdateInstitutionRequest) (*domain.Institution, error) {
	attrs := req.Attrs()
	if len(attrs) == 0 {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "no fields to update",
		})
	}

	if err := uc.docRepo.Update(ctx, domain.CollectionInstitutions, id, attrs); err != nil {
		if !errors.Is(err, errors.ErrDocumentNotFound) {
			uc.logger.Error("Failed to update institution", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}

	return uc.Get(ctx, id)
}

func (uc *InstitutionUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.docRepo.Delete(ctx, domain.CollectionInstitutions, id); err != nil {
		uc.logger.Error("Failed to delete institution", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
