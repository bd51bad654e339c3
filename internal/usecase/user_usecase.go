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

const defaultUserListLimit = 50

// UserUseCase - user profile CRUD over the document store
type UserUseCase struct {
	docRepo repository.DocumentRepository
	logger  *zap.Logger
}

func NewUserUseCase(
	docRepo repository.DocumentRepository,
	logger *zap.Logger,
) *UserUseCase {
	return &UserUseCase{
		docRepo: docRepo,
		logger:  logger,
	}
}

// Create stores a new user profile. A caller-supplied ID that already
// exists is a conflict; without an ID the store assigns one.
func (uc *UserUseCase) Create(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	user := domain.User{
		FullName:            req.FullName,
		Email:               req.Email,
		Role:                req.Role,
		PreferredCategories: req.PreferredCategories,
		Language:            req.Language,
		Location:            req.Location,
		CreatedAt:           time.Now().UTC().Truncate(time.Second),
	}
	if req.NotificationSettings != nil {
		user.NotificationSettings = *req.NotificationSettings
	}
	if req.Privacy != nil {
		user.Privacy = *req.Privacy
	}
	if req.ProfileImageURL != "" {
		user.ProfileImageURL = &req.ProfileImageURL
	}
	if req.Bio != "" {
		user.Bio = &req.Bio
	}

	attrs, err := domain.ToAttrs(&user)
	if err != nil {
		uc.logger.Error("Failed to encode user", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	id, err := uc.docRepo.Create(ctx, domain.CollectionUsers, req.ID, attrs)
	if err != nil {
		if !errors.Is(err, errors.ErrDocumentExists) {
			uc.logger.Error("Failed to create user", zap.Error(err))
		}
		return nil, err
	}
	user.ID = id

	return &user, nil
}

func (uc *UserUseCase) Get(ctx context.Context, id string) (*domain.User, error) {
	doc, err := uc.docRepo.Get(ctx, domain.CollectionUsers, id)
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := doc.Decode(&user); err != nil {
		uc.logger.Error("Failed to decode user", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	user.ID = doc.ID

	return &user, nil
}

func (uc *UserUseCase) List(ctx context.Context, limit int) (*dto.UserListResponse, error) {
	if limit == 0 {
		limit = defaultUserListLimit
	}

	docs, err := uc.docRepo.Query(ctx, domain.CollectionUsers, domain.DocumentQuery{
		OrderBy:    "created_at",
		Descending: true,
		Limit:      limit,
	})
	if err != nil {
		uc.logger.Error("Failed to list users", zap.Error(err))
		return nil, err
	}

	users := make([]domain.User, 0, len(docs))
	for _, doc := range docs {
		var user domain.User
		if err := doc.Decode(&user); err != nil {
			uc.logger.Warn("Skipping undecodable user",
				zap.String("id", doc.ID),
				zap.Error(err))
			continue
		}
		user.ID = doc.ID
		users = append(users, user)
	}

	return &dto.UserListResponse{
		Users: users,
		Total: len(users),
	}, nil
}

func (uc *UserUseCase) Update(ctx context.Context, id string, req dto.UpdateUserRequest) (*domain.User, error) {
	attrs := req.Attrs()
	if len(attrs) == 0 {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "no fields to update",
		})
	}

	if err := uc.docRepo.Update(ctx, domain.CollectionUsers, id, attrs); err != nil {
		if !errors.Is(err, errors.ErrDocumentNotFound) {
			uc.logger.Error("Failed to update user", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}

	return uc.Get(ctx, id)
}

func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.docRepo.Delete(ctx, domain.CollectionUsers, id); err != nil {
		uc.logger.Error("Failed to delete user", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
