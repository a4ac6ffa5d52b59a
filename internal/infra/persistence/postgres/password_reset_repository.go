package postgres

import (
	"context"

	"hrdesk/internal/domain/entity"
	"hrdesk/internal/domain/repository"
	"hrdesk/internal/errors"
	"hrdesk/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// passwordResetRepository implements the repository.PasswordResetRepository interface using GORM.
type passwordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository is the constructor for passwordResetRepository.
func NewPasswordResetRepository(db *gorm.DB) repository.PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

// Create persists a new reset request.
func (repo *passwordResetRepository) Create(ctx context.Context, req *entity.PasswordResetRequest) error {
	resetM := &model.PasswordResetModel{
		Email:       req.Email,
		RequestedAt: req.RequestedAt,
	}
	if err := repo.db.WithContext(ctx).Create(resetM).Error; err != nil {
		return errors.Wrap(err, "failed to create password reset request")
	}

	req.ID = resetM.ID
	req.RequestedAt = resetM.RequestedAt

	return nil
}

// List returns all pending requests, newest first.
func (repo *passwordResetRepository) List(ctx context.Context) ([]*entity.PasswordResetRequest, error) {
	var models []model.PasswordResetModel
	if err := repo.db.WithContext(ctx).Order("requested_at DESC, id DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list password reset requests")
	}

	requests := make([]*entity.PasswordResetRequest, 0, len(models))
	for i := range models {
		requests = append(requests, toPasswordResetDomain(&models[i]))
	}

	return requests, nil
}

// FindByID retrieves a single request.
func (repo *passwordResetRepository) FindByID(ctx context.Context, id int64) (*entity.PasswordResetRequest, error) {
	var resetM model.PasswordResetModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&resetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetNotFound
		}

		return nil, errors.Wrap(err, "failed to find password reset request")
	}

	return toPasswordResetDomain(&resetM), nil
}

// Delete removes a handled request.
func (repo *passwordResetRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PasswordResetModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete password reset request")
	}

	if result.RowsAffected == 0 {
		return repository.ErrResetNotFound
	}

	return nil
}

func toPasswordResetDomain(data *model.PasswordResetModel) *entity.PasswordResetRequest {
	return &entity.PasswordResetRequest{
		ID:          data.ID,
		Email:       data.Email,
		RequestedAt: data.RequestedAt,
	}
}
