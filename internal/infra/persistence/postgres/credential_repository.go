// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"hrdesk/internal/domain/entity"
	"hrdesk/internal/domain/repository"
	"hrdesk/internal/errors"
	"hrdesk/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// credentialRepository implements the repository.CredentialRepository interface using GORM.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// FindByIdentifier matches the identifier against username, account email and the
// linked employee's email. Two rows are fetched so that ambiguity can be detected.
func (repo *credentialRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.Credential, error) {
	needle := entity.NormalizeIdentifier(identifier)
	if needle == "" {
		return nil, repository.ErrCredentialNotFound
	}

	return repo.findOne(ctx, "LOWER(users.username) = ? OR LOWER(users.email) = ? OR LOWER(employees.email) = ?", needle, needle, needle)
}

// FindByEmail matches the account email and the linked employee's email only.
func (repo *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	needle := entity.NormalizeIdentifier(email)
	if needle == "" {
		return nil, repository.ErrCredentialNotFound
	}

	return repo.findOne(ctx, "LOWER(users.email) = ? OR LOWER(employees.email) = ?", needle, needle)
}

func (repo *credentialRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Credential, error) {
	var models []model.CredentialModel
	err := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Select("users.*").
		Joins("LEFT JOIN employees ON employees.id = users.employee_id").
		Where(query, args...).
		Order("users.id").
		Limit(2).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find credential by identifier")
	}

	switch len(models) {
	case 0:
		return nil, repository.ErrCredentialNotFound
	case 1:
		return toCredentialDomain(&models[0]), nil
	default:
		return nil, repository.ErrAmbiguousIdentifier
	}
}

// ResolveLinkedProfile returns the id of the employee row linked to the account, if it still exists.
func (repo *credentialRepository) ResolveLinkedProfile(ctx context.Context, subjectID int64) (*int64, error) {
	var ids []int64
	err := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Joins("JOIN employees ON employees.id = users.employee_id").
		Where("users.id = ?", subjectID).
		Limit(1).
		Pluck("employees.id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve linked profile")
	}

	if len(ids) == 0 {
		return nil, nil
	}

	return &ids[0], nil
}

// Create inserts a new account. Besides the unique indexes on users, it rejects
// identifiers that would make an existing login ambiguous through a linked employee email.
func (repo *credentialRepository) Create(ctx context.Context, cred *entity.Credential) error {
	identifiers, err := repo.identifiersOf(ctx, cred)
	if err != nil {
		return err
	}

	if len(identifiers) > 0 {
		var count int64
		err = repo.db.WithContext(ctx).
			Model(&model.CredentialModel{}).
			Joins("LEFT JOIN employees ON employees.id = users.employee_id").
			Where("LOWER(users.username) IN ? OR LOWER(users.email) IN ? OR LOWER(employees.email) IN ?",
				identifiers, identifiers, identifiers).
			Count(&count).Error
		if err != nil {
			return errors.Wrap(err, "failed to check credential identifiers")
		}
		if count > 0 {
			return repository.ErrCredentialConflict
		}
	}

	credM := fromCredentialDomain(cred)
	if err := repo.db.WithContext(ctx).Create(credM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCredentialConflict
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLinkedProfileNotFound
		}

		return errors.Wrap(err, "failed to create credential")
	}

	cred.SubjectID = credM.ID
	cred.CreatedAt = credM.CreatedAt
	cred.UpdatedAt = credM.UpdatedAt

	return nil
}

// identifiersOf returns the normalized login identifiers a new account would answer to.
func (repo *credentialRepository) identifiersOf(ctx context.Context, cred *entity.Credential) ([]string, error) {
	candidates := []string{cred.Username, cred.Email}

	if cred.EmployeeID != nil {
		var emails []string
		err := repo.db.WithContext(ctx).
			Table("employees").
			Where("id = ?", *cred.EmployeeID).
			Limit(1).
			Pluck("email", &emails).Error
		if err != nil {
			return nil, errors.Wrap(err, "failed to load linked employee")
		}
		if len(emails) == 0 {
			return nil, repository.ErrLinkedProfileNotFound
		}
		candidates = append(candidates, emails[0])
	}

	identifiers := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if needle := entity.NormalizeIdentifier(c); needle != "" {
			identifiers = append(identifiers, needle)
		}
	}

	return identifiers, nil
}

// UpdateSecret replaces the stored password hash of an account.
func (repo *credentialRepository) UpdateSecret(ctx context.Context, subjectID int64, secret string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CredentialModel{}).
		Where("id = ?", subjectID).
		Updates(map[string]any{
			"password_hash": secret,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update credential secret")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

func toCredentialDomain(data *model.CredentialModel) *entity.Credential {
	if data == nil {
		return nil
	}

	return &entity.Credential{
		SubjectID:  data.ID,
		Username:   derefString(data.Username),
		Email:      derefString(data.Email),
		Secret:     data.PasswordHash,
		Role:       entity.Role(data.Role),
		EmployeeID: data.EmployeeID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromCredentialDomain(data *entity.Credential) *model.CredentialModel {
	if data == nil {
		return nil
	}

	return &model.CredentialModel{
		ID:           data.SubjectID,
		Username:     nullableString(data.Username),
		Email:        nullableString(data.Email),
		PasswordHash: data.Secret,
		Role:         data.Role.String(),
		EmployeeID:   data.EmployeeID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// nullableString maps empty strings to NULL so unique indexes allow several accounts without one.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
