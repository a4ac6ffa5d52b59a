package memory

import (
	"context"

	"hrdesk/internal/domain/entity"
	"hrdesk/internal/domain/repository"
)

type credentialRepository struct {
	store *Store
	undo  *undoLog // nil outside a transaction
}

// NewCredentialRepository creates a CredentialRepository backed by the store.
func NewCredentialRepository(store *Store) repository.CredentialRepository {
	return &credentialRepository{store: store}
}

func (repo *credentialRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.Credential, error) {
	return repo.findOne(ctx, identifier, repo.matches)
}

func (repo *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	return repo.findOne(ctx, email, repo.matchesEmail)
}

func (repo *credentialRepository) findOne(ctx context.Context, identifier string, match func(*entity.Credential, string) bool) (*entity.Credential, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	needle := entity.NormalizeIdentifier(identifier)
	if needle == "" {
		return nil, repository.ErrCredentialNotFound
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	var found *entity.Credential
	for _, cred := range repo.store.credentials {
		if !match(cred, needle) {
			continue
		}
		if found != nil {
			return nil, repository.ErrAmbiguousIdentifier
		}
		found = cred
	}

	if found == nil {
		return nil, repository.ErrCredentialNotFound
	}

	cp := *found

	return &cp, nil
}

// matches must be called with the store lock held.
func (repo *credentialRepository) matches(cred *entity.Credential, needle string) bool {
	return cred.HasIdentifier(needle) || repo.matchesLinkedEmail(cred, needle)
}

// matchesEmail must be called with the store lock held.
func (repo *credentialRepository) matchesEmail(cred *entity.Credential, needle string) bool {
	return entity.NormalizeIdentifier(cred.Email) == needle || repo.matchesLinkedEmail(cred, needle)
}

func (repo *credentialRepository) matchesLinkedEmail(cred *entity.Credential, needle string) bool {
	if cred.EmployeeID == nil {
		return false
	}

	employee, ok := repo.store.employees[*cred.EmployeeID]

	return ok && entity.NormalizeIdentifier(employee.Email) == needle
}

func (repo *credentialRepository) ResolveLinkedProfile(ctx context.Context, subjectID int64) (*int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	cred, ok := repo.store.credentials[subjectID]
	if !ok || cred.EmployeeID == nil {
		return nil, nil
	}

	if _, ok := repo.store.employees[*cred.EmployeeID]; !ok {
		return nil, nil
	}

	id := *cred.EmployeeID

	return &id, nil
}

func (repo *credentialRepository) Create(ctx context.Context, cred *entity.Credential) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	identifiers := []string{cred.Username, cred.Email}
	if cred.EmployeeID != nil {
		employee, ok := repo.store.employees[*cred.EmployeeID]
		if !ok {
			return repository.ErrLinkedProfileNotFound
		}
		identifiers = append(identifiers, employee.Email)
	}

	// Any overlap would make FindByIdentifier ambiguous for an existing login.
	for _, identifier := range identifiers {
		needle := entity.NormalizeIdentifier(identifier)
		if needle == "" {
			continue
		}
		for _, existing := range repo.store.credentials {
			if repo.matches(existing, needle) {
				return repository.ErrCredentialConflict
			}
		}
	}

	now := repo.store.now()
	cp := *cred
	cp.SubjectID = repo.store.nextCredentialID
	cp.CreatedAt = now
	cp.UpdatedAt = now
	repo.store.nextCredentialID++
	written := &cp
	repo.store.credentials[cp.SubjectID] = written
	repo.undo.record(func(s *Store) {
		if s.credentials[written.SubjectID] == written {
			delete(s.credentials, written.SubjectID)
		}
	})

	cred.SubjectID = cp.SubjectID
	cred.CreatedAt = now
	cred.UpdatedAt = now

	return nil
}

func (repo *credentialRepository) UpdateSecret(ctx context.Context, subjectID int64, secret string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	cred, ok := repo.store.credentials[subjectID]
	if !ok {
		return repository.ErrCredentialNotFound
	}

	cp := *cred
	cp.Secret = secret
	cp.UpdatedAt = repo.store.now()
	written := &cp
	repo.store.credentials[subjectID] = written
	repo.undo.record(func(s *Store) {
		if s.credentials[subjectID] == written {
			s.credentials[subjectID] = cred
		}
	})

	return nil
}
