package memory

import (
	"cmp"
	"context"
	"slices"

	"hrdesk/internal/domain/entity"
	"hrdesk/internal/domain/repository"
)

type passwordResetRepository struct {
	store *Store
	undo  *undoLog // nil outside a transaction
}

// NewPasswordResetRepository creates a PasswordResetRepository backed by the store.
func NewPasswordResetRepository(store *Store) repository.PasswordResetRepository {
	return &passwordResetRepository{store: store}
}

func (repo *passwordResetRepository) Create(ctx context.Context, req *entity.PasswordResetRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	cp := *req
	cp.ID = repo.store.nextResetID
	if cp.RequestedAt.IsZero() {
		cp.RequestedAt = repo.store.now()
	}
	repo.store.nextResetID++
	written := &cp
	repo.store.resets[cp.ID] = written
	repo.undo.record(func(s *Store) {
		if s.resets[written.ID] == written {
			delete(s.resets, written.ID)
		}
	})

	req.ID = cp.ID
	req.RequestedAt = cp.RequestedAt

	return nil
}

func (repo *passwordResetRepository) List(ctx context.Context) ([]*entity.PasswordResetRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	requests := make([]*entity.PasswordResetRequest, 0, len(repo.store.resets))
	for _, req := range repo.store.resets {
		cp := *req
		requests = append(requests, &cp)
	}
	repo.store.mu.RUnlock()

	slices.SortFunc(requests, func(a, b *entity.PasswordResetRequest) int {
		if c := b.RequestedAt.Compare(a.RequestedAt); c != 0 {
			return c
		}

		return cmp.Compare(b.ID, a.ID)
	})

	return requests, nil
}

func (repo *passwordResetRepository) FindByID(ctx context.Context, id int64) (*entity.PasswordResetRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	req, ok := repo.store.resets[id]
	if !ok {
		return nil, repository.ErrResetNotFound
	}

	cp := *req

	return &cp, nil
}

func (repo *passwordResetRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	req, ok := repo.store.resets[id]
	if !ok {
		return repository.ErrResetNotFound
	}
	delete(repo.store.resets, id)
	repo.undo.record(func(s *Store) {
		if _, taken := s.resets[id]; !taken {
			s.resets[id] = req
		}
	})

	return nil
}
