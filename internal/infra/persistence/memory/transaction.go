package memory

import (
	"context"

	"hrdesk/internal/domain/repository"
)

// transactionManager gives all-or-nothing semantics by recording an undo step
// for each write and replaying them when the callback fails or panics.
type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	store *Store
	undo  *undoLog
}

func (f *repositoryFactory) NewCredentialRepository() repository.CredentialRepository {
	return &credentialRepository{store: f.store, undo: f.undo}
}

func (f *repositoryFactory) NewPasswordResetRepository() repository.PasswordResetRepository {
	return &passwordResetRepository{store: f.store, undo: f.undo}
}

// NewTransactionManager creates a TransactionManager for the store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	undo := &undoLog{}

	defer func() {
		if r := recover(); r != nil {
			tm.store.rollback(undo)
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{store: tm.store, undo: undo}); err != nil {
		tm.store.rollback(undo)

		return err
	}

	return nil
}
