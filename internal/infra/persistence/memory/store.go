// Package memory is an in-process user directory used for local runs and tests.
package memory

import (
	"sync"
	"time"

	"go.uber.org/fx"

	"hrdesk/config"
	"hrdesk/internal/domain/entity"
)

// Store holds every table of the in-memory directory behind one lock.
type Store struct {
	mu sync.RWMutex
	// txMu serialises transactions against each other. Writes outside a
	// transaction do not take it; rollback reverts only the transaction's own writes.
	txMu sync.Mutex

	credentials map[int64]*entity.Credential
	employees   map[int64]*entity.Employee
	resets      map[int64]*entity.PasswordResetRequest

	nextCredentialID int64
	nextResetID      int64

	now func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		credentials:      make(map[int64]*entity.Credential),
		employees:        make(map[int64]*entity.Employee),
		resets:           make(map[int64]*entity.PasswordResetRequest),
		nextCredentialID: 1,
		nextResetID:      1,
		now:              time.Now,
	}
}

// Params defines the dependencies of the store provider.
type Params struct {
	fx.In

	Config *config.Config
}

// New creates a store preloaded with the configured employee profiles.
// Accounts are provisioned later through the account use case so their secrets get hashed.
func New(params Params) *Store {
	store := NewStore()
	if params.Config.Seed != nil {
		for _, e := range params.Config.Seed.Employees {
			store.PutEmployee(&entity.Employee{
				ID:         e.ID,
				Name:       e.Name,
				Email:      e.Email,
				Department: e.Department,
				Position:   e.Position,
			})
		}
	}

	return store
}

// PutEmployee inserts or replaces an employee profile.
func (s *Store) PutEmployee(e *entity.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *e
	s.employees[e.ID] = &cp
}

// RemoveEmployee deletes an employee profile, leaving any linked accounts dangling.
func (s *Store) RemoveEmployee(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.employees, id)
}

// PutCredential stores a credential as-is, assigning an id when it has none.
// It bypasses uniqueness checks and exists for fixtures such as legacy plaintext rows.
func (s *Store) PutCredential(c *entity.Credential) *entity.Credential {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *c
	if cp.SubjectID == 0 {
		cp.SubjectID = s.nextCredentialID
	}
	s.nextCredentialID = max(s.nextCredentialID, cp.SubjectID+1)
	s.credentials[cp.SubjectID] = &cp

	out := cp

	return &out
}

// undoLog holds the inverse of every write made inside one transaction.
// Steps are recorded and replayed with the store lock held.
type undoLog struct {
	steps []func(s *Store)
}

func (u *undoLog) record(step func(s *Store)) {
	if u == nil {
		return
	}

	u.steps = append(u.steps, step)
}

// rollback replays the recorded steps newest first.
// Ids handed out inside the transaction are not reused, like a database sequence.
func (s *Store) rollback(u *undoLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(u.steps) - 1; i >= 0; i-- {
		u.steps[i](s)
	}
	u.steps = nil
}
