package memory

import (
	"context"
	"sync"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
)

// AccountRepo is the in-memory account store used in tests and local runs
// without Postgres.
type AccountRepo struct {
	mu      sync.RWMutex
	nextID  int64
	byID    map[int64]domain.Account
	byEmail map[string]int64 // email -> id
}

func NewAccountRepo() *AccountRepo {
	return &AccountRepo{
		nextID:  1,
		byID:    make(map[int64]domain.Account),
		byEmail: make(map[string]int64),
	}
}

func (r *AccountRepo) FindByEmail(ctx context.Context, email string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[domain.NormalizeEmail(email)]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound()
	}
	return r.byID[id], nil
}

func (r *AccountRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byEmail[domain.NormalizeEmail(email)]
	return ok, nil
}

func (r *AccountRepo) Save(ctx context.Context, a domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.Email = domain.NormalizeEmail(a.Email)
	if a.Email == "" {
		return domain.Account{}, domain.ErrMissingField("email")
	}

	if a.ID == 0 {
		if _, exists := r.byEmail[a.Email]; exists {
			return domain.Account{}, domain.ErrAccountAlreadyExists()
		}
		a.ID = r.nextID
		r.nextID++
		r.byID[a.ID] = a
		r.byEmail[a.Email] = a.ID
		return a, nil
	}

	prev, ok := r.byID[a.ID]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound()
	}
	if prev.Email != a.Email {
		if _, taken := r.byEmail[a.Email]; taken {
			return domain.Account{}, domain.ErrAccountAlreadyExists()
		}
		delete(r.byEmail, prev.Email)
		r.byEmail[a.Email] = a.ID
	}
	r.byID[a.ID] = a
	return a, nil
}
