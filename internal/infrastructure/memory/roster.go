package memory

import (
	"context"
	"sync"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
)

// Roster keeps entries in insertion order; the first entry for an email wins.
type Roster struct {
	mu      sync.RWMutex
	entries []domain.RosterEntry
}

func NewRoster(entries ...domain.RosterEntry) *Roster {
	r := &Roster{}
	for _, e := range entries {
		_ = r.Insert(context.Background(), e)
	}
	return r
}

func (r *Roster) MatchesEmailAndDNI(ctx context.Context, email, dni string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email = domain.NormalizeEmail(email)
	if email == "" || dni == "" {
		return false, nil
	}
	for _, e := range r.entries {
		if e.InstitutionalEmail == email && e.DNI == dni {
			return true, nil
		}
	}
	return false, nil
}

func (r *Roster) FindByInstitutionalEmail(ctx context.Context, email string) (domain.RosterEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email = domain.NormalizeEmail(email)
	for _, e := range r.entries {
		if e.InstitutionalEmail == email {
			return e, nil
		}
	}
	return domain.RosterEntry{}, domain.ErrNotInRoster()
}

// Insert appends e unless the same (email, dni) pair is already present.
func (r *Roster) Insert(ctx context.Context, e domain.RosterEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.InstitutionalEmail = domain.NormalizeEmail(e.InstitutionalEmail)
	for _, cur := range r.entries {
		if cur.InstitutionalEmail == e.InstitutionalEmail && cur.DNI == e.DNI {
			return nil
		}
	}
	r.entries = append(r.entries, e)
	return nil
}
